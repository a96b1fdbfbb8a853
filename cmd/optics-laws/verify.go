package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/authcorp/libs/go/optics/internal/catalog"
	"github.com/authcorp/libs/go/optics/laws"
)

var (
	verifyConfigPath string
	verifySamples    int
	verifySeed       int
	verifyLaws       []string
	verifyJobs       int
	verifyFailFast   bool
	verifyFormat     string
)

func init() {
	verifyCmd.Flags().StringVar(&verifyConfigPath, "config", "", "YAML or JSON laws config")
	verifyCmd.Flags().IntVar(&verifySamples, "samples", 0, "samples per law (overrides config)")
	verifyCmd.Flags().IntVar(&verifySeed, "seed", 0, "first seed (overrides config)")
	verifyCmd.Flags().StringSliceVar(&verifyLaws, "laws", nil, "only run laws whose name contains one of these")
	verifyCmd.Flags().IntVar(&verifyJobs, "jobs", 0, "laws verified concurrently (0 = GOMAXPROCS)")
	verifyCmd.Flags().BoolVar(&verifyFailFast, "fail-fast", false, "stop at the first violation")
	verifyCmd.Flags().StringVar(&verifyFormat, "format", "pretty", "output format (pretty|json)")
}

var errViolations = errors.New("laws violated")

var verifyCmd = &cobra.Command{
	Use:   "verify [suite...]",
	Short: "Verify stock optics, all of them or the named suites",
	RunE: func(cmd *cobra.Command, args []string) error {
		format := strings.ToLower(verifyFormat)
		switch format {
		case "pretty", "json":
		default:
			return fmt.Errorf("unsupported format %q (must be pretty or json)", verifyFormat)
		}
		if err := setColorMode(cmd); err != nil {
			return err
		}

		cfg, err := verifyConfig(cmd)
		if err != nil {
			return err
		}
		suites, err := selectSuites(args)
		if err != nil {
			return err
		}

		level, _ := cfg.Level()
		logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		verifier, err := laws.NewVerifier(cfg, logger)
		if err != nil {
			return err
		}

		report, err := verifier.VerifyParallel(cmd.Context(), verifyJobs, catalog.Laws(suites)...)
		if err != nil {
			return err
		}

		if format == "json" {
			if err := renderReportJSON(cmd.OutOrStdout(), report); err != nil {
				return err
			}
		} else {
			renderReportPretty(cmd.OutOrStdout(), report)
		}
		if len(report.Violations) > 0 {
			return fmt.Errorf("%w: %d", errViolations, len(report.Violations))
		}
		return nil
	},
}

// verifyConfig layers the flags that were set over LoadConfig.
func verifyConfig(cmd *cobra.Command) (laws.Config, error) {
	cfg, err := laws.LoadConfig(verifyConfigPath)
	if err != nil {
		return laws.Config{}, err
	}
	flags := cmd.Flags()
	if flags.Changed("samples") {
		cfg.Samples = verifySamples
	}
	if flags.Changed("seed") {
		cfg.Seed = verifySeed
	}
	if flags.Changed("laws") {
		cfg.Laws = verifyLaws
	}
	if flags.Changed("fail-fast") {
		cfg.FailFast = verifyFailFast
	}
	return cfg, cfg.Validate()
}

func selectSuites(names []string) ([]catalog.Suite, error) {
	if len(names) == 0 {
		return catalog.Suites(), nil
	}
	suites := make([]catalog.Suite, 0, len(names))
	for _, name := range names {
		s, ok := catalog.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown suite %q (see optics-laws list)", name)
		}
		suites = append(suites, s)
	}
	return suites, nil
}

type reportPayload struct {
	Laws       int               `json:"laws"`
	Samples    int               `json:"samples"`
	Skipped    int               `json:"skipped"`
	DurationMS int64             `json:"duration_ms"`
	Violations []*laws.Violation `json:"violations"`
}

func renderReportJSON(w io.Writer, report laws.Report) error {
	payload := reportPayload{
		Laws:       report.Laws,
		Samples:    report.Samples,
		Skipped:    report.Skipped,
		DurationMS: report.Duration.Milliseconds(),
		Violations: report.Violations,
	}
	if payload.Violations == nil {
		payload.Violations = []*laws.Violation{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

var (
	passColor = color.New(color.FgGreen, color.Bold)
	failColor = color.New(color.FgRed, color.Bold)
	seedColor = color.New(color.FgYellow)
)

func renderReportPretty(w io.Writer, report laws.Report) {
	for _, v := range report.Violations {
		fmt.Fprintf(w, "%s %s %s\n", failColor.Sprint("FAIL"), v.Error(), seedColor.Sprintf("(seed %d)", v.Seed))
	}
	status := passColor.Sprint("PASS")
	if len(report.Violations) > 0 {
		status = failColor.Sprint("FAIL")
	}
	fmt.Fprintf(w, "%s %d laws, %d samples, %d skipped, %d violations in %s\n",
		status, report.Laws, report.Samples, report.Skipped, len(report.Violations), report.Duration.Round(time.Millisecond))
}

// setColorMode applies --color; auto colors only terminals. A command run
// without the root's persistent flag behaves as auto.
func setColorMode(cmd *cobra.Command) error {
	mode := "auto"
	if flag := cmd.Flags().Lookup("color"); flag != nil {
		mode = strings.ToLower(flag.Value.String())
	}
	switch mode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	case "auto":
		f, ok := cmd.OutOrStdout().(*os.File)
		color.NoColor = !ok || !isTerminal(f)
	default:
		return fmt.Errorf("unsupported color mode %q (must be auto, on or off)", mode)
	}
	return nil
}
