package laws

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

// Verifier runs laws outside of go test, for example to validate
// hand-written optics at start-up or in a CI job.
type Verifier struct {
	config Config
	logger *slog.Logger
}

// Report summarizes one Verify call.
type Report struct {
	Laws       int
	Samples    int
	Skipped    int
	Violations []*Violation
	Duration   time.Duration
}

// Err joins the violations, or returns nil when there are none.
func (r Report) Err() error {
	if len(r.Violations) == 0 {
		return nil
	}
	errs := make([]error, len(r.Violations))
	for i, v := range r.Violations {
		errs[i] = v
	}
	return errors.Join(errs...)
}

// NewVerifier creates a verifier. A nil logger means slog.Default().
func NewVerifier(config Config, logger *slog.Logger) (*Verifier, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Verifier{config: config, logger: logger}, nil
}

// Config returns the configuration the verifier was built with.
func (v *Verifier) Config() Config {
	return v.config
}

// Verify evaluates every selected law on Config.Samples inputs, one law
// after the other. The context is checked between samples.
func (v *Verifier) Verify(ctx context.Context, laws ...Law) (Report, error) {
	start := time.Now()
	level := v.level()
	report := Report{}

	for _, law := range v.selected(ctx, laws, &report) {
		res, err := v.verifyLaw(ctx, law, level)
		report.add(res)
		if err != nil {
			report.Duration = time.Since(start)
			return report, err
		}
		if res.violation != nil && v.config.FailFast {
			break
		}
	}

	v.finish(ctx, level, &report, start)
	return report, nil
}

var errFailFast = errors.New("laws: stopped at first violation")

// VerifyParallel is Verify with up to jobs laws evaluated concurrently.
// jobs <= 0 means GOMAXPROCS. Violations are reported in the order of
// laws regardless of completion order. With FailFast the first violation
// cancels the laws still running.
func (v *Verifier) VerifyParallel(ctx context.Context, jobs int, laws ...Law) (Report, error) {
	start := time.Now()
	level := v.level()
	report := Report{}

	selected := v.selected(ctx, laws, &report)
	if len(selected) == 0 {
		v.finish(ctx, level, &report, start)
		return report, nil
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// each goroutine owns one slot
	results := make([]lawResult, len(selected))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(selected)))
	for i, law := range selected {
		g.Go(func() error {
			res, err := v.verifyLaw(gctx, law, level)
			results[i] = res
			if err != nil {
				return err
			}
			if res.violation != nil && v.config.FailFast {
				return errFailFast
			}
			return nil
		})
	}
	err := g.Wait()

	for _, res := range results {
		report.add(res)
	}
	if err != nil && !errors.Is(err, errFailFast) {
		report.Duration = time.Since(start)
		return report, err
	}

	v.finish(ctx, level, &report, start)
	return report, nil
}

type lawResult struct {
	samples   int
	violation *Violation
}

func (r *Report) add(res lawResult) {
	if res.samples == 0 {
		return
	}
	r.Laws++
	r.Samples += res.samples
	if res.violation != nil {
		r.Violations = append(r.Violations, res.violation)
	}
}

func (v *Verifier) level() slog.Level {
	level, _ := v.config.Level()
	return level
}

func (v *Verifier) selected(ctx context.Context, laws []Law, report *Report) []Law {
	out := make([]Law, 0, len(laws))
	for _, law := range laws {
		if !v.config.selects(law.Name) {
			report.Skipped++
			v.logger.Log(ctx, slog.LevelDebug, "law skipped", "law", law.Name)
			continue
		}
		out = append(out, law)
	}
	return out
}

// verifyLaw stops at the first counterexample: one is enough to act on.
func (v *Verifier) verifyLaw(ctx context.Context, law Law, level slog.Level) (lawResult, error) {
	res := lawResult{}
	for i := 0; i < v.config.Samples; i++ {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("verify %s: %w", law.Name, err)
		}
		seed := v.config.Seed + i
		res.samples++
		violation := sampleSafely(law, seed)
		if violation == nil {
			continue
		}
		res.violation = violation
		v.logger.Log(ctx, max(level, slog.LevelWarn), "law violated",
			"law", law.Name,
			"code", string(violation.Code),
			"seed", seed,
			"error", violation.Error(),
		)
		break
	}

	v.logger.Log(ctx, level, "law verified",
		"law", law.Name,
		"code", string(law.Code),
		"failed", res.violation != nil,
	)
	return res, nil
}

func (v *Verifier) finish(ctx context.Context, level slog.Level, report *Report, start time.Time) {
	report.Duration = time.Since(start)
	v.logger.Log(ctx, level, "verification finished",
		"laws", report.Laws,
		"samples", report.Samples,
		"skipped", report.Skipped,
		"violations", len(report.Violations),
		"duration_ms", report.Duration.Milliseconds(),
	)
}

// sampleSafely turns a panic in a generator or an optic into a violation.
func sampleSafely(law Law, seed int) (v *Violation) {
	defer func() {
		if r := recover(); r != nil {
			v = NewViolation(law.Code, law.Name, "panic while evaluating law").
				WithCause(fmt.Errorf("%v", r))
			v.Seed = seed
		}
	}()
	return law.Sample(seed)
}
