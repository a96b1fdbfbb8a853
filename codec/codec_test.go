package codec_test

import (
	"bytes"
	"strings"
	"testing"

	"pgregory.net/rapid"

	"github.com/authcorp/libs/go/optics"
	"github.com/authcorp/libs/go/optics/codec"
	"github.com/authcorp/libs/go/optics/laws"
)

type Service struct {
	Name  string `json:"name" yaml:"name" toml:"name" msgpack:"name"`
	Port  int    `json:"port" yaml:"port" toml:"port" msgpack:"port"`
	Debug bool   `json:"debug" yaml:"debug" toml:"debug" msgpack:"debug"`
}

func portLens() optics.Lens[Service, int] {
	return optics.NewLens(
		func(s Service) int { return s.Port },
		func(s Service, port int) Service { s.Port = port; return s },
	)
}

func serviceGen() *rapid.Generator[Service] {
	return rapid.Custom(func(t *rapid.T) Service {
		return Service{
			Name:  rapid.StringMatching(`[a-z][a-z0-9-]{0,11}`).Draw(t, "name"),
			Port:  rapid.IntRange(0, 65535).Draw(t, "port"),
			Debug: rapid.Bool().Draw(t, "debug"),
		}
	})
}

// documentGen yields canonical documents of p mixed with inputs p rejects.
func documentGen(p optics.Prism[[]byte, Service], invalid ...string) *rapid.Generator[[]byte] {
	bad := make([][]byte, len(invalid))
	for i, s := range invalid {
		bad[i] = []byte(s)
	}
	return rapid.OneOf(
		rapid.Map(serviceGen(), p.ReverseGet),
		rapid.SampledFrom(bad),
	)
}

func TestCodecRoundTrip(t *testing.T) {
	svc := Service{Name: "auth", Port: 8080, Debug: true}

	for _, format := range []codec.Format{codec.FormatJSON, codec.FormatYAML, codec.FormatTOML, codec.FormatMsgpack} {
		t.Run(string(format), func(t *testing.T) {
			p, err := codec.For[Service](format)
			if err != nil {
				t.Fatalf("For(%s): %v", format, err)
			}
			data := p.ReverseGet(svc)
			got, ok := p.GetOption(data).Get()
			if !ok {
				t.Fatalf("could not decode %q", data)
			}
			if got != svc {
				t.Errorf("expected %+v, got %+v", svc, got)
			}

			decoded, err := codec.Decode[Service](format, data)
			if err != nil || decoded != svc {
				t.Errorf("Decode: got %+v, %v", decoded, err)
			}
			encoded, err := codec.Encode(format, svc)
			if err != nil || !bytes.Equal(encoded, data) {
				t.Errorf("Encode differs from ReverseGet: %q vs %q (%v)", encoded, data, err)
			}
		})
	}
}

func TestCodecRejectsGarbage(t *testing.T) {
	garbage := []byte("{not: [valid")

	for name, p := range map[string]optics.Prism[[]byte, Service]{
		"json":    codec.JSON[Service](),
		"yaml":    codec.YAML[Service](),
		"toml":    codec.TOML[Service](),
		"msgpack": codec.Msgpack[Service](),
	} {
		t.Run(name, func(t *testing.T) {
			e := p.GetOrModify(garbage)
			left, ok := e.GetLeft()
			if !ok {
				t.Fatalf("expected Left, got %v", e.RightValue())
			}
			if !bytes.Equal(left, garbage) {
				t.Errorf("Left should carry the original input, got %q", left)
			}
		})
	}

	if _, err := codec.Decode[Service](codec.FormatJSON, garbage); err == nil {
		t.Error("Decode should report the error")
	}
}

func TestUnknownFormat(t *testing.T) {
	if _, err := codec.For[Service]("xml"); err == nil {
		t.Error("expected an error for an unknown format")
	}
	if _, err := codec.Encode[Service]("xml", Service{}); err == nil {
		t.Error("expected an error for an unknown format")
	}
	if _, err := codec.Transcode[Service](codec.FormatJSON, "xml"); err == nil {
		t.Error("expected an error for an unknown format")
	}
}

func TestEditInsideDocument(t *testing.T) {
	port := optics.ComposeOptional(codec.JSON[Service]().AsOptional(), portLens().AsOptional())

	doc := []byte(`{"name":"auth","port":8080,"debug":false}`)
	updated := port.Modify(doc, func(p int) int { return p + 1 })

	if !strings.Contains(string(updated), `"port":8081`) {
		t.Errorf("expected port 8081 in %s", updated)
	}
	if got := port.Modify([]byte("oops"), func(p int) int { return p + 1 }); string(got) != "oops" {
		t.Errorf("undecodable input should be left untouched, got %s", got)
	}

	viaCompose, err := optics.Compose[[]byte, Service, int](codec.YAML[Service](), portLens())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if viaCompose.Kind() != optics.KindOptional {
		t.Errorf("expected Optional, got %s", viaCompose.Kind())
	}
}

func TestEmptyDocumentsDecodeToZero(t *testing.T) {
	tests := []struct {
		name string
		p    optics.Prism[[]byte, Service]
		doc  string
	}{
		{name: "json null", p: codec.JSON[Service](), doc: "null"},
		{name: "empty yaml", p: codec.YAML[Service](), doc: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.p.GetOption([]byte(tc.doc)).Get()
			if !ok {
				t.Fatalf("expected %q to decode", tc.doc)
			}
			if got != (Service{}) {
				t.Errorf("expected the zero Service, got %+v", got)
			}
			reencoded := tc.p.ReverseGet(got)
			if string(reencoded) == tc.doc {
				t.Errorf("re-encoding should give the canonical zero document, got %q", reencoded)
			}
			if again, _ := tc.p.GetOption(reencoded).Get(); again != got {
				t.Errorf("canonical zero document should decode back, got %+v", again)
			}
		})
	}
}

func TestTranscode(t *testing.T) {
	toYAML, err := codec.Transcode[Service](codec.FormatJSON, codec.FormatYAML)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rapid.Check(t, func(t *rapid.T) {
		svc := serviceGen().Draw(t, "service")
		yamlDoc := toYAML(codec.JSON[Service]().ReverseGet(svc))
		got, err := codec.Decode[Service](codec.FormatYAML, yamlDoc)
		if err != nil {
			t.Fatalf("decode transcoded document: %v", err)
		}
		if got != svc {
			t.Fatalf("expected %+v, got %+v", svc, got)
		}
	})

	if got := toYAML([]byte("]")); string(got) != "]" {
		t.Errorf("undecodable input should pass through, got %q", got)
	}
}

func TestCodecPrismLaws(t *testing.T) {
	json := codec.JSON[Service]()
	laws.Check(t, laws.PrismLaws("json", json, laws.Fixture[[]byte, Service]{
		Whole: documentGen(json, "{", "[1,2]", `"text"`, "42"),
		Focus: serviceGen(),
	})...)

	mp := codec.Msgpack[Service]()
	laws.Check(t, laws.PrismLaws("msgpack", mp, laws.Fixture[[]byte, Service]{
		Whole: documentGen(mp, "\xc1", "\x01"),
		Focus: serviceGen(),
	})...)
}
