package render

import (
	"testing"

	errs "github.com/openmesh-network/meshviz/pkg/errors"
)

func TestConvertWithoutConverter(t *testing.T) {
	orig := converter
	converter = "meshviz-no-such-converter"
	defer func() { converter = orig }()

	if Available() {
		t.Fatal("Available() should be false for a missing binary")
	}
	if _, err := ToPDF([]byte("<svg/>")); !errs.Is(err, errs.ErrCodeUnsupported) {
		t.Errorf("ToPDF error = %v, want UNSUPPORTED", err)
	}
	if _, err := ToPNG([]byte("<svg/>"), 2); !errs.Is(err, errs.ErrCodeUnsupported) {
		t.Errorf("ToPNG error = %v, want UNSUPPORTED", err)
	}
}

func TestToPNG(t *testing.T) {
	if !Available() {
		t.Skip("rsvg-convert not installed")
	}
	svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10"><rect width="10" height="10"/></svg>`)
	png, err := ToPNG(svg, 1)
	if err != nil {
		t.Fatalf("ToPNG: %v", err)
	}
	if len(png) < 8 || string(png[1:4]) != "PNG" {
		t.Errorf("output is not a PNG")
	}
}
