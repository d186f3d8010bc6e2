// Package pipeline turns control inputs into rendered artifacts.
//
// The CLI, the TUI and the HTTP server all go through this package so that
// defaults, validation and caching behave the same everywhere.
//
// # Stages
//
//  1. Scene: build the topology scene from Params and Layout
//  2. Render: produce each requested format for the chosen view
//
// Scene building is pure and cheap; only rendered artifacts are cached.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    NodeCount:  58,
//	    Allocation: 10,
//	    Formats:    []string{"svg", "json"},
//	})
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/openmesh-network/meshviz/pkg/cache"
	errs "github.com/openmesh-network/meshviz/pkg/errors"
	"github.com/openmesh-network/meshviz/pkg/render/sink"
	"github.com/openmesh-network/meshviz/pkg/topology"
)

// Visualization types.
const (
	VizTypeRings    = "rings"
	VizTypeNodelink = "nodelink"
)

// DefaultVizType is the default visualization type.
const DefaultVizType = VizTypeRings

// DefaultScale is the PNG resolution multiplier.
const DefaultScale = 2.0

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatDOT  = "dot"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
	FormatDOT:  true,
}

// ValidVizTypes is the set of supported visualization types.
var ValidVizTypes = map[string]bool{
	VizTypeRings:    true,
	VizTypeNodelink: true,
}

// ContentTypes maps each format to its MIME type.
var ContentTypes = map[string]string{
	FormatSVG:  "image/svg+xml",
	FormatPNG:  "image/png",
	FormatPDF:  "application/pdf",
	FormatJSON: "application/json",
	FormatDOT:  "text/vnd.graphviz",
}

// Options contains all configuration for one pipeline run.
type Options struct {
	// Scene options
	NodeCount  int             `json:"node_count"`
	Allocation float64         `json:"allocation"`
	Layout     topology.Layout `json:"layout,omitzero"`
	Clamp      bool            `json:"clamp,omitempty"`

	// Render options
	VizType    string   `json:"viz_type,omitempty"`
	Formats    []string `json:"formats,omitempty"`
	Title      string   `json:"title,omitempty"`
	ShowTitle  bool     `json:"show_title,omitempty"`
	Dark       bool     `json:"dark,omitempty"`
	Responsive bool     `json:"responsive,omitempty"`
	Hover      bool     `json:"hover,omitempty"`
	Scale      float64  `json:"scale,omitempty"`

	// Runtime options (not serialized)
	Refresh bool        `json:"-"`
	Logger  *log.Logger `json:"-"`

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Scene is the computed topology.
	Scene topology.Scene

	// SceneKey identifies the scene inputs in the cache.
	SceneKey string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount       int
	VMCount         int
	ConnectionCount int
	SceneTime       time.Duration
	RenderTime      time.Duration
}

// CacheInfo tracks which artifacts came from the cache.
type CacheInfo struct {
	// RenderHit is true when every requested format was cached.
	RenderHit bool

	// Hits lists the formats served from the cache.
	Hits []string
}

// Params returns the scene parameters carried by the options.
func (o Options) Params() topology.Params {
	return topology.Params{NodeCount: o.NodeCount, AllocationPercent: o.Allocation}
}

// Theme returns the sink theme name.
func (o Options) Theme() string {
	if o.Dark {
		return sink.ThemeDark
	}
	return sink.ThemeLight
}

// IsNodelink reports whether the Graphviz view is selected.
func (o Options) IsNodelink() bool {
	return o.VizType == VizTypeNodelink
}

// ArtifactKeyOpts returns the cache key options for one format.
// Only settings that change the bytes of that format are included.
func (o Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: format, VizType: o.VizType}
	switch format {
	case FormatJSON, FormatDOT:
		k.VizType = ""
	default:
		k.Theme = o.Theme()
		if o.ShowTitle {
			k.Title = o.Title
		}
		if o.Responsive {
			k.Theme += "+responsive"
		}
		if o.Hover {
			k.Theme += "+hover"
		}
		if format == FormatPNG {
			k.Format = fmt.Sprintf("png@%g", o.Scale)
		}
	}
	return k
}

// SetDefaults fills unset fields. Zero NodeCount and Allocation take the
// control defaults.
func (o *Options) SetDefaults() {
	if o.NodeCount == 0 {
		o.NodeCount = topology.DefaultNodeCount
	}
	if o.Allocation == 0 {
		o.Allocation = topology.DefaultAllocation
	}
	if o.VizType == "" {
		o.VizType = DefaultVizType
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	o.Formats = dedupe(o.Formats)
	if o.Scale <= 0 {
		o.Scale = DefaultScale
	}
	o.Layout = o.Layout.WithDefaults()
}

// Validate checks all fields. With Clamp set, out-of-range parameters are
// pulled into bounds instead of rejected.
func (o *Options) Validate() error {
	if o.Clamp {
		p := o.Params().Clamp()
		o.NodeCount, o.Allocation = p.NodeCount, p.AllocationPercent
	}
	if err := o.Params().Validate(); err != nil {
		return err
	}
	if err := ValidateVizType(o.VizType); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if math.IsNaN(o.Scale) || math.IsInf(o.Scale, 0) || o.Scale > 10 {
		return errs.New(errs.ErrCodeInvalidInput, "scale %v out of range (0, 10]", o.Scale)
	}
	return nil
}

// ValidateAndSetDefaults applies defaults then validates. It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetDefaults()
	if err := o.Validate(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateFormat checks a single format name (case-sensitive).
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errs.New(errs.ErrCodeInvalidFormat, "invalid format %q: must be svg, png, pdf, json or dot", format)
	}
	return nil
}

// ValidateFormats checks each format. An empty slice is valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateVizType checks a visualization type name.
func ValidateVizType(vizType string) error {
	if !ValidVizTypes[vizType] {
		return errs.New(errs.ErrCodeInvalidVizType, "invalid viz type %q: must be rings or nodelink", vizType)
	}
	return nil
}

// dedupe drops repeated formats, keeping first occurrences in order.
func dedupe(formats []string) []string {
	out := make([]string, 0, len(formats))
	for _, f := range formats {
		if !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}
