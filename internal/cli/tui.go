package cli

import (
	"context"
	"fmt"
	"math"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/openmesh-network/meshviz/pkg/pipeline"
	"github.com/openmesh-network/meshviz/pkg/topology"
)

// Slider styles
var (
	sliderFocusStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	sliderNormalStyle = lipgloss.NewStyle().Foreground(colorWhite)
	sliderDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
	sliderFillStyle   = lipgloss.NewStyle().Foreground(colorCyan)
)

const sliderWidth = 40

// Slider identifiers, in tab order.
const (
	sliderNodes = iota
	sliderAllocation
	sliderCount
)

// =============================================================================
// SliderModel - Interactive parameter controls
// =============================================================================

// SaveFunc writes an SVG for p and returns the file path.
type SaveFunc func(p topology.Params) (string, error)

// savedMsg reports the outcome of a save.
type savedMsg struct {
	path string
	err  error
}

// SliderModel is the bubbletea model behind `meshviz tui`: two sliders for
// the XNode count and the allocation percentage, and a live resource table.
type SliderModel struct {
	Params topology.Params
	Layout topology.Layout
	Focus  int

	save    SaveFunc
	status  string
	initial topology.Params
	report  resourceReport
}

// NewSliderModel creates a slider model starting at p. save may be nil, in
// which case the save key is ignored.
func NewSliderModel(p topology.Params, l topology.Layout, save SaveFunc) SliderModel {
	p = p.Clamp()
	m := SliderModel{Params: p, Layout: l, save: save, initial: p}
	m.refresh()
	return m
}

func (m *SliderModel) refresh() {
	m.report = newResourceReport(m.Params, m.Layout)
}

func (m SliderModel) Init() tea.Cmd {
	return nil
}

func (m SliderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "down", "j":
			m.Focus = (m.Focus + 1) % sliderCount
		case "shift+tab", "up", "k":
			m.Focus = (m.Focus + sliderCount - 1) % sliderCount
		case "left", "h":
			m.step(-1)
		case "right", "l":
			m.step(1)
		case "pgdown", "shift+left", "H":
			m.step(-10)
		case "pgup", "shift+right", "L":
			m.step(10)
		case "home":
			m.step(-topology.MaxAllocation)
		case "end":
			m.step(topology.MaxAllocation)
		case "r":
			m.Params = m.initial
			m.status = ""
			m.refresh()
		case "s":
			if m.save == nil {
				return m, nil
			}
			m.status = "saving…"
			save, p := m.save, m.Params
			return m, func() tea.Msg {
				path, err := save(p)
				return savedMsg{path: path, err: err}
			}
		}
	case savedMsg:
		if msg.err != nil {
			m.status = "save failed: " + msg.err.Error()
		} else {
			m.status = "saved " + msg.path
		}
	}
	return m, nil
}

// step moves the focused slider by delta and rebuilds the report.
func (m *SliderModel) step(delta int) {
	switch m.Focus {
	case sliderNodes:
		m.Params.NodeCount += delta
	case sliderAllocation:
		m.Params.AllocationPercent += float64(delta)
	}
	m.Params = m.Params.Clamp()
	m.refresh()
}

func (m SliderModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Openmesh Cloud"))
	b.WriteString("\n")
	b.WriteString(sliderDimStyle.Render("←/→ adjust  tab switch  s save  r reset  q quit"))
	b.WriteString("\n\n")

	b.WriteString(m.sliderLine("XNodes", sliderNodes,
		float64(m.Params.NodeCount), topology.MinNodeCount, topology.MaxNodeCount,
		fmt.Sprintf("%d", m.Params.NodeCount)))
	b.WriteString("\n")
	b.WriteString(m.sliderLine("Allocation", sliderAllocation,
		m.Params.AllocationPercent, topology.MinAllocation, topology.MaxAllocation,
		fmt.Sprintf("%v%%", m.Params.AllocationPercent)))
	b.WriteString("\n\n")

	b.WriteString(renderReport(m.report))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(sliderDimStyle.Render("  " + m.status))
		b.WriteString("\n")
	}
	return b.String()
}

func (m SliderModel) sliderLine(label string, id int, v, lo, hi float64, value string) string {
	cursor := "  "
	labelStyle := sliderNormalStyle
	if m.Focus == id {
		cursor = "▸ "
		labelStyle = sliderFocusStyle
	}
	return fmt.Sprintf("%s%s %s %s",
		cursor,
		labelStyle.Render(fmt.Sprintf("%-10s", label)),
		sliderBar(v, lo, hi, sliderWidth),
		StyleValue.Render(value))
}

// sliderBar draws a width-cell track filled in proportion to v within [lo, hi].
func sliderBar(v, lo, hi float64, width int) string {
	frac := 0.0
	if hi > lo {
		frac = (v - lo) / (hi - lo)
	}
	frac = min(max(frac, 0), 1)
	filled := int(math.Round(frac * float64(width)))
	return sliderFillStyle.Render(strings.Repeat("━", filled)) +
		sliderDimStyle.Render(strings.Repeat("─", width-filled))
}

// =============================================================================
// Command
// =============================================================================

// tuiCommand opens the interactive slider view in the terminal.
func (c *CLI) tuiCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Adjust the parameters interactively in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			runner, err := c.newRunner(ctx, false)
			if err != nil {
				return err
			}
			defer runner.Close()

			m := NewSliderModel(c.cfg.Defaults, c.cfg.Layout, c.svgSaver(ctx, runner, output))
			final, err := tea.NewProgram(m, tea.WithContext(ctx)).Run()
			if err != nil {
				return fmt.Errorf("run tui: %w", err)
			}
			if sm, ok := final.(SliderModel); ok {
				printDetail("final: %d XNodes, %v%% allocated", sm.Params.NodeCount, sm.Params.AllocationPercent)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", defaultBaseName+".svg", "file written by the save key")

	return cmd
}

// svgSaver renders the rings view as SVG through the runner and writes it to path.
func (c *CLI) svgSaver(ctx context.Context, runner *pipeline.Runner, path string) SaveFunc {
	return func(p topology.Params) (string, error) {
		result, err := runner.Execute(ctx, pipeline.Options{
			NodeCount:  p.NodeCount,
			Allocation: p.AllocationPercent,
			Layout:     c.cfg.Layout,
			Formats:    []string{pipeline.FormatSVG},
			Logger:     c.Logger,
		})
		if err != nil {
			return "", err
		}
		if err := os.WriteFile(path, result.Artifacts[pipeline.FormatSVG], 0o644); err != nil {
			return "", err
		}
		return path, nil
	}
}
