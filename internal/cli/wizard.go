package cli

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/tilewright/tilewright/pkg/plan"
	"github.com/tilewright/tilewright/pkg/session"
	"github.com/tilewright/tilewright/pkg/units"
)

var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// wizardCommand creates the interactive plan builder.
func (c *CLI) wizardCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "wizard",
		Short: "Build a plan manifest interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runWizard(cmd, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "plan.toml", "manifest file to write")
	return cmd
}

func (c *CLI) runWizard(cmd *cobra.Command, output string) error {
	ctx := cmd.Context()

	model := newWizardModel()

	// Pre-fill from the most recent session so repeat runs start from the
	// last accepted plan instead of blank fields.
	var store session.Store
	if s, err := newSessionStore(ctx); err == nil {
		store = s
		defer s.Close(ctx)
		if last, err := s.Latest(ctx); err == nil && last != nil {
			model.prefill(last.Manifest)
		}
	}

	prog := tea.NewProgram(model, tea.WithContext(ctx))
	final, err := prog.Run()
	if err != nil {
		return err
	}

	m, ok := final.(wizardModel)
	if !ok || !m.accepted {
		printInfo("Wizard cancelled")
		return nil
	}

	manifest := m.manifest()
	if err := manifest.Validate(); err != nil {
		return err
	}

	if err := writeManifest(&manifest, output); err != nil {
		return err
	}

	if store != nil {
		sess := session.New(manifest, session.DefaultTTL)
		if err := store.Set(ctx, sess); err != nil {
			c.Logger.Debug("could not save session", "err", err)
		}
	}

	printSuccess("Manifest written")
	printFile(output)
	printNewline()
	printNextStep("Render the plan", "tilewright plan "+output)
	printNextStep("Material estimate", "tilewright quote "+output)
	return nil
}

// writeManifest encodes the manifest as TOML.
func writeManifest(m *plan.Manifest, path string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(m); err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// Wizard steps, in order.
const (
	stepShape = iota
	stepPattern
	stepUnit
	stepDims
	stepConfirm
)

// wizardField is one numeric entry in the dimensions step.
type wizardField struct {
	label string
	value string
}

// wizardModel drives the staged plan builder.
type wizardModel struct {
	step     int
	cursor   int
	shape    plan.Shape
	pattern  plan.Pattern
	unit     units.Unit
	fields   []wizardField
	field    int
	errMsg   string
	accepted bool
}

var (
	wizardShapes   = []plan.Shape{plan.ShapeRectangle, plan.ShapeSquare, plan.ShapeLShape}
	wizardPatterns = []plan.Pattern{plan.PatternGrid, plan.PatternBrick, plan.PatternHerringbone}
	wizardUnits    = []units.Unit{units.Millimeter, units.Centimeter, units.Meter, units.Inch, units.Foot}
)

func newWizardModel() wizardModel {
	return wizardModel{
		shape:   plan.ShapeRectangle,
		pattern: plan.PatternGrid,
		unit:    units.Millimeter,
		fields: []wizardField{
			{label: "Room length"},
			{label: "Room width"},
			{label: "Tile length"},
			{label: "Tile width"},
			{label: "Grout gap"},
			{label: "Price per tile (0 = skip)", value: "0"},
		},
	}
}

// prefill seeds the wizard fields from a previous manifest.
func (m *wizardModel) prefill(prev plan.Manifest) {
	m.shape = plan.Shape(prev.Room.Shape)
	m.pattern = plan.Pattern(prev.Layout.Pattern)
	m.unit = units.Unit(prev.Room.Unit)
	m.fields[0].value = formatNumber(prev.Room.Length)
	m.fields[1].value = formatNumber(prev.Room.Width)
	m.fields[2].value = formatNumber(prev.Tile.Length)
	m.fields[3].value = formatNumber(prev.Tile.Width)
	m.fields[4].value = formatNumber(prev.Tile.Grout)
	m.fields[5].value = formatNumber(prev.Pricing.PerTile)
}

func formatNumber(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (m wizardModel) Init() tea.Cmd {
	return nil
}

func (m wizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.step != stepDims && m.cursor > 0 {
			m.cursor--
		}
		if m.step == stepDims && m.field > 0 {
			m.field--
		}
	case "down", "j":
		if m.step != stepDims && m.cursor < m.listLen()-1 {
			m.cursor++
		}
		if m.step == stepDims && m.field < len(m.fields)-1 {
			m.field++
		}
	case "enter":
		return m.advance()
	case "backspace":
		if m.step == stepDims {
			v := m.fields[m.field].value
			if v != "" {
				m.fields[m.field].value = v[:len(v)-1]
			}
		}
	default:
		if m.step == stepDims && isNumericKey(key.String()) {
			m.fields[m.field].value += key.String()
			m.errMsg = ""
		}
	}
	return m, nil
}

// listLen returns the option count for the current selection step.
func (m wizardModel) listLen() int {
	switch m.step {
	case stepShape:
		return len(wizardShapes)
	case stepPattern:
		return len(wizardPatterns)
	case stepUnit:
		return len(wizardUnits)
	}
	return 0
}

// advance commits the current step and moves to the next.
func (m wizardModel) advance() (tea.Model, tea.Cmd) {
	switch m.step {
	case stepShape:
		m.shape = wizardShapes[m.cursor]
		m.step, m.cursor = stepPattern, indexOfPattern(m.pattern)
	case stepPattern:
		m.pattern = wizardPatterns[m.cursor]
		m.step, m.cursor = stepUnit, indexOfUnit(m.unit)
	case stepUnit:
		m.unit = wizardUnits[m.cursor]
		m.step, m.field = stepDims, 0
	case stepDims:
		if m.field < len(m.fields)-1 {
			m.field++
			return m, nil
		}
		if msg := m.validateFields(); msg != "" {
			m.errMsg = msg
			return m, nil
		}
		m.step = stepConfirm
	case stepConfirm:
		m.accepted = true
		return m, tea.Quit
	}
	return m, nil
}

func indexOfPattern(p plan.Pattern) int {
	for i, c := range wizardPatterns {
		if c == p {
			return i
		}
	}
	return 0
}

func indexOfUnit(u units.Unit) int {
	for i, c := range wizardUnits {
		if c == u {
			return i
		}
	}
	return 0
}

// validateFields checks the numeric entries before the confirm step.
func (m wizardModel) validateFields() string {
	for i, f := range m.fields {
		v, err := strconv.ParseFloat(f.value, 64)
		if err != nil {
			return fmt.Sprintf("%s: enter a number", f.label)
		}
		// Grout and price may be zero; the rest must be positive.
		if v <= 0 && i < 4 {
			return fmt.Sprintf("%s: must be positive", f.label)
		}
		if v < 0 {
			return fmt.Sprintf("%s: must not be negative", f.label)
		}
	}
	return ""
}

func isNumericKey(s string) bool {
	if len(s) != 1 {
		return false
	}
	return (s[0] >= '0' && s[0] <= '9') || s[0] == '.'
}

// fieldValue parses a committed field; validateFields runs first, so the
// zero fallback only covers the optional entries.
func (m wizardModel) fieldValue(i int) float64 {
	v, err := strconv.ParseFloat(m.fields[i].value, 64)
	if err != nil {
		return 0
	}
	return v
}

// manifest assembles the wizard's answers. Square rooms carry the length
// as both extents.
func (m wizardModel) manifest() plan.Manifest {
	length := m.fieldValue(0)
	width := m.fieldValue(1)
	if m.shape == plan.ShapeSquare {
		width = length
	}
	return plan.Manifest{
		Room: plan.RoomSection{
			Shape:  string(m.shape),
			Length: length,
			Width:  width,
			Unit:   string(m.unit),
		},
		Tile: plan.TileSection{
			Length: m.fieldValue(2),
			Width:  m.fieldValue(3),
			Grout:  m.fieldValue(4),
			Unit:   string(m.unit),
		},
		Layout:  plan.LayoutSection{Pattern: string(m.pattern)},
		Pricing: plan.PricingSection{PerTile: m.fieldValue(5)},
	}
}

func (m wizardModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Plan wizard"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ next  esc quit"))
	b.WriteString("\n\n")

	switch m.step {
	case stepShape:
		b.WriteString(renderList("Room shape", shapeLabels(), m.cursor))
	case stepPattern:
		b.WriteString(renderList("Tiling pattern", patternLabels(), m.cursor))
	case stepUnit:
		b.WriteString(renderList("Measurement unit", unitLabels(), m.cursor))
	case stepDims:
		b.WriteString(listNormalStyle.Render("Dimensions ("+string(m.unit)+")") + "\n\n")
		for i, f := range m.fields {
			cursor := "  "
			style := listNormalStyle
			if i == m.field {
				cursor = "▸ "
				style = listSelectedStyle
			}
			value := f.value
			if i == m.field {
				value += "▎"
			}
			b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, style.Render(f.label+":"), value))
		}
		if m.errMsg != "" {
			b.WriteString("\n" + StyleWarning.Render(m.errMsg) + "\n")
		}
	case stepConfirm:
		b.WriteString(listNormalStyle.Render("Summary") + "\n\n")
		b.WriteString(fmt.Sprintf("  shape    %s\n", m.shape))
		b.WriteString(fmt.Sprintf("  pattern  %s\n", m.pattern))
		b.WriteString(fmt.Sprintf("  room     %s × %s %s\n", m.fields[0].value, m.fields[1].value, m.unit))
		b.WriteString(fmt.Sprintf("  tile     %s × %s %s (grout %s)\n",
			m.fields[2].value, m.fields[3].value, m.unit, m.fields[4].value))
		b.WriteString("\n" + StyleSuccess.Render("⏎ write manifest") + "\n")
	}

	return b.String()
}

func renderList(title string, items []string, cursor int) string {
	var b strings.Builder
	b.WriteString(listNormalStyle.Render(title) + "\n\n")
	for i, item := range items {
		prefix := "  "
		style := listNormalStyle
		if i == cursor {
			prefix = "▸ "
			style = listSelectedStyle
		}
		b.WriteString(prefix + style.Render(item) + "\n")
	}
	return b.String()
}

func shapeLabels() []string {
	out := make([]string, len(wizardShapes))
	for i, s := range wizardShapes {
		out[i] = string(s)
	}
	return out
}

func patternLabels() []string {
	out := make([]string, len(wizardPatterns))
	for i, p := range wizardPatterns {
		out[i] = string(p)
	}
	return out
}

func unitLabels() []string {
	out := make([]string, len(wizardUnits))
	for i, u := range wizardUnits {
		out[i] = string(u)
	}
	return out
}
