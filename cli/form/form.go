// ABOUTME: Interactive specification form as a bubbletea model
// ABOUTME: Uses huh groups constrained by the feature options served by the API

package form

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/pricewise/laptop-price-api/cli/styles"
	"github.com/pricewise/laptop-price-api/models"
)

// CompleteMsg is sent when the form finishes successfully.
type CompleteMsg struct {
	Spec models.LaptopSpec
}

// CancelledMsg is sent when the form is cancelled.
type CancelledMsg struct{}

// Model collects a full laptop specification as a bubbletea model.
type Model struct {
	features  *models.FeaturesResponse
	form      *huh.Form
	width     int
	done      bool
	cancelled bool

	// Form field values (strings for huh)
	company     string
	typeName    string
	ram         string
	weight      string
	touchscreen string
	ips         string
	screenSize  string
	resolution  string
	cpu         string
	hdd         string
	ssd         string
	gpu         string
	os          string
}

var yesNoOptions = []huh.Option[string]{
	huh.NewOption("No", "No"),
	huh.NewOption("Yes", "Yes"),
}

// createTheme returns a custom huh theme matching the CLI palette
func createTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Group.Title = lipgloss.NewStyle().
		Foreground(styles.Primary).
		Bold(true).
		MarginBottom(1)
	t.Group.Description = lipgloss.NewStyle().
		Foreground(styles.Muted).
		MarginBottom(1)

	t.Focused.Base = lipgloss.NewStyle().
		PaddingLeft(1).
		BorderStyle(lipgloss.ThickBorder()).
		BorderLeft(true).
		BorderForeground(styles.Primary)
	t.Focused.Title = lipgloss.NewStyle().
		Foreground(styles.Primary).
		Bold(true)
	t.Focused.Description = lipgloss.NewStyle().
		Foreground(styles.Muted)
	t.Focused.ErrorIndicator = lipgloss.NewStyle().
		Foreground(styles.Danger).
		SetString(" *")
	t.Focused.ErrorMessage = lipgloss.NewStyle().
		Foreground(styles.Danger)

	t.Focused.SelectSelector = lipgloss.NewStyle().
		Foreground(styles.Primary).
		SetString("> ")
	t.Focused.Option = lipgloss.NewStyle().
		Foreground(styles.Text)
	t.Focused.SelectedOption = lipgloss.NewStyle().
		Foreground(styles.Primary).
		Bold(true)

	t.Focused.TextInput.Cursor = lipgloss.NewStyle().
		Foreground(styles.Primary)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().
		Foreground(styles.Muted)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().
		Foreground(styles.Primary)
	t.Focused.TextInput.Text = lipgloss.NewStyle().
		Foreground(styles.Text)

	t.Blurred = t.Focused
	t.Blurred.Base = lipgloss.NewStyle().
		PaddingLeft(1).
		BorderStyle(lipgloss.HiddenBorder()).
		BorderLeft(true)
	t.Blurred.Title = lipgloss.NewStyle().
		Foreground(styles.Muted)
	t.Blurred.SelectSelector = lipgloss.NewStyle().
		Foreground(styles.Muted).
		SetString("  ")
	t.Blurred.Option = lipgloss.NewStyle().
		Foreground(styles.Muted)

	return t
}

func stringOptions(values []string) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(values))
	for _, v := range values {
		opts = append(opts, huh.NewOption(v, v))
	}
	return opts
}

func gbOptions(values []int) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(values))
	for _, v := range values {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%d GB", v), strconv.Itoa(v)))
	}
	return opts
}

// New creates a form model constrained by the given feature options.
func New(features *models.FeaturesResponse) *Model {
	m := &Model{
		features:    features,
		touchscreen: "No",
		ips:         "No",
	}
	m.form = m.createForm()
	return m
}

func (m *Model) createForm() *huh.Form {
	opts := m.features.Options
	cons := m.features.Constraints

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Company").
				Options(stringOptions(opts.Companies)...).
				Value(&m.company),
			huh.NewSelect[string]().
				Title("Type").
				Options(stringOptions(opts.TypeNames)...).
				Value(&m.typeName),
			huh.NewSelect[string]().
				Title("CPU brand").
				Options(stringOptions(opts.CPUBrands)...).
				Value(&m.cpu),
			huh.NewSelect[string]().
				Title("GPU brand").
				Options(stringOptions(opts.GPUBrands)...).
				Value(&m.gpu),
			huh.NewSelect[string]().
				Title("Operating system").
				Options(stringOptions(opts.OperatingSystems)...).
				Value(&m.os),
		).Title("Brand & Platform").
			Description("Use ↑/↓ to select, Enter to confirm"),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("RAM").
				Options(gbOptions(cons.RAMOptions)...).
				Value(&m.ram),
			huh.NewSelect[string]().
				Title("HDD").
				Options(gbOptions(cons.HDDOptions)...).
				Value(&m.hdd),
			huh.NewSelect[string]().
				Title("SSD").
				Options(gbOptions(cons.SSDOptions)...).
				Value(&m.ssd),
			huh.NewInput().
				Title("Weight (kg)").
				Placeholder("e.g., 1.5").
				CharLimit(6).
				Value(&m.weight).
				Validate(validateFloatRange(cons.WeightMin, cons.WeightMax)),
		).Title("Memory & Storage").
			Description("Pick capacities and enter the weight"),
		huh.NewGroup(
			huh.NewInput().
				Title("Screen size (inches)").
				Placeholder("e.g., 15.6").
				CharLimit(5).
				Value(&m.screenSize).
				Validate(validateFloatRange(cons.ScreenSizeMin, cons.ScreenSizeMax)),
			huh.NewSelect[string]().
				Title("Resolution").
				Options(stringOptions(cons.Resolutions)...).
				Value(&m.resolution),
			huh.NewSelect[string]().
				Title("Touchscreen").
				Options(yesNoOptions...).
				Value(&m.touchscreen),
			huh.NewSelect[string]().
				Title("IPS panel").
				Options(yesNoOptions...).
				Value(&m.ips),
		).Title("Display").
			Description("Screen dimensions and panel features"),
	).WithTheme(createTheme())
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return m.form.Init()
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tea.KeyMsg:
		if msg.String() == "esc" || msg.String() == "ctrl+c" {
			m.cancelled = true
			return m, tea.Sequence(
				func() tea.Msg { return CancelledMsg{} },
				tea.Quit,
			)
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted && !m.done {
		m.done = true
		spec := m.Spec()
		return m, tea.Sequence(
			func() tea.Msg { return CompleteMsg{Spec: spec} },
			tea.Quit,
		)
	}

	return m, cmd
}

// View implements tea.Model
func (m *Model) View() string {
	if m.form.State == huh.StateCompleted {
		return ""
	}
	return styles.Title.Render("Laptop Price Prediction") + "\n" +
		m.form.View() +
		styles.Help.Render("esc to cancel")
}

// Done reports whether the form completed with all fields filled.
func (m *Model) Done() bool {
	return m.done
}

// Cancelled reports whether the form was aborted before completion.
func (m *Model) Cancelled() bool {
	return m.cancelled
}

// Spec builds the specification record from the collected form values.
// Selects guarantee well-formed numbers, so parse errors cannot occur here.
func (m *Model) Spec() models.LaptopSpec {
	ram, _ := strconv.Atoi(m.ram)
	hdd, _ := strconv.Atoi(m.hdd)
	ssd, _ := strconv.Atoi(m.ssd)
	weight, _ := strconv.ParseFloat(m.weight, 64)
	screenSize, _ := strconv.ParseFloat(m.screenSize, 64)

	return models.LaptopSpec{
		Company:     m.company,
		TypeName:    m.typeName,
		RAM:         &ram,
		Weight:      &weight,
		Touchscreen: m.touchscreen,
		IPS:         m.ips,
		ScreenSize:  &screenSize,
		Resolution:  m.resolution,
		CPU:         m.cpu,
		HDD:         &hdd,
		SSD:         &ssd,
		GPU:         m.gpu,
		OS:          m.os,
	}
}

func validateFloatRange(min, max float64) func(string) error {
	return func(s string) error {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("must be a number")
		}
		if v < min || v > max {
			return fmt.Errorf("must be between %g and %g", min, max)
		}
		return nil
	}
}
