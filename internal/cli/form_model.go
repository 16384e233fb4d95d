package cli

import (
	"context"
	"io"
	"strings"

	"github.com/alexanderramin/gestemps/internal/cli/formatter"
	"github.com/alexanderramin/gestemps/internal/contract"
	"github.com/alexanderramin/gestemps/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

type formStage int

const (
	stageInput formStage = iota
	stageComputing
	stageResult
)

// chromeLines is the height taken by the header, notice and help bar.
const chromeLines = 5

// Messages produced by the form's commands.
type (
	computedMsg struct {
		resp *contract.ComputeResponse
		err  error
	}
	chartWrittenMsg struct {
		path    string
		written bool
		err     error
	}
	savedMsg struct {
		run *domain.Run
		err error
	}
)

type formKeyMap struct {
	Chart key.Binding
	Save  key.Binding
	Edit  key.Binding
	Clear key.Binding
	Quit  key.Binding
}

func defaultFormKeyMap() formKeyMap {
	return formKeyMap{
		Chart: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "graphique")),
		Save:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "enregistrer")),
		Edit:  key.NewBinding(key.WithKeys("e", "esc"), key.WithHelp("e", "modifier")),
		Clear: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "effacer")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quitter")),
	}
}

// tabMark stands in for a tab inside the text areas, whose sanitizer would
// otherwise expand tabs to spaces and break field splitting.
const tabMark = '⇥'

// formInputs outlives each huh.Form so edits survive going back to the form.
// Both blocks are held with tabs encoded as tabMark.
type formInputs struct {
	offClient string
	client    string
}

// blocks returns both inputs with their tabs restored.
func (in *formInputs) blocks() (offClient, client string) {
	return decodeTabs(in.offClient), decodeTabs(in.client)
}

func encodeTabs(runes []rune) []rune {
	out := make([]rune, len(runes))
	for i, r := range runes {
		if r == '\t' {
			r = tabMark
		}
		out[i] = r
	}
	return out
}

func decodeTabs(s string) string {
	return strings.ReplaceAll(s, string(tabMark), "\t")
}

// formModel collects both blocks in a huh form, then shows the result with
// chart, save and clear actions.
type formModel struct {
	app    *App
	stage  formStage
	inputs *formInputs
	form   *huh.Form
	resp   *contract.ComputeResponse
	notice string
	vp     viewport.Model
	keys   formKeyMap
	width  int
	height int
}

func newFormModel(app *App) *formModel {
	m := &formModel{
		app:    app,
		inputs: &formInputs{},
		vp:     viewport.New(0, 0),
		keys:   defaultFormKeyMap(),
	}
	m.form = newInputForm(m.inputs)
	return m
}

func newFormProgram(app *App, in io.Reader, out io.Writer) *tea.Program {
	return tea.NewProgram(newFormModel(app), tea.WithAltScreen(), tea.WithInput(in), tea.WithOutput(out))
}

func newInputForm(in *formInputs) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Activités hors clientèle").
				Description("code, description, début, fin séparés par des tabulations (affichées "+string(tabMark)+")").
				Placeholder("X\tRévision véhicule\t10/06/2025 08:00\t10/06/2025 10:00").
				CharLimit(0).
				Lines(8).
				Value(&in.offClient),
			huh.NewText().
				Title("Interventions clientèle").
				Description("export des ordres de travail, durées travail et déplacement en fin de ligne").
				CharLimit(0).
				Lines(8).
				Value(&in.client),
		),
	).WithTheme(gestempsHuhTheme()).WithShowHelp(true)
}

func (m *formModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m *formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.vp.Width = msg.Width
		m.vp.Height = max(msg.Height-chromeLines, 1)
		if m.stage == stageInput {
			return m.updateForm(msg)
		}
		return m, nil

	case computedMsg:
		if msg.err != nil {
			cmd := m.restartForm()
			m.notice = formatter.StyleRed.Render("Erreur : " + msg.err.Error())
			return m, cmd
		}
		m.showResult(msg.resp)
		return m, nil

	case chartWrittenMsg:
		m.notice = chartNotice(msg.path, msg.written, msg.err)
		if msg.err != nil {
			m.notice = formatter.StyleRed.Render(m.notice)
		}
		return m, nil

	case savedMsg:
		if msg.err != nil {
			m.notice = formatter.StyleRed.Render("Erreur : " + msg.err.Error())
		} else {
			m.notice = "Calcul enregistré : " + msg.run.ID
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.stage {
		case stageResult:
			return m.handleResultKey(msg)
		case stageComputing:
			return m, nil
		}
		if msg.Type == tea.KeyEsc {
			return m, tea.Quit
		}
		if msg.Type == tea.KeyRunes {
			msg.Runes = encodeTabs(msg.Runes)
			return m.updateForm(msg)
		}
	}

	switch m.stage {
	case stageInput:
		return m.updateForm(msg)
	case stageComputing:
		return m, nil
	}
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m *formModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.stage = stageComputing
		off, client := m.inputs.blocks()
		return m, tea.Batch(cmd, func() tea.Msg { return computeInputs(m.app, off, client) })
	case huh.StateAborted:
		return m, tea.Quit
	}
	return m, cmd
}

func (m *formModel) handleResultKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Chart):
		app, path, result := m.app, m.app.ChartPath, m.resp.Result
		return m, func() tea.Msg {
			written, err := writeChart(app, path, result)
			return chartWrittenMsg{path: path, written: written, err: err}
		}
	case key.Matches(msg, m.keys.Save):
		app, resp := m.app, m.resp
		return m, func() tea.Msg {
			run, err := saveRun(context.Background(), app, resp)
			return savedMsg{run: run, err: err}
		}
	case key.Matches(msg, m.keys.Edit):
		return m, m.restartForm()
	case key.Matches(msg, m.keys.Clear):
		m.app.Compute.Reset()
		m.inputs.offClient, m.inputs.client = "", ""
		m.resp = nil
		cmd := m.restartForm()
		m.notice = "Saisie effacée."
		return m, cmd
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m *formModel) showResult(resp *contract.ComputeResponse) {
	m.resp = resp
	m.stage = stageResult
	m.notice = ""
	m.vp.SetContent(formatter.FormatResult(resp, formatter.ResultOptions{Daily: true, Details: true}))
	m.vp.GotoTop()
}

func (m *formModel) restartForm() tea.Cmd {
	m.stage = stageInput
	m.notice = ""
	m.form = newInputForm(m.inputs)
	cmds := []tea.Cmd{m.form.Init()}
	if m.width > 0 {
		size := tea.WindowSizeMsg{Width: m.width, Height: m.height}
		cmds = append(cmds, func() tea.Msg { return size })
	}
	return tea.Batch(cmds...)
}

func (m *formModel) View() string {
	var sections []string
	sections = append(sections, m.renderHeader())

	switch {
	case m.stage == stageInput:
		sections = append(sections, m.form.View())
	case m.stage == stageComputing:
		sections = append(sections, formatter.Dim("Calcul en cours…"))
	case m.height > 0:
		sections = append(sections, m.vp.View())
	default:
		sections = append(sections, formatter.FormatResult(m.resp, formatter.ResultOptions{Daily: true, Details: true}))
	}

	if m.notice != "" {
		sections = append(sections, m.notice)
	}
	sections = append(sections, m.renderHelp())
	return strings.Join(sections, "\n")
}

func (m *formModel) renderHeader() string {
	title := formatter.StylePurple.Render("gestemps")
	crumb := "saisie"
	if m.stage != stageInput {
		crumb = "résultats"
	}
	sep := formatter.Dim(strings.Repeat("─", max(m.width, 20)))
	return title + " " + formatter.Dim("› "+crumb) + "\n" + sep
}

func (m *formModel) renderHelp() string {
	var bindings []key.Binding
	if m.stage == stageResult {
		bindings = []key.Binding{m.keys.Chart, m.keys.Save, m.keys.Edit, m.keys.Clear, m.keys.Quit}
	} else {
		bindings = []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "valider")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "quitter")),
		}
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
	}
	return strings.Join(hints, "  ")
}

// computeInputs runs one computation pass over the form contents.
func computeInputs(app *App, offClient, client string) tea.Msg {
	resp, err := app.Compute.Compute(context.Background(), contract.ComputeRequest{
		OffClientText: offClient,
		ClientText:    client,
	})
	return computedMsg{resp: resp, err: err}
}
