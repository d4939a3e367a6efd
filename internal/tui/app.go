// Package tui provides the interactive Bubble Tea dashboard for unitlog.
package tui

import (
	"unitlog/internal/model"
	"unitlog/internal/plan"
	"unitlog/internal/report"
	"unitlog/internal/store"
	"unitlog/internal/taxonomy"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// entriesMsg is sent when the log snapshot has been read.
type entriesMsg struct {
	entries []model.LogEntry
	err     error
}

// appendedMsg is sent when a form submission has been written to the store.
type appendedMsg struct {
	entry model.LogEntry
	err   error
}

const (
	tabToday = iota
	tabHistory
	tabLog
	tabCount
)

var tabNames = []string{"Today", "History", "Log"}

// App is the root Bubble Tea model.
type App struct {
	store     store.EntryStore
	tax       *taxonomy.Table
	allowance plan.Allowance
	date      string

	entries []model.LogEntry
	rep     model.DailyReport
	totals  []model.DayTotal
	loaded  bool
	loadErr error

	width     int
	height    int
	activeTab int
	status    string

	spinner spinner.Model

	form     *huh.Form
	formVals *logFormValues
}

// NewApp creates the dashboard model. The store stays open for the life of
// the program; the caller closes it after Run returns.
func NewApp(s store.EntryStore, tax *taxonomy.Table, allowance plan.Allowance, date string) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#3AA99F"))

	a := App{
		store:     s,
		tax:       tax,
		allowance: allowance,
		date:      date,
		spinner:   sp,
	}
	a.resetForm()
	return a
}

func (a App) Init() tea.Cmd {
	return tea.Batch(a.spinner.Tick, a.loadEntries)
}

// loadEntries reads a fresh snapshot of the log.
func (a App) loadEntries() tea.Msg {
	entries, err := a.store.ReadAll()
	return entriesMsg{entries: entries, err: err}
}

// appendEntry writes one validated entry.
func (a App) appendEntry(e model.LogEntry) tea.Cmd {
	return func() tea.Msg {
		return appendedMsg{entry: e, err: a.store.Append(e)}
	}
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case entriesMsg:
		a.loaded = true
		a.loadErr = msg.err
		a.entries = msg.entries
		a.recompute()
		return a, nil

	case appendedMsg:
		if msg.err != nil {
			a.status = "Append failed: " + msg.err.Error()
			return a, nil
		}
		a.status = "Logged " + msg.entry.Food
		a.activeTab = tabToday
		a.resetForm()
		return a, a.loadEntries

	case spinner.TickMsg:
		if a.loaded {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a.updateForm(msg)
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The log form owns the keyboard while it is visible; esc backs out.
	if a.activeTab == tabLog {
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "esc":
			a.activeTab = tabToday
			return a, nil
		}
		return a.updateForm(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "1":
		a.activeTab = tabToday
	case "2":
		a.activeTab = tabHistory
	case "3", "l":
		a.activeTab = tabLog
		return a, a.form.Init()
	case "tab":
		a.activeTab = (a.activeTab + 1) % tabCount
		if a.activeTab == tabLog {
			return a, a.form.Init()
		}
	case "r":
		a.loaded = false
		return a, tea.Batch(a.spinner.Tick, a.loadEntries)
	}
	return a, nil
}

// updateForm advances the embedded huh form and submits on completion.
func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.form == nil {
		return a, nil
	}

	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	if a.form.State == huh.StateCompleted {
		entry, err := a.formVals.entry(a.date)
		if err != nil {
			a.status = err.Error()
			a.resetForm()
			return a, nil
		}
		return a, a.appendEntry(entry)
	}

	return a, cmd
}

// recompute refreshes the derived report data from the current snapshot.
func (a *App) recompute() {
	a.rep = report.Evaluate(a.entries, a.date, a.tax.BaseTargets(), a.allowance.ExtraUnits)
	a.totals = report.DayTotals(a.entries)
}
