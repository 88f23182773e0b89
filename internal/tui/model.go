// Package tui is the full-screen single-page front end: category filter
// chips, a card list, an add-business modal and a delete-confirmation modal.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jacksmith/bizdir/internal/cli"
	"github.com/jacksmith/bizdir/internal/model"
	"go.uber.org/zap"
)

// Directory is the store contract the page drives.
type Directory interface {
	AddBusiness(in model.BusinessInput) (model.Business, error)
	DeleteBusiness(id int) bool
	SetFilter(f model.Filter) error
	Filter() model.Filter
	ListVisible() []model.Business
	Counts() map[model.Category]int
	Len() int
}

// Model is the bubbletea model for the directory page.
type Model struct {
	dir    Directory
	logger *zap.Logger

	cursor        int
	width, height int

	addOpen       bool
	form          addForm
	pendingDelete *model.Business

	status string
}

// New returns a page bound to dir.
func New(dir Directory, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	return Model{
		dir:    dir,
		logger: logger,
		form:   newAddForm(),
	}
}

// Run starts the page on the terminal and blocks until the user quits.
func Run(dir Directory, logger *zap.Logger, opts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(New(dir, logger), opts...).Run()
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch {
		case m.addOpen:
			return m.updateAddForm(msg)
		case m.pendingDelete != nil:
			return m.updateDeleteConfirm(msg)
		default:
			return m.updateList(msg)
		}
	}

	if m.addOpen {
		cmd := m.form.update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.dir.ListVisible()

	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(visible)-1 {
			m.cursor++
		}
	case "tab", "right", "l":
		m.shiftFilter(1)
	case "shift+tab", "left", "h":
		m.shiftFilter(-1)
	case "1", "2", "3", "4":
		idx := int(msg.Runes[0] - '1')
		m.selectFilter(model.Filters()[idx])
	case "a":
		m.addOpen = true
		m.status = ""
		cmd := m.form.focusField(fieldName)
		return m, cmd
	case "d", "x", "delete":
		if b, ok := m.selected(visible); ok {
			m.pendingDelete = &b
		}
	case "m", "enter":
		if b, ok := m.selected(visible); ok {
			m.status = "Map: " + b.MapURL()
		}
	}
	return m, nil
}

func (m Model) updateDeleteConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		b := m.pendingDelete
		m.pendingDelete = nil
		if m.dir.DeleteBusiness(b.ID) {
			m.status = fmt.Sprintf("Deleted %s %s", model.FormatID(b.ID), b.Name)
		}
		m.clampCursor()
	case "n", "N", "esc", "q":
		m.pendingDelete = nil
	}
	return m, nil
}

func (m Model) updateAddForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.addOpen = false
		m.form.reset()
		return m, nil
	case "tab", "down":
		return m, m.form.next()
	case "shift+tab", "up":
		return m, m.form.prev()
	case "enter":
		return m.submitAdd()
	}

	if m.form.focus == fieldCategory {
		switch msg.String() {
		case "left", "h":
			m.form.cycleCategory(-1)
		case "right", "l", " ":
			m.form.cycleCategory(1)
		}
		return m, nil
	}

	cmd := m.form.update(msg)
	return m, cmd
}

func (m Model) submitAdd() (tea.Model, tea.Cmd) {
	b, err := m.dir.AddBusiness(m.form.input())
	if err != nil {
		m.form.err = cli.FormMessage(err)
		return m, nil
	}
	m.logger.Debug("added from page", zap.Int("id", b.ID))

	m.addOpen = false
	m.form.reset()
	m.status = fmt.Sprintf("Added %s %s", model.FormatID(b.ID), b.Name)
	m.cursor = 0
	m.clampCursor()
	return m, nil
}

func (m *Model) shiftFilter(delta int) {
	filters := model.Filters()
	cur := 0
	for i, f := range filters {
		if f == m.dir.Filter() {
			cur = i
			break
		}
	}
	next := ((cur+delta)%len(filters) + len(filters)) % len(filters)
	m.selectFilter(filters[next])
}

func (m *Model) selectFilter(f model.Filter) {
	if err := m.dir.SetFilter(f); err != nil {
		// Filters() only yields valid values.
		m.logger.Error("filter rejected", zap.Error(err))
		return
	}
	m.cursor = 0
	m.status = ""
}

func (m *Model) clampCursor() {
	n := len(m.dir.ListVisible())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) selected(visible []model.Business) (model.Business, bool) {
	if m.cursor < 0 || m.cursor >= len(visible) {
		return model.Business{}, false
	}
	return visible[m.cursor], true
}
