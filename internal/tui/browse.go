// Package tui is the interactive view behind `todo browse`. Every key action
// goes straight to the task files, then the list is reloaded so the shown
// positions always match the pending file.
package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/plaintodo/internal/model"
	"github.com/idilsaglam/plaintodo/internal/store/textstore"
	"github.com/idilsaglam/plaintodo/internal/ui"
)

type Store interface {
	List() ([]model.Task, error)
	Add(text string) error
	Delete(pos int) error
	Complete(pos int) (model.Task, error)
	Report() (model.Report, error)
}

// taskItem adapts a pending task to bubbles/list.Item
type taskItem struct{ model.Task }

func (i taskItem) Title() string       { return i.Text }
func (i taskItem) Description() string { return "" }
func (i taskItem) FilterValue() string { return i.Text }

// Single-line delegate: "> [3] text" for the selected row.
type itemDelegate struct{ theme ui.Theme }

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(taskItem)
	if !ok {
		return
	}
	prefix := "  "
	if index == m.Index() {
		prefix = d.theme.Title.Reverse(true).Render(">") + " "
	}
	fmt.Fprintln(w, prefix+d.theme.Accent.Render(fmt.Sprintf("[%d]", it.Position))+" "+it.Text)
}

var (
	completeKey = key.NewBinding(key.WithKeys("x", " "), key.WithHelp("x/space", "done"))
	deleteKey   = key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete"))
	addKey      = key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	reloadKey   = key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload"))
)

// Model is the bubbletea model for the browse view.
type Model struct {
	store Store
	theme ui.Theme

	list  list.Model
	input textinput.Model

	adding    bool
	status    string
	statusErr bool

	pending, completed int
}

func New(store Store, theme ui.Theme) Model {
	l := list.New(nil, itemDelegate{theme: theme}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = theme.Title
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("todo", "todos")
	extra := func() []key.Binding { return []key.Binding{completeKey, deleteKey, addKey, reloadKey} }
	l.AdditionalShortHelpKeys = extra
	l.AdditionalFullHelpKeys = extra

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "New todo..."
	ti.CharLimit = 200

	m := Model{store: store, theme: theme, list: l, input: ti}
	m.reload()
	return m
}

// Run starts the view on the alternate screen and blocks until it quits.
func Run(store Store, theme ui.Theme) error {
	_, err := tea.NewProgram(New(store, theme), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.list.SetSize(ws.Width-4, ws.Height-6)
		m.input.Width = ws.Width - 8
		return m, nil
	}

	if m.adding {
		return m.updateAdding(msg)
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok || m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch {
	case km.String() == "q", km.String() == "esc" && m.list.FilterState() == list.Unfiltered:
		return m, tea.Quit
	case key.Matches(km, completeKey):
		if it, ok := m.selected(); ok {
			_, err := m.store.Complete(it.Position)
			m.setStatus(fmt.Sprintf("Marked todo #%d as done.", it.Position), err)
			m.reload()
		}
		return m, nil
	case key.Matches(km, deleteKey):
		if it, ok := m.selected(); ok {
			err := m.store.Delete(it.Position)
			m.setStatus(fmt.Sprintf("Deleted todo #%d", it.Position), err)
			m.reload()
		}
		return m, nil
	case key.Matches(km, addKey):
		m.adding = true
		m.input.SetValue("")
		return m, m.input.Focus()
	case key.Matches(km, reloadKey):
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateAdding(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "enter":
			text := m.input.Value()
			if strings.TrimSpace(text) == "" {
				m.status, m.statusErr = "Error: Missing todo string. Nothing added!", true
				return m, nil
			}
			err := m.store.Add(text)
			m.setStatus(`Added todo: "`+text+`"`, err)
			m.stopAdding()
			m.reload()
			return m, nil
		case "esc":
			m.stopAdding()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) stopAdding() {
	m.adding = false
	m.input.SetValue("")
	m.input.Blur()
}

func (m Model) selected() (taskItem, bool) {
	it, ok := m.list.SelectedItem().(taskItem)
	return it, ok
}

// reload re-reads both files. The cursor stays on the same row index,
// clamped to the new length.
func (m *Model) reload() {
	tasks, err := m.store.List()
	if err != nil {
		m.setStatus("", err)
		return
	}
	items := make([]list.Item, 0, len(tasks))
	for _, t := range tasks {
		items = append(items, taskItem{t})
	}
	idx := m.list.Index()
	m.list.SetItems(items)
	if idx >= len(items) {
		idx = len(items) - 1
	}
	if idx >= 0 {
		m.list.Select(idx)
	}

	r, err := m.store.Report()
	m.pending, m.completed = r.Pending, r.Completed
	if err != nil {
		m.setStatus("", err)
	}
	m.list.Title = fmt.Sprintf("%s   %s %d  %s %d",
		m.theme.Title.Render("Todos"),
		m.theme.Success.Render("✔"), m.completed,
		m.theme.Pending.Render("•"), m.pending,
	)
}

func (m *Model) setStatus(ok string, err error) {
	if err == nil {
		m.status, m.statusErr = ok, false
		return
	}
	m.status, m.statusErr = "Error: "+statusText(err), true
}

func statusText(err error) string {
	kind, _ := textstore.KindOf(err)
	switch kind {
	case textstore.Duplicate:
		return "Todo Already Exists"
	case textstore.NotFound:
		return "No Todo Found"
	}
	var se *textstore.Error
	if errors.As(err, &se) && se.Err != nil {
		return se.Err.Error()
	}
	return err.Error()
}

func (m Model) View() string {
	content := m.list.View()
	if len(m.list.Items()) == 0 && m.list.FilterState() == list.Unfiltered {
		content += "\n" + m.theme.Muted.Render("There are no pending todos!")
	}
	if m.adding {
		bar := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1)
		content += "\n" + bar.Render("Add new todo\n"+m.input.View())
	}
	if m.status != "" {
		st := m.theme.Success
		if m.statusErr {
			st = m.theme.Error
		}
		content += "\n" + st.Render(m.status)
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1).
		Render(content)
}
