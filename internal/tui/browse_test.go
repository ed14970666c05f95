package tui

import (
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/plaintodo/internal/store/textstore"
	"github.com/idilsaglam/plaintodo/internal/ui"
)

func newTestModel(t *testing.T, pending string) (Model, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	if pending != "" {
		require.NoError(t, afero.WriteFile(fs, textstore.PendingFileName, []byte(pending), 0o644))
	}
	day := time.Date(2024, time.March, 5, 8, 0, 0, 0, time.Local)
	store := textstore.New(fs, textstore.WithClock(func() time.Time { return day }))

	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return New(store, ui.NewTheme(r)), fs
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func fileContent(t *testing.T, fs afero.Fs, name string) string {
	t.Helper()
	b, err := afero.ReadFile(fs, name)
	require.NoError(t, err)
	return string(b)
}

func TestNew_LoadsNewestFirst(t *testing.T) {
	m, _ := newTestModel(t, "one\ntwo\n")

	items := m.list.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 2, items[0].(taskItem).Position)
	assert.Equal(t, "two", items[0].(taskItem).Text)
	assert.Equal(t, 2, m.pending)
	assert.Equal(t, 0, m.completed)
}

func TestComplete_SelectedTask(t *testing.T) {
	m, fs := newTestModel(t, "one\ntwo\n")

	m, _ = press(t, m, runes("x"))
	assert.Equal(t, "one\n", fileContent(t, fs, textstore.PendingFileName))
	assert.Equal(t, "x 2024-03-05 two\n", fileContent(t, fs, textstore.CompletedFileName))
	assert.Equal(t, "Marked todo #2 as done.", m.status)
	assert.False(t, m.statusErr)
	assert.Equal(t, 1, m.pending)
	assert.Equal(t, 1, m.completed)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, "", fileContent(t, fs, textstore.PendingFileName))
	assert.Empty(t, m.list.Items())
}

func TestDelete_SelectedTask(t *testing.T) {
	m, fs := newTestModel(t, "one\ntwo\nthree\n")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = press(t, m, runes("d"))
	assert.Equal(t, "one\nthree\n", fileContent(t, fs, textstore.PendingFileName))
	assert.Equal(t, "Deleted todo #2", m.status)

	exists, _ := afero.Exists(fs, textstore.CompletedFileName)
	assert.False(t, exists)
}

func TestEmptyList_KeysAreNoops(t *testing.T) {
	m, fs := newTestModel(t, "")

	m, _ = press(t, m, runes("x"))
	m, _ = press(t, m, runes("d"))
	assert.Empty(t, m.status)
	exists, _ := afero.Exists(fs, textstore.PendingFileName)
	assert.False(t, exists)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	assert.Contains(t, next.View(), "There are no pending todos!")
}

func TestAdd(t *testing.T) {
	m, fs := newTestModel(t, "")

	m, _ = press(t, m, runes("a"))
	require.True(t, m.adding)
	m, _ = press(t, m, runes("Buy milk"))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, m.adding)
	assert.Equal(t, "Buy milk\n", fileContent(t, fs, textstore.PendingFileName))
	assert.Equal(t, `Added todo: "Buy milk"`, m.status)
	require.Len(t, m.list.Items(), 1)

	m, _ = press(t, m, runes("a"))
	m, _ = press(t, m, runes("Buy milk"))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "Error: Todo Already Exists", m.status)
	assert.True(t, m.statusErr)
	assert.Equal(t, "Buy milk\n", fileContent(t, fs, textstore.PendingFileName))
}

func TestAdd_BlankAndCancel(t *testing.T) {
	m, fs := newTestModel(t, "")

	m, _ = press(t, m, runes("a"))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.adding, "blank input keeps the prompt open")
	assert.Equal(t, "Error: Missing todo string. Nothing added!", m.status)

	m, _ = press(t, m, runes("never mind"))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.adding)
	exists, _ := afero.Exists(fs, textstore.PendingFileName)
	assert.False(t, exists)
}

func TestReload_PicksUpExternalChanges(t *testing.T) {
	m, fs := newTestModel(t, "one\n")
	require.NoError(t, afero.WriteFile(fs, textstore.PendingFileName, []byte("one\ntwo\nthree\n"), 0o644))

	m, _ = press(t, m, runes("r"))
	assert.Len(t, m.list.Items(), 3)
	assert.Equal(t, 3, m.pending)
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t, "one\n")

	_, cmd := press(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestWindowSize(t *testing.T) {
	m, _ := newTestModel(t, "one\n")
	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	m = next.(Model)
	assert.Equal(t, 56, m.list.Width())
	assert.Contains(t, m.View(), "[1] one")
}
