// quickmemo/tui/model.go

// Package tui is the terminal front-end: a title line, a body editor, a
// toolbar and a searchable memo list. All state changes go through app.Shell.
package tui

import (
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ViniZap4/quickmemo/app"
)

// frameInterval is how often the shell runs its refresh cycle while idle.
const frameInterval = 100 * time.Millisecond

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type focusField int

const (
	focusTitle focusField = iota
	focusContent
)

type Model struct {
	shell *app.Shell

	title   textinput.Model
	content textarea.Model
	search  textinput.Model

	focus  focusField
	cursor int
	width  int
	height int
	status string

	copyText func(string) error
}

func New(shell *app.Shell) *Model {
	title := textinput.New()
	title.Placeholder = "input title..."
	title.Prompt = ""
	title.SetValue(shell.Title())
	title.Focus()

	content := textarea.New()
	content.Placeholder = "input memo..."
	content.ShowLineNumbers = false
	content.CharLimit = 0
	content.SetValue(shell.Content())

	search := textinput.New()
	search.Placeholder = "search..."
	search.Prompt = "/ "

	return &Model{
		shell:    shell,
		title:    title,
		content:  content,
		search:   search,
		copyText: clipboard.WriteAll,
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tick())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tickMsg:
		m.frame()
		return m, tick()

	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			m.flush()
			m.shell.Shutdown()
			return m, tea.Quit
		}

		var cmd tea.Cmd
		if m.shell.Screen() == app.ScreenList {
			cmd = m.updateList(msg)
		} else {
			cmd = m.updateEditor(msg)
		}
		m.frame()
		return m, cmd
	}

	return m, nil
}

func (m *Model) updateEditor(msg tea.KeyMsg) tea.Cmd {
	m.status = ""

	switch {
	case key.Matches(msg, keys.New):
		m.shell.Post(app.NewMemo{})
		return nil
	case key.Matches(msg, keys.List):
		m.shell.Post(app.ShowList{})
		return nil
	case key.Matches(msg, keys.Delete):
		m.shell.Post(app.DeleteCurrent{})
		return nil
	case key.Matches(msg, keys.Copy):
		m.flush()
		if err := m.copyText(m.shell.ScratchContent()); err != nil {
			m.status = "copy failed: " + err.Error()
		} else {
			m.status = "copied to clipboard"
		}
		return nil
	case key.Matches(msg, keys.Focus):
		m.toggleFocus()
		return nil
	}

	var cmd tea.Cmd
	if m.focus == focusTitle {
		m.title, cmd = m.title.Update(msg)
	} else {
		m.content, cmd = m.content.Update(msg)
	}
	return cmd
}

func (m *Model) updateList(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Back):
		m.shell.Post(app.Back{})
		return nil
	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return nil
	case key.Matches(msg, keys.Down):
		if m.cursor < len(m.shell.Memos())-1 {
			m.cursor++
		}
		return nil
	case key.Matches(msg, keys.Select):
		memos := m.shell.Memos()
		if m.cursor < len(memos) {
			m.shell.Post(app.SelectMemo{ID: memos[m.cursor].ID})
		}
		return nil
	}

	var cmd tea.Cmd
	before := m.search.Value()
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		m.shell.Post(app.SetQuery{Query: m.search.Value()})
		m.cursor = 0
	}
	return cmd
}

// frame runs one shell refresh cycle and pulls back any buffer change the
// shell made (new memo, selection, deletion).
func (m *Model) frame() {
	prev := m.shell.Screen()
	m.flush()
	m.shell.Update()

	if m.title.Value() != m.shell.Title() {
		m.title.SetValue(m.shell.Title())
	}
	if m.content.Value() != m.shell.Content() {
		m.content.SetValue(m.shell.Content())
	}

	switch screen := m.shell.Screen(); {
	case screen == app.ScreenList && prev != app.ScreenList:
		m.cursor = 0
		m.search.Focus()
		m.title.Blur()
		m.content.Blur()
	case screen == app.ScreenEditor && prev != app.ScreenEditor:
		m.search.Blur()
		m.setFocus(m.focus)
	}
}

// flush copies the editor widgets into the shell buffer.
func (m *Model) flush() {
	if m.shell.Screen() != app.ScreenEditor {
		return
	}
	m.shell.SetBuffer(m.title.Value(), m.content.Value())
}

func (m *Model) toggleFocus() {
	if m.focus == focusTitle {
		m.setFocus(focusContent)
	} else {
		m.setFocus(focusTitle)
	}
}

func (m *Model) setFocus(f focusField) {
	m.focus = f
	if f == focusTitle {
		m.content.Blur()
		m.title.Focus()
	} else {
		m.title.Blur()
		m.content.Focus()
	}
}

func (m *Model) resize() {
	m.title.Width = max(m.width-2, 10)
	m.search.Width = max(m.width-4, 10)
	m.content.SetWidth(max(m.width, 10))
	// title, separator, toolbar, status
	m.content.SetHeight(max(m.height-4, 3))
}

func (m *Model) View() string {
	if m.shell.Screen() == app.ScreenList {
		return m.listView()
	}
	return m.editorView()
}

func (m *Model) editorView() string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render(m.title.View()))
	sb.WriteString("\n")
	sb.WriteString(separatorStyle.Render(strings.Repeat("─", max(m.width, 20))))
	sb.WriteString("\n")
	sb.WriteString(m.content.View())
	sb.WriteString("\n")
	sb.WriteString(renderBindings(keys.toolbar()))
	if m.status != "" {
		sb.WriteString("\n")
		sb.WriteString(statusStyle.Render(m.status))
	}
	return sb.String()
}

func (m *Model) listView() string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render("Memos"))
	sb.WriteString("\n")
	sb.WriteString(m.search.View())
	sb.WriteString("\n\n")

	memos := m.shell.Memos()
	if len(memos) == 0 {
		sb.WriteString(helpStyle.Render("no memos"))
		sb.WriteString("\n")
	}
	for i, memo := range memos {
		line := "  " + memo.Title
		if i == m.cursor {
			line = selectedStyle.Render("> " + memo.Title)
		}
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString("  " + dateStyle.Render(memo.DisplayDate()))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(renderBindings(keys.listbar()))
	return sb.String()
}

func renderBindings(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, keyStyle.Render(h.Key)+" "+helpStyle.Render(h.Desc))
	}
	return strings.Join(parts, "  ")
}
