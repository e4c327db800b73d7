// Package tui is the terminal front end: a Chat tab that sends prompts
// through the console and a Todo List tab backed by an in-memory list.
package tui

import (
	"context"
	"fmt"
	"strings"

	"chatconsole/internal/console"
	"chatconsole/internal/todo"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#6933ff"))

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			Foreground(lipgloss.Color("#ec3f96"))

	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d6dbe7"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00fced"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff5f5f"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ec3f96"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d6dbe7"))
)

type tab int

const (
	chatTab tab = iota
	todoTab
)

type completionMsg struct {
	result console.Result
}

type Model struct {
	ctx     context.Context
	console *console.Console
	todos   *todo.List

	active    tab
	prompt    textinput.Model
	todoInput textinput.Model
	selected  int

	status   string
	response string
	failed   bool
	width    int
	height   int
}

func New(ctx context.Context, c *console.Console, todos *todo.List) Model {
	prompt := textinput.New()
	prompt.Placeholder = "Ask something..."
	prompt.CharLimit = 4000
	prompt.Width = 60
	prompt.Focus()

	todoInput := textinput.New()
	todoInput.Placeholder = "Enter a todo item"
	todoInput.CharLimit = 200
	todoInput.Width = 40

	m := Model{
		ctx:       ctx,
		console:   c,
		todos:     todos,
		prompt:    prompt,
		todoInput: todoInput,
	}
	if !c.Ready() {
		m.failed = true
		m.status = console.MsgNotConfigured
		if err := c.SetupError(); err != nil {
			m.status = err.Error()
		}
	}
	return m
}

// Run blocks until the user quits or ctx is canceled.
func Run(ctx context.Context, c *console.Console, todos *todo.List) error {
	p := tea.NewProgram(New(ctx, c, todos), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			_ = m.console.Close()
			return m, tea.Quit
		case "tab":
			return m.switchTab(), nil
		}
		if m.active == chatTab {
			switch msg.String() {
			case "enter":
				return m.send()
			case "esc":
				m.console.Cancel()
				return m, nil
			}
		} else {
			switch msg.String() {
			case "enter":
				return m.addTodo(), nil
			case "ctrl+d":
				return m.removeSelected(), nil
			case "up":
				if m.selected > 0 {
					m.selected--
				}
				return m, nil
			case "down":
				if m.selected < m.todos.Len()-1 {
					m.selected++
				}
				return m, nil
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.prompt.Width = max(msg.Width-4, 10)
		return m, nil

	case completionMsg:
		if msg.result.Superseded {
			return m, nil
		}
		m.status = msg.result.Message
		m.response = msg.result.Response
		m.failed = msg.result.Status == console.StatusFailed
		return m, nil
	}

	var cmd tea.Cmd
	if m.active == chatTab {
		m.prompt, cmd = m.prompt.Update(msg)
	} else {
		m.todoInput, cmd = m.todoInput.Update(msg)
	}
	return m, cmd
}

func (m Model) switchTab() Model {
	if m.active == chatTab {
		m.active = todoTab
		m.prompt.Blur()
		m.todoInput.Focus()
	} else {
		m.active = chatTab
		m.todoInput.Blur()
		m.prompt.Focus()
	}
	return m
}

func (m Model) send() (Model, tea.Cmd) {
	if !m.console.Ready() {
		m.failed = true
		m.status = console.MsgNotConfigured
		return m, nil
	}
	text := m.prompt.Value()
	if strings.TrimSpace(text) == "" {
		m.failed = false
		m.status = console.MsgEmptyPrompt
		return m, nil
	}
	m.failed = false
	m.status = console.MsgPending
	m.response = ""
	return m, sendCmd(m.ctx, m.console, text)
}

func sendCmd(ctx context.Context, c *console.Console, prompt string) tea.Cmd {
	return func() tea.Msg {
		return completionMsg{result: c.Send(ctx, prompt)}
	}
}

func (m Model) addTodo() Model {
	if m.todos.Add(m.todoInput.Value()) {
		m.selected = m.todos.Len() - 1
	}
	m.todoInput.Reset()
	return m
}

func (m Model) removeSelected() Model {
	items := m.todos.Items()
	if m.selected < 0 || m.selected >= len(items) {
		return m
	}
	m.todos.Remove(items[m.selected])
	if m.selected >= m.todos.Len() && m.selected > 0 {
		m.selected--
	}
	return m
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("chatconsole"))
	b.WriteString("  ")
	b.WriteString(m.renderTab(chatTab, "Chat"))
	b.WriteString(" ")
	b.WriteString(m.renderTab(todoTab, fmt.Sprintf("Todo List (%d)", m.todos.Len())))
	b.WriteString("\n\n")

	var help string
	if m.active == chatTab {
		m.viewChat(&b)
		help = "enter: send • esc: cancel request • tab: todo list • ctrl+c: quit"
	} else {
		m.viewTodos(&b)
		help = "enter: add • ↑/↓: select • ctrl+d: remove • tab: chat • ctrl+c: quit"
	}

	content := b.String()
	if m.height > 0 {
		padding := m.height - strings.Count(content, "\n") - 2
		if padding > 0 {
			content += strings.Repeat("\n", padding)
		}
	}
	return content + "\n" + helpStyle.Render(help) + "\n"
}

func (m Model) renderTab(t tab, label string) string {
	if m.active == t {
		return activeTabStyle.Render(label)
	}
	return tabStyle.Render(label)
}

func (m Model) viewChat(b *strings.Builder) {
	b.WriteString(m.prompt.View())
	b.WriteString("\n\n")
	if m.status != "" {
		if m.failed {
			b.WriteString(errorStyle.Render(m.status))
		} else {
			b.WriteString(statusStyle.Render(m.status))
		}
		b.WriteString("\n\n")
	}
	if m.response != "" {
		style := lipgloss.NewStyle()
		if m.width > 0 {
			style = style.Width(m.width - 2)
		}
		b.WriteString(style.Render(m.response))
		b.WriteString("\n")
	}
}

func (m Model) viewTodos(b *strings.Builder) {
	b.WriteString(m.todoInput.View())
	b.WriteString("\n\n")
	items := m.todos.Items()
	if len(items) == 0 {
		b.WriteString(helpStyle.Render("No todo items yet."))
		b.WriteString("\n")
		return
	}
	for i, item := range items {
		if i == m.selected {
			b.WriteString(selectedStyle.Render("| " + item))
		} else {
			b.WriteString("  " + item)
		}
		b.WriteString("\n")
	}
}
