// Package ui provides the terminal front end: a live-updating view for
// streamed answers and the shared styles.
package ui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// LiveTarget is a render.Target backed by a bubbletea program. Updates
// replace the displayed content wholesale; the view shows a spinner until
// the first fragment arrives.
type LiveTarget struct {
	updates  chan string
	quit     chan struct{}
	quitOnce sync.Once
}

func NewLiveTarget() *LiveTarget {
	return &LiveTarget{
		updates: make(chan string, 16),
		quit:    make(chan struct{}),
	}
}

// Update replaces the displayed content. Safe to call from the goroutine
// driving the stream while Run blocks in the main goroutine. Once the
// view has exited (user quit), updates are dropped instead of blocking
// the sender.
func (t *LiveTarget) Update(content string) {
	select {
	case t.updates <- content:
	case <-t.quit:
	}
}

// Close ends the stream of updates; Run returns once the final frame is
// painted.
func (t *LiveTarget) Close() error {
	close(t.updates)
	return nil
}

// Run blocks until Close is called or the user quits. It returns the
// content that was on screen last.
func (t *LiveTarget) Run() (string, error) {
	model := newStreamModel(t.updates)
	p := tea.NewProgram(model)
	final, err := p.Run()
	t.quitOnce.Do(func() { close(t.quit) })
	if err != nil {
		return "", err
	}
	m, ok := final.(streamModel)
	if !ok {
		return "", nil
	}
	return m.content, nil
}

type streamModel struct {
	spinner  spinner.Model
	updates  <-chan string
	content  string
	done     bool
	rendered string
}

// contentMsg carries a full-content replacement.
type contentMsg string

// closedMsg signals that no more updates will arrive.
type closedMsg struct{}

func newStreamModel(updates <-chan string) streamModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return streamModel{
		spinner: s,
		updates: updates,
	}
}

func (m streamModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, waitForUpdate(m.updates))
}

func waitForUpdate(updates <-chan string) tea.Cmd {
	return func() tea.Msg {
		content, ok := <-updates
		if !ok {
			return closedMsg{}
		}
		return contentMsg(content)
	}
}

func (m streamModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			m.done = true
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case contentMsg:
		m.content = string(msg)
		m.rendered = renderMarkdown(m.content)
		return m, waitForUpdate(m.updates)

	case closedMsg:
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

func (m streamModel) View() string {
	if m.content == "" {
		if m.done {
			return ""
		}
		return m.spinner.View() + " Thinking..."
	}
	if m.rendered != "" {
		return m.rendered
	}
	return m.content + "\n"
}

// renderMarkdown pretty-prints the accumulated answer. Falls back to the
// raw text on renderer errors.
func renderMarkdown(content string) string {
	r := markdownRenderer()
	if r == nil {
		return ""
	}
	rendered, err := r.Render(content)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(rendered) + "\n"
}
