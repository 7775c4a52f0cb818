package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/templetools/doldoc"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	chunkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	elementStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const chunkPaneWidth = 30

type browserModel struct {
	err      error
	doc      *doldoc.Document
	opts     doldoc.Options
	filename string
	viewport viewport.Model
	selected int
	width    int
	height   int
	ready    bool
}

type docLoadedMsg struct {
	err error
	doc *doldoc.Document
}

func newBrowserModel(filename string, opts doldoc.Options) *browserModel {
	return &browserModel{filename: filename, opts: opts}
}

func (m *browserModel) Init() tea.Cmd {
	return m.loadDocument
}

func (m *browserModel) loadDocument() tea.Msg {
	data, err := os.ReadFile(m.filename)
	if err != nil {
		return docLoadedMsg{err: err}
	}
	doc, err := doldoc.ParseDocumentWithOptions(data, m.opts)
	if err != nil {
		return docLoadedMsg{err: err}
	}
	return docLoadedMsg{doc: doc}
}

func (m *browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case docLoadedMsg:
		m.err = msg.err
		m.doc = msg.doc
		m.refreshViewport()
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		vpWidth := msg.Width - chunkPaneWidth - 2
		vpHeight := msg.Height - 4
		if !m.ready {
			m.viewport = viewport.New(vpWidth, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = vpWidth
			m.viewport.Height = vpHeight
		}
		m.refreshViewport()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
				m.refreshViewport()
			}
			return m, nil
		case "down", "j":
			if m.doc != nil && m.selected < len(m.doc.Chunks)-1 {
				m.selected++
				m.refreshViewport()
			}
			return m, nil
		}
	}

	if m.ready {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *browserModel) refreshViewport() {
	if !m.ready || m.doc == nil || len(m.doc.Chunks) == 0 {
		return
	}
	chunk := m.doc.Chunks[m.selected]
	var b strings.Builder
	for _, elem := range chunk.Elements {
		b.WriteString(elementStyle.Render(elem.String()))
		b.WriteByte('\n')
	}
	m.viewport.SetContent(b.String())
	m.viewport.GotoTop()
}

func (m *browserModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n" +
			helpStyle.Render("q to quit")
	}
	if m.doc == nil || !m.ready {
		return "Loading " + m.filename + "..."
	}

	title := titleStyle.Render(fmt.Sprintf("%s — %d chunks", m.filename, len(m.doc.Chunks)))

	var left strings.Builder
	for i, chunk := range m.doc.Chunks {
		line := fmt.Sprintf("chunk %d (%d elems)", chunk.ID, len(chunk.Elements))
		if i == m.selected {
			left.WriteString(selectedStyle.Render("> " + line))
		} else {
			left.WriteString(chunkStyle.Render("  " + line))
		}
		left.WriteByte('\n')
	}
	if len(m.doc.Chunks) == 0 {
		left.WriteString(helpStyle.Render("(no chunks)"))
	}

	leftPane := lipgloss.NewStyle().Width(chunkPaneWidth).Render(left.String())
	body := lipgloss.JoinHorizontal(lipgloss.Top, leftPane, m.viewport.View())
	help := helpStyle.Render("up/down: select chunk  •  pgup/pgdn: scroll  •  q: quit")

	return title + "\n" + body + "\n" + help
}

func runInteractive(filename string, opts doldoc.Options) error {
	p := tea.NewProgram(newBrowserModel(filename, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
