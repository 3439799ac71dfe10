// Qedwatch is a read-only spectator for a document hosted by qedserve.
// It connects to a document's change stream and, on every mutation,
// re-fetches and redraws the affected line range. It never issues a
// mutating command of its own.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gorilla/websocket"

	"github.com/eaburns/qed/qeditor"
)

var (
	addr = flag.String("addr", "localhost:8080", "qedserve address")
	id   = flag.String("doc", "", "document id to watch")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			Padding(0, 1)

	seqStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	changeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("120"))
	deleteStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	otherStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	lineStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Padding(0, 1)
)

// a snapshot is one event plus the lines its range held immediately
// after the event was applied (nil for Undo, Redo, and Quit, whose
// range is not well-defined).
type snapshot struct {
	event qeditor.ChangeEvent
	lines []string
}

type model struct {
	docID  string
	rows   []snapshot
	err    error
	height int
}

type eventMsg qeditor.ChangeEvent
type fetchedMsg struct {
	event qeditor.ChangeEvent
	lines []string
	err   error
}
type errMsg struct{ err error }

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case eventMsg:
		ev := qeditor.ChangeEvent(msg)
		if ev.Kind.String() != "change" && ev.Kind.String() != "delete" {
			m.rows = append(m.rows, snapshot{event: ev})
			return m, nil
		}
		return m, fetchCmd(*addr, m.docID, ev)
	case fetchedMsg:
		m.rows = append(m.rows, snapshot{event: msg.event, lines: msg.lines})
		if msg.err != nil {
			m.err = msg.err
		}
		return m, nil
	case errMsg:
		m.err = msg.err
		return m, tea.Quit
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("qedwatch: %s", m.docID)))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(deleteStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	rows := m.rows
	if max := m.height - 4; max > 0 && len(rows) > max {
		rows = rows[len(rows)-max:]
	}
	for _, row := range rows {
		ev := row.event
		style := otherStyle
		switch ev.Kind.String() {
		case "change":
			style = changeStyle
		case "delete":
			style = deleteStyle
		}
		b.WriteString(seqStyle.Render(fmt.Sprintf("%4d ", ev.Seq)))
		b.WriteString(style.Render(fmt.Sprintf("%-6s a1=%d a2=%d n=%d", ev.Kind, ev.A1, ev.A2, ev.N)))
		b.WriteString("\n")
		for _, line := range row.lines {
			b.WriteString("     ")
			b.WriteString(lineStyle.Render(line))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("q to quit"))
	return b.String()
}

func dial(addr, id string) (*websocket.Conn, error) {
	u := url.URL{Scheme: "ws", Host: addr, Path: "/document/" + id + "/changes"}
	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	return conn, err
}

// pump relays a conn's events into msgs until the connection fails or
// closes, so the websocket read loop runs independently of bubbletea's
// own event loop.
func pump(conn *websocket.Conn, msgs chan<- tea.Msg) {
	for {
		var ev qeditor.ChangeEvent
		if err := conn.ReadJSON(&ev); err != nil {
			msgs <- errMsg{err}
			return
		}
		msgs <- eventMsg(ev)
	}
}

// fetchCmd re-prints ev's affected range over HTTP so the spectator
// shows the document's current content, not just the command that
// touched it.
func fetchCmd(addr, id string, ev qeditor.ChangeEvent) tea.Cmd {
	return func() tea.Msg {
		body := fmt.Sprintf("%d,%dp\n", ev.A1, ev.A2)
		u := url.URL{Scheme: "http", Host: addr, Path: "/document/" + id + "/command"}
		resp, err := http.Post(u.String(), "text/plain", bytes.NewReader([]byte(body)))
		if err != nil {
			return fetchedMsg{event: ev, err: err}
		}
		defer resp.Body.Close()

		var result qeditor.CommandResult
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return fetchedMsg{event: ev, err: err}
		}
		return fetchedMsg{event: ev, lines: result.Output}
	}
}

func main() {
	flag.Parse()
	if *id == "" {
		fmt.Fprintln(os.Stderr, "qedwatch: -doc is required")
		os.Exit(1)
	}

	conn, err := dial(*addr, *id)
	if err != nil {
		fmt.Fprintln(os.Stderr, "qedwatch: dial:", err)
		os.Exit(1)
	}
	defer conn.Close()

	msgs := make(chan tea.Msg, 16)
	go pump(conn, msgs)

	p := tea.NewProgram(model{docID: *id}, tea.WithAltScreen())
	go func() {
		for msg := range msgs {
			p.Send(msg)
		}
	}()

	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "qedwatch:", err)
		os.Exit(1)
	}
}
