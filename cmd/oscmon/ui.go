package main

import (
	"fmt"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	easyosc "github.com/easyosc/go-easyosc"
	"github.com/easyosc/go-easyosc/osc"
)

const tickInterval = 50 * time.Millisecond

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("241"))
	addrStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type row struct {
	total  int
	recent int // arrivals during the last poll, drives the activity marker
	args   string
}

type tickMsg time.Time

type model struct {
	recv   *easyosc.Receiver
	listen string
	rows   map[string]*row
	order  []string
	start  time.Time
}

func newModel(recv *easyosc.Receiver, cfg Config) *model {
	m := &model{
		recv:   recv,
		listen: cfg.Listen,
		rows:   make(map[string]*row),
		start:  time.Now(),
	}
	for _, addr := range cfg.Watch {
		m.row(addr)
	}
	recv.CountIncoming(true)
	recv.SetDefault(func(msg *osc.Message) {
		m.row(msg.Address).args = formatArgs(msg)
	})
	return m
}

func (m *model) row(addr string) *row {
	r, ok := m.rows[addr]
	if !ok {
		r = &row{}
		m.rows[addr] = r
		m.order = append(m.order, addr)
	}
	return r
}

func formatArgs(msg *osc.Message) string {
	parts := make([]string, len(msg.Arguments))
	for i, a := range msg.Arguments {
		switch v := a.(type) {
		case string:
			parts[i] = fmt.Sprintf("%q", v)
		default:
			parts[i] = fmt.Sprint(v)
		}
	}
	return strings.Join(parts, " ")
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *model) Init() tea.Cmd {
	return tick()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	case tickMsg:
		m.recv.Update()
		for addr, n := range m.recv.Arrivals() {
			r := m.row(addr)
			r.total += n
			r.recent = n
		}
		for addr, r := range m.rows {
			if m.recv.GotMessage(addr) == 0 {
				r.recent = 0
			}
		}
		return m, tick()
	}
	return m, nil
}

func (m *model) View() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n\n",
		titleStyle.Render("oscmon"),
		dimStyle.Render(fmt.Sprintf("listening on %s, up %s", m.listen, time.Since(m.start).Round(time.Second))))

	fmt.Fprintf(&b, "%s\n", headerStyle.Render(fmt.Sprintf("  %-32s %8s  %s", "ADDRESS", "COUNT", "LAST ARGS")))

	sorted := make([]string, len(m.order))
	copy(sorted, m.order)
	sort.Strings(sorted)

	if len(sorted) == 0 {
		fmt.Fprintf(&b, "%s\n", dimStyle.Render("  waiting for traffic..."))
	}
	for _, addr := range sorted {
		r := m.rows[addr]
		marker := " "
		style := addrStyle
		if r.recent > 0 {
			marker = "*"
			style = activeStyle
		}
		fmt.Fprintf(&b, "%s %s %8d  %s\n",
			marker, style.Render(fmt.Sprintf("%-32s", addr)), r.total, dimStyle.Render(r.args))
	}

	fmt.Fprintf(&b, "\n%s\n", dimStyle.Render("q to quit"))
	return b.String()
}
