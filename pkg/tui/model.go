// Package tui provides the interactive terminal dashboard for a running
// dealer. It is built on the bubbletea/lipgloss stack and renders two tabs:
// Overview and Matches. Data is refreshed every 2 seconds by calling the
// dealer's stats API.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hadari24/blackjack-network/pkg/stats"
	"github.com/hadari24/blackjack-network/pkg/statsapi"
)

// ---------------------------------------------------------------------------
// Shared styles
// ---------------------------------------------------------------------------

var (
	// titleStyle renders the application title bar.
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("22")).
			Padding(0, 1)

	// activeTabStyle renders the currently selected tab label.
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("22")).
			Padding(0, 2)

	// inactiveTabStyle renders unselected tab labels.
	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 2)

	// labelStyle is used for the overview's left-hand labels.
	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			PaddingRight(1)

	// headerCellStyle is used for table column headers.
	headerCellStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			PaddingRight(1)

	// rowStyle is used for odd-numbered table rows.
	rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			PaddingRight(1)

	// altRowStyle is used for even-numbered table rows (zebra striping).
	altRowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Background(lipgloss.Color("236")).
			PaddingRight(1)

	// dimStyle is used for "no data" messages.
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)

	// statusBarStyle renders the bottom status bar.
	statusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			PaddingLeft(1)

	// errorStyle renders error messages.
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("1")).
			Bold(true).
			PaddingLeft(1)
)

// ---------------------------------------------------------------------------
// Tab type
// ---------------------------------------------------------------------------

// tab identifies the currently active dashboard tab.
type tab int

const (
	tabOverview tab = iota
	tabMatches
	tabCount // sentinel, must stay last
)

// ---------------------------------------------------------------------------
// Tea messages
// ---------------------------------------------------------------------------

// tickMsg is sent every refreshInterval to trigger a data refresh.
type tickMsg time.Time

// dataMsg carries a freshly fetched dataset.
type dataMsg struct {
	summary stats.Summary
	matches []stats.MatchRecord
}

// errMsg carries a fetch or decode error to display in the status bar.
type errMsg error

// ---------------------------------------------------------------------------
// Model
// ---------------------------------------------------------------------------

const refreshInterval = 2 * time.Second

// matchFetchLimit bounds the Matches tab; older records stay on the API.
const matchFetchLimit = 50

// Model is the top-level bubbletea model for the dashboard.
type Model struct {
	tabs      []string
	activeTab tab
	summary   stats.Summary
	matches   []stats.MatchRecord
	client    *statsapi.Client
	width     int
	height    int
	err       error
	loading   bool
	lastFetch time.Time
}

// New returns a Model reading from the given stats client.
func New(client *statsapi.Client) Model {
	return Model{
		tabs:    []string{"Overview", "Matches"},
		client:  client,
		loading: true,
	}
}

// Init starts the periodic tick and issues the first data fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tick(), fetchData(m.client))
}

// tick schedules a tickMsg after refreshInterval.
func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// fetchData reads the summary and recent matches from the stats API and
// returns a dataMsg (or errMsg on failure).
func fetchData(client *statsapi.Client) tea.Cmd {
	return func() tea.Msg {
		sum, err := client.Summary()
		if err != nil {
			return errMsg(err)
		}
		recs, err := client.Matches(matchFetchLimit)
		if err != nil {
			return errMsg(err)
		}
		return dataMsg{summary: sum, matches: recs}
	}
}

// Update processes messages and returns an updated model plus any commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "tab", "right", "l":
			m.activeTab = (m.activeTab + 1) % tabCount
		case "shift+tab", "left", "h":
			m.activeTab = (m.activeTab - 1 + tabCount) % tabCount
		case "1":
			m.activeTab = tabOverview
		case "2":
			m.activeTab = tabMatches
		case "r":
			// Manual refresh
			m.loading = true
			m.err = nil
			return m, fetchData(m.client)
		}
		return m, nil

	case tickMsg:
		m.loading = true
		m.err = nil
		return m, tea.Batch(tick(), fetchData(m.client))

	case dataMsg:
		m.loading = false
		m.err = nil
		m.summary = msg.summary
		m.matches = msg.matches
		m.lastFetch = time.Now()
		return m, nil

	case errMsg:
		m.loading = false
		m.err = msg
		return m, nil
	}

	return m, nil
}

// View renders the entire dashboard to a string.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading…"
	}

	var sb strings.Builder

	title := titleStyle.Render("  Blackjack Dealer Dashboard  ")
	sb.WriteString(title)
	sb.WriteString("\n")

	var tabParts []string
	for i, name := range m.tabs {
		label := fmt.Sprintf(" %d: %s ", i+1, name)
		if tab(i) == m.activeTab {
			tabParts = append(tabParts, activeTabStyle.Render(label))
		} else {
			tabParts = append(tabParts, inactiveTabStyle.Render(label))
		}
	}
	sb.WriteString(strings.Join(tabParts, ""))
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("─", m.width))
	sb.WriteString("\n")

	contentHeight := m.height - 5 // title(1) + tabs(1) + divider(1) + status(2)
	if contentHeight < 1 {
		contentHeight = 1
	}
	content := m.renderActiveTab()
	content = clipLines(content, contentHeight)
	sb.WriteString(content)
	sb.WriteString("\n")

	sb.WriteString(strings.Repeat("─", m.width))
	sb.WriteString("\n")
	sb.WriteString(m.renderStatus())

	return sb.String()
}

// renderActiveTab renders the content of the currently selected tab.
func (m Model) renderActiveTab() string {
	w := m.width - 2 // leave a small margin
	switch m.activeTab {
	case tabOverview:
		return renderOverview(m.summary, w)
	case tabMatches:
		return renderMatches(m.matches, w)
	default:
		return ""
	}
}

// renderStatus renders the bottom status bar line.
func (m Model) renderStatus() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", m.err))
	}

	parts := []string{
		fmt.Sprintf("dealer: %s", m.client.BaseURL),
	}
	if !m.lastFetch.IsZero() {
		parts = append(parts, fmt.Sprintf("last refresh: %s", m.lastFetch.Format("15:04:05")))
	}
	if m.loading {
		parts = append(parts, "refreshing…")
	}
	parts = append(parts, "q: quit  tab: next tab  r: refresh")

	return statusBarStyle.Render(strings.Join(parts, "  |  "))
}

// clipLines limits the string s to at most maxLines newline-delimited lines.
func clipLines(s string, maxLines int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= maxLines {
		return s
	}
	return strings.Join(lines[:maxLines], "\n")
}
