package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"go-catalog/client"
	"go-catalog/models"
	"go-catalog/objects"
)

// listHeight is the fixed height of the virtualized container. Rows are one
// terminal line each; scrolling is native viewport clipping, not windowed
// re-rendering.
const listHeight = 12

// itemsMsg carries one fetch outcome back into Update, tagged with the
// Fetcher generation that started it.
type itemsMsg struct {
	gen  int
	data *models.PaginationData[objects.Item]
	err  error
}

// BrowseModel renders the catalog list with search, pagination and an
// optional virtualized (viewport) mode.
type BrowseModel struct {
	client  *client.Client
	fetcher *client.Fetcher

	search      textinput.Model
	viewport    viewport.Model
	virtualized bool

	page  int
	limit int

	styles Styles
	width  int
}

func NewBrowseModel(c *client.Client) BrowseModel {

	search := textinput.New()
	search.Placeholder = "search name or category"
	search.CharLimit = 64
	search.Prompt = "search: "

	return BrowseModel{
		client:   c,
		fetcher:  client.NewFetcher(),
		search:   search,
		viewport: viewport.New(80, listHeight),
		page:     1,
		limit:    models.DefaultPageSize,
		styles:   DefaultStyles(),
		width:    80,
	}
}

func (m BrowseModel) Init() tea.Cmd {
	return m.fetchCmd()
}

// fetchCmd opens a new fetch generation and returns the command running it.
// Starting a fetch cancels the previous one, so holding a key down can
// never let an older response overwrite a newer page.
func (m BrowseModel) fetchCmd() tea.Cmd {

	gen, ctx := m.fetcher.Begin(context.Background())

	q := client.Query{
		Search: m.search.Value(),
		Page:   m.page,
		Limit:  m.limit,
	}

	c := m.client

	return func() tea.Msg {
		data, err := c.ListItems(ctx, q)
		return itemsMsg{gen: gen, data: data, err: err}
	}
}

func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {

	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = listHeight
		m.refreshViewport()
		return m, nil

	case itemsMsg:
		if m.fetcher.Resolve(msg.gen, msg.data, msg.err) {
			m.refreshViewport()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m BrowseModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {

	if m.search.Focused() {

		switch msg.String() {

		case "enter":
			m.search.Blur()
			m.page = 1
			return m, m.fetchCmd()

		case "esc":
			m.search.Blur()
			m.search.SetValue("")
			m.page = 1
			return m, m.fetchCmd()

		default:
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			return m, cmd
		}
	}

	switch msg.String() {

	case "q", "ctrl+c":
		m.fetcher.Cancel()
		return m, tea.Quit

	case "/":
		return m, m.search.Focus()

	case "left", "p":
		if m.page > 1 {
			m.page--
			return m, m.fetchCmd()
		}
		return m, nil

	case "right", "n":
		if m.page < m.pageCount() {
			m.page++
			return m, m.fetchCmd()
		}
		return m, nil

	case "v":
		m.virtualized = !m.virtualized
		m.refreshViewport()
		return m, nil

	case "r":
		return m, m.fetchCmd()
	}

	if m.virtualized {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *BrowseModel) refreshViewport() {
	m.viewport.SetContent(strings.Join(m.rows(), "\n"))
}

func (m BrowseModel) rows() []string {

	state := m.fetcher.State()
	if state.Data == nil {
		return nil
	}

	rows := make([]string, 0, len(state.Data.Items))
	for _, item := range state.Data.Items {
		line := fmt.Sprintf("%4d  %-32s  %-16s  %10.2f", item.ID, truncate(item.Name, 32), truncate(item.Category, 16), item.Price)
		rows = append(rows, m.styles.Row.Render(line))
	}

	return rows
}

func (m BrowseModel) pageCount() int {

	state := m.fetcher.State()
	if state.Data == nil || state.Data.Limit < 1 {
		return 1
	}

	count := (state.Data.Total + state.Data.Limit - 1) / state.Data.Limit
	if count < 1 {
		count = 1
	}

	return count
}

func (m BrowseModel) View() string {

	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Catalog"))
	b.WriteString("\n\n")

	b.WriteString(m.search.View())
	b.WriteString("\n\n")

	state := m.fetcher.State()

	switch {
	case state.Data == nil && state.Loading:
		b.WriteString(m.styles.Status.Render("loading..."))
		b.WriteString("\n")

	case state.Data == nil:
		b.WriteString(m.styles.Status.Render("no data"))
		b.WriteString("\n")

	case len(state.Data.Items) == 0:
		b.WriteString(m.styles.Status.Render("no matching items"))
		b.WriteString("\n")

	case m.virtualized:
		b.WriteString(m.styles.List.Render(m.viewport.View()))
		b.WriteString("\n")

	default:
		for _, row := range m.rows() {
			b.WriteString(row)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.paginationView())
	b.WriteString("\n")

	if state.Err != nil {
		b.WriteString(m.styles.Error.Render("error: " + state.Err.Error()))
		b.WriteString("\n")
	} else if state.Loading && state.Data != nil {
		b.WriteString(m.styles.Status.Render("refreshing..."))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Help.Render("/ search • ←/→ page • v virtualized • r refresh • q quit"))
	b.WriteString("\n")

	return b.String()
}

func (m BrowseModel) paginationView() string {

	pageCount := m.pageCount()

	var parts []string

	if m.page > 1 {
		parts = append(parts, m.styles.InactivePage.Render("← prev"))
	} else {
		parts = append(parts, m.styles.Disabled.Render("← prev"))
	}

	for page := 1; page <= pageCount; page++ {

		label := fmt.Sprintf("%d", page)
		if page == m.page {
			parts = append(parts, m.styles.ActivePage.Render("["+label+"]"))
		} else {
			parts = append(parts, m.styles.InactivePage.Render(label))
		}
	}

	if m.page < pageCount {
		parts = append(parts, m.styles.InactivePage.Render("next →"))
	} else {
		parts = append(parts, m.styles.Disabled.Render("next →"))
	}

	return strings.Join(parts, " ")
}

func truncate(s string, max int) string {

	if len(s) <= max {
		return s
	}

	return s[:max-3] + "..."
}
