// Package tui is the terminal recipe browser. Its Update loop is the only
// place the listing state is read for display; fetches resolve on their own
// goroutines and reach the loop as messages.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matt-dz/cookbook/internal/category"
	"github.com/matt-dz/cookbook/internal/filter"
	"github.com/matt-dz/cookbook/internal/listing"
	"github.com/matt-dz/cookbook/internal/log"
	"github.com/matt-dz/cookbook/internal/recipe"
)

type stateMsg listing.State

// mailbox holds the newest published state until the Update loop takes it.
// put never blocks, so the controller can publish from any goroutine.
type mailbox struct {
	mu sync.Mutex
	ch chan listing.State
}

func newMailbox() *mailbox {
	return &mailbox{ch: make(chan listing.State, 1)}
}

func (b *mailbox) put(s listing.State) {
	b.mu.Lock()
	defer b.mu.Unlock()
	select {
	case old := <-b.ch:
		if old.Version > s.Version {
			s = old
		}
	default:
	}
	b.ch <- s
}

type Option func(*Model)

func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) {
		m.logger = logger
	}
}

// WithCategories supplies the choices for the four axes. err is the load
// failure, if any, and is shown as a warning.
func WithCategories(set category.Set, err error) Option {
	return func(m *Model) {
		m.categories = set
		m.categoriesErr = err
	}
}

type Model struct {
	ctx    context.Context
	logger *slog.Logger
	ctrl   *listing.Controller
	box    *mailbox

	categories    category.Set
	categoriesErr error

	state     listing.State
	axis      int
	searching bool

	search  textinput.Model
	spinner spinner.Model
	help    help.Model
	keys    keyMap
	styles  styles
	width   int
}

// New builds the browser over fetcher. Fetches started by the model use ctx,
// so cancelling it abandons them.
func New(ctx context.Context, fetcher listing.Fetcher, initial filter.Criteria, opts ...Option) Model {
	m := Model{
		ctx:        ctx,
		logger:     log.NullLogger(),
		box:        newMailbox(),
		categories: category.Set{},
		keys:       defaultKeys(),
		styles:     defaultStyles(),
		help:       help.New(),
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.ctrl = listing.New(fetcher, initial,
		listing.WithLogger(m.logger),
		listing.WithOnChange(m.box.put))
	m.state = m.ctrl.State()

	m.search = textinput.New()
	m.search.Placeholder = "Search recipes..."
	m.search.Prompt = "/ "
	m.search.CharLimit = 100

	m.spinner = spinner.New()
	m.spinner.Spinner = spinner.Dot
	m.spinner.Style = m.styles.Selected

	return m
}

// Controller exposes the listing controller driving the model.
func (m Model) Controller() *listing.Controller {
	return m.ctrl
}

func (m Model) waitForState() tea.Cmd {
	return func() tea.Msg {
		select {
		case s := <-m.box.ch:
			return stateMsg(s)
		case <-m.ctx.Done():
			return nil
		}
	}
}

// load starts the first fetch. The result arrives through waitForState.
func (m Model) load() tea.Cmd {
	return func() tea.Msg {
		m.ctrl.Refresh(m.ctx)
		return nil
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.load(), m.waitForState(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.search.Width = max(msg.Width-4, 20)
		return m, nil

	case stateMsg:
		s := listing.State(msg)
		if s.Version > m.state.Version {
			m.state = s
		} else {
			m.logger.DebugContext(m.ctx, "dropping out of order state",
				slog.Uint64("version", s.Version),
				slog.Uint64("current", m.state.Version))
		}
		return m, m.waitForState()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateBrowse(msg)
	}

	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(msg, m.keys.Apply):
		m.searching = false
		m.search.Blur()
		text := strings.TrimSpace(m.search.Value())
		field := filter.Unset[string]()
		if text != "" {
			field = filter.Set(text)
		}
		m.ctrl.UpdateFilters(m.ctx, filter.Partial{Search: field})
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		m.searching = false
		m.search.Blur()
		if s := m.state.Criteria.Search; s != nil {
			m.search.SetValue(*s)
		} else {
			m.search.SetValue("")
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	criteria := m.ctrl.Criteria()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		cmd := m.search.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.NextAxis):
		m.axis = (m.axis + 1) % len(recipe.Axes())

	case key.Matches(msg, m.keys.Category):
		axis := recipe.Axes()[m.axis]
		next := m.categories.Next(axis, criteria.CategoryID(axis))
		m.ctrl.UpdateFilters(m.ctx, filter.SelectCategory(axis, next))

	case key.Matches(msg, m.keys.Difficulty):
		m.ctrl.UpdateFilters(m.ctx, filter.Partial{Difficulty: nextDifficulty(criteria.Difficulty)})

	case key.Matches(msg, m.keys.NextPage):
		if criteria.Page+1 < m.state.Pagination.TotalPages {
			m.ctrl.ChangePage(m.ctx, criteria.Page+1)
		}

	case key.Matches(msg, m.keys.PrevPage):
		if criteria.Page > 0 {
			m.ctrl.ChangePage(m.ctx, criteria.Page-1)
		}

	case key.Matches(msg, m.keys.Clear):
		m.search.SetValue("")
		m.ctrl.ClearFilters(m.ctx)

	case key.Matches(msg, m.keys.Refresh):
		m.ctrl.Refresh(m.ctx)
	}

	return m, nil
}

// nextDifficulty cycles none, EASY, NORMAL, HARD and back to none.
func nextDifficulty(cur *recipe.Difficulty) filter.Field[recipe.Difficulty] {
	all := recipe.Difficulties()
	if cur == nil {
		return filter.Set(all[0])
	}
	i := slices.Index(all, *cur)
	if i < 0 || i+1 == len(all) {
		return filter.Unset[recipe.Difficulty]()
	}
	return filter.Set(all[i+1])
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Cookbook"))
	b.WriteString("\n\n")
	if m.searching {
		b.WriteString(m.search.View())
	} else if s := m.state.Criteria.Search; s != nil {
		b.WriteString(m.styles.Label.Render("search: ") + *s)
	} else {
		b.WriteString(m.styles.Label.Render("search: any"))
	}
	b.WriteString("\n")
	b.WriteString(m.filtersView())
	b.WriteString("\n")
	if m.categoriesErr != nil {
		b.WriteString(m.styles.Error.Render("Some categories could not be loaded."))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.listView())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

func (m Model) filtersView() string {
	criteria := m.state.Criteria
	parts := make([]string, 0, len(recipe.Axes())+1)
	for i, axis := range recipe.Axes() {
		label := axis.Label() + ": "
		if i == m.axis {
			label = m.styles.Focused.Render(axis.Label()) + ": "
		} else {
			label = m.styles.Label.Render(label)
		}
		parts = append(parts, label+m.categoryName(axis, criteria.CategoryID(axis)))
	}

	difficulty := "any"
	if criteria.Difficulty != nil {
		difficulty = m.styles.Selected.Render(criteria.Difficulty.String())
	}
	parts = append(parts, m.styles.Label.Render("Difficulty: ")+difficulty)
	return strings.Join(parts, "  ")
}

func (m Model) categoryName(axis recipe.Axis, id *int64) string {
	if id == nil {
		return "any"
	}
	if c, ok := m.categories.Lookup(axis, *id); ok {
		return m.styles.Selected.Render(c.Name)
	}
	return m.styles.Selected.Render(fmt.Sprintf("#%d", *id))
}

func (m Model) listView() string {
	switch {
	case m.state.Loading:
		return m.spinner.View() + " Loading recipes..."
	case m.state.Err != nil:
		return m.styles.Error.Render(listing.Message(m.state.Err))
	case len(m.state.Content) == 0:
		return m.styles.Empty.Render("No recipes found.")
	}

	lines := make([]string, 0, len(m.state.Content)+1)
	for _, r := range m.state.Content {
		lines = append(lines, m.styles.Recipe.Render("• "+r.Title))
		if details := recipeDetails(r); details != "" {
			lines = append(lines, m.styles.Detail.Render(details))
		}
	}

	p := m.state.Pagination
	lines = append(lines, m.styles.Pagination.Render(
		fmt.Sprintf("Page %d of %d · %d recipes", p.Number+1, p.TotalPages, p.TotalElements)))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func recipeDetails(r recipe.Recipe) string {
	var parts []string
	if r.Difficulty != "" {
		parts = append(parts, r.Difficulty.String())
	}
	if t := r.TotalTime(); t > 0 {
		parts = append(parts, fmt.Sprintf("%d min", t))
	}
	if r.CategoryType != "" {
		parts = append(parts, r.CategoryType)
	}
	return strings.Join(parts, " · ")
}
