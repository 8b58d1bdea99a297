package tui

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matt-dz/cookbook/internal/category"
	"github.com/matt-dz/cookbook/internal/filter"
	"github.com/matt-dz/cookbook/internal/listing"
	"github.com/matt-dz/cookbook/internal/recipe"
)

// fakeFetcher answers every listing request with body and records the
// criteria it was asked for.
type fakeFetcher struct {
	mu    sync.Mutex
	body  string
	err   error
	calls []filter.Criteria
}

func (f *fakeFetcher) ListRecipesRaw(_ context.Context, c filter.Criteria) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, c.Clone())
	if f.err != nil {
		return nil, f.err
	}
	return []byte(f.body), nil
}

func (f *fakeFetcher) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

const thirteenRecipes = `{"content":[{"recipe_id":1,"title":"Kimchi Stew","difficulty":"EASY","prep_time":10,"cook_time":35}],"totalElements":13}`

func testCategories() category.Set {
	return category.Set{
		recipe.AxisType: {
			{ID: 1, Name: "Soup", Type: recipe.AxisType},
			{ID: 2, Name: "Stew", Type: recipe.AxisType},
		},
		recipe.AxisSituation:  {{ID: 10, Name: "Party", Type: recipe.AxisSituation}},
		recipe.AxisIngredient: {},
		recipe.AxisMethod:     {},
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press feeds msg to m and delivers the state published once the resulting
// fetch has resolved.
func press(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	m = next.(Model)
	return settle(t, m)
}

func settle(t *testing.T, m Model) Model {
	t.Helper()
	m.Controller().Wait()
	select {
	case s := <-m.box.ch:
		next, _ := m.Update(stateMsg(s))
		return next.(Model)
	default:
		return m
	}
}

func newModel(t *testing.T, f *fakeFetcher) Model {
	t.Helper()
	m := New(context.Background(), f, filter.New(), WithCategories(testCategories(), nil))
	if m.Init() == nil {
		t.Fatal("expected init commands")
	}
	if msg := m.load()(); msg != nil {
		t.Fatalf("unexpected load message %v", msg)
	}
	return settle(t, m)
}

func TestInitDefersFetch(t *testing.T) {
	f := &fakeFetcher{body: thirteenRecipes}
	m := New(context.Background(), f, filter.New())

	cmd := m.Init()
	m.Controller().Wait()
	if f.count() != 0 {
		t.Fatalf("expected no fetch before the init commands run, got %d", f.count())
	}

	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok || len(batch) != 3 {
		t.Fatalf("expected a batch of three commands, got %T", msg)
	}
	batch[0]()
	m = settle(t, m)
	if f.count() != 1 {
		t.Errorf("expected one fetch, got %d", f.count())
	}
	if !strings.Contains(m.View(), "Kimchi Stew") {
		t.Errorf("expected loaded recipes in view\n%s", m.View())
	}
}

func TestInitialLoad(t *testing.T) {
	f := &fakeFetcher{body: thirteenRecipes}
	m := newModel(t, f)

	if f.count() != 1 {
		t.Fatalf("expected one fetch, got %d", f.count())
	}
	view := m.View()
	for _, want := range []string{"Kimchi Stew", "EASY · 45 min", "Page 1 of 3 · 13 recipes"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q\n%s", want, view)
		}
	}
}

func TestSearch(t *testing.T) {
	f := &fakeFetcher{body: thirteenRecipes}
	m := newModel(t, f)
	m = press(t, m, runes("n"))
	if got := m.Controller().Criteria().Page; got != 1 {
		t.Fatalf("expected page 1, got %d", got)
	}

	m = press(t, m, runes("/"))
	if !m.searching {
		t.Fatal("expected search input to be focused")
	}
	m = press(t, m, runes("kimchi"))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	c := m.Controller().Criteria()
	if c.Search == nil || *c.Search != "kimchi" {
		t.Fatalf("expected search kimchi, got %v", c.Search)
	}
	if c.Page != 0 {
		t.Errorf("expected search to reset the page, got %d", c.Page)
	}
	if !strings.Contains(m.View(), "search: kimchi") {
		t.Errorf("expected search in view\n%s", m.View())
	}

	m = press(t, m, runes("/"))
	m.search.SetValue("   ")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if s := m.Controller().Criteria().Search; s != nil {
		t.Errorf("expected blank search to clear the field, got %q", *s)
	}
}

func TestCategoryCycling(t *testing.T) {
	f := &fakeFetcher{body: thirteenRecipes}
	m := newModel(t, f)

	var got []string
	for range 3 {
		m = press(t, m, runes("c"))
		id := m.Controller().Criteria().CategoryTypeID
		if id == nil {
			got = append(got, "none")
			continue
		}
		got = append(got, m.categoryName(recipe.AxisType, id))
	}
	if !strings.Contains(got[0], "Soup") || !strings.Contains(got[1], "Stew") || got[2] != "none" {
		t.Errorf("unexpected cycle %v", got)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = press(t, m, runes("c"))
	c := m.Controller().Criteria()
	if c.CategorySituationID == nil || *c.CategorySituationID != 10 {
		t.Errorf("expected situation 10, got %v", c.CategorySituationID)
	}
	if c.CategoryTypeID != nil {
		t.Errorf("expected type to stay cleared, got %v", *c.CategoryTypeID)
	}
}

func TestDifficultyCycling(t *testing.T) {
	tests := []struct {
		name string
		cur  *recipe.Difficulty
		want *recipe.Difficulty
	}{
		{name: "none to easy", cur: nil, want: ptr(recipe.DifficultyEasy)},
		{name: "easy to normal", cur: ptr(recipe.DifficultyEasy), want: ptr(recipe.DifficultyNormal)},
		{name: "normal to hard", cur: ptr(recipe.DifficultyNormal), want: ptr(recipe.DifficultyHard)},
		{name: "hard to none", cur: ptr(recipe.DifficultyHard), want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := filter.Merge(filter.New(), filter.Partial{Difficulty: nextDifficulty(tt.cur)})
			switch {
			case tt.want == nil && c.Difficulty != nil:
				t.Errorf("expected no difficulty, got %s", *c.Difficulty)
			case tt.want != nil && (c.Difficulty == nil || *c.Difficulty != *tt.want):
				t.Errorf("expected %s, got %v", *tt.want, c.Difficulty)
			}
		})
	}
}

func ptr[T any](v T) *T {
	return &v
}

func TestPagingBounds(t *testing.T) {
	f := &fakeFetcher{body: thirteenRecipes}
	m := newModel(t, f)

	m = press(t, m, runes("p"))
	if f.count() != 1 {
		t.Errorf("expected no fetch before the first page, got %d fetches", f.count())
	}

	m = press(t, m, runes("n"))
	f.body = `{"content":[{"recipe_id":9,"title":"Japchae"}],"totalElements":13,"number":2}`
	m = press(t, m, runes("n"))
	if got := m.Controller().Criteria().Page; got != 2 {
		t.Fatalf("expected page 2, got %d", got)
	}

	fetches := f.count()
	m = press(t, m, runes("n"))
	if f.count() != fetches {
		t.Errorf("expected no fetch past the last page")
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if got := m.Controller().Criteria().Page; got != 1 {
		t.Errorf("expected page 1, got %d", got)
	}
}

func TestClearFilters(t *testing.T) {
	f := &fakeFetcher{body: thirteenRecipes}
	m := newModel(t, f)
	m = press(t, m, runes("c"))
	m = press(t, m, runes("d"))
	m = press(t, m, runes("x"))

	c := m.Controller().Criteria()
	if c.Filtered() || c.Page != 0 || c.Size != filter.DefaultSize {
		t.Errorf("expected cleared criteria, got %+v", c)
	}
}

func TestListViewStates(t *testing.T) {
	tests := []struct {
		name  string
		state listing.State
		want  string
	}{
		{name: "loading", state: listing.State{Version: 10, Loading: true}, want: "Loading recipes..."},
		{
			name:  "error",
			state: listing.State{Version: 10, Err: errors.New("boom")},
			want:  "Failed to load recipes.",
		},
		{name: "empty", state: listing.State{Version: 10}, want: "No recipes found."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(context.Background(), &fakeFetcher{}, filter.New())
			next, _ := m.Update(stateMsg(tt.state))
			view := next.(Model).View()
			if !strings.Contains(view, tt.want) {
				t.Errorf("expected %q in view\n%s", tt.want, view)
			}
		})
	}
}

func TestFetchFailureIsShown(t *testing.T) {
	f := &fakeFetcher{body: `{"items":[]}`}
	m := newModel(t, f)
	if !strings.Contains(m.View(), "The recipe service sent an unexpected response.") {
		t.Errorf("expected shape error in view\n%s", m.View())
	}
}

func TestOutOfOrderStateDropped(t *testing.T) {
	m := New(context.Background(), &fakeFetcher{}, filter.New())

	next, _ := m.Update(stateMsg(listing.State{Version: 5}))
	next, _ = next.(Model).Update(stateMsg(listing.State{Version: 4, Loading: true}))
	if next.(Model).state.Version != 5 || next.(Model).state.Loading {
		t.Errorf("expected version 5 to be kept, got %+v", next.(Model).state)
	}
}

func TestMailboxKeepsNewest(t *testing.T) {
	b := newMailbox()
	b.put(listing.State{Version: 6})
	b.put(listing.State{Version: 5})
	b.put(listing.State{Version: 7})
	b.put(listing.State{Version: 3})

	if s := <-b.ch; s.Version != 7 {
		t.Errorf("expected version 7, got %d", s.Version)
	}
	select {
	case s := <-b.ch:
		t.Errorf("expected an empty mailbox, got version %d", s.Version)
	default:
	}
}

func TestCategoryWarning(t *testing.T) {
	m := New(context.Background(), &fakeFetcher{}, filter.New(),
		WithCategories(category.Set{}, errors.New("loading METHOD categories: boom")))
	if !strings.Contains(m.View(), "Some categories could not be loaded.") {
		t.Errorf("expected warning in view\n%s", m.View())
	}
}

func TestQuit(t *testing.T) {
	m := New(context.Background(), &fakeFetcher{}, filter.New())
	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}
