// Package filter contains the recipe search criteria and the rules for
// changing them.
package filter

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/matt-dz/cookbook/internal/recipe"
)

const (
	DefaultSize = 6
	maxSize     = 100
)

// Query parameter names understood by the recipe listing endpoint.
const (
	ParamSearch               = "search"
	ParamCategoryTypeID       = "categoryTypeId"
	ParamCategorySituationID  = "categorySituationId"
	ParamCategoryIngredientID = "categoryIngredientId"
	ParamCategoryMethodID     = "categoryMethodId"
	ParamDifficulty           = "difficulty"
	ParamTags                 = "tags"
	ParamPage                 = "page"
	ParamSize                 = "size"
	ParamPageSize             = "pageSize"
	ParamSort                 = "sort"
)

var (
	ErrInvalidID   = errors.New("category id must be an integer")
	ErrInvalidPage = errors.New("page must be a non-negative integer")
	ErrInvalidSize = errors.New("size must be a positive integer")
)

// Criteria is the query a user has composed. It is a value: every change goes
// through Merge or Clear, which return a new Criteria and never share the tag
// slice with their input. Pointer fields are never written through.
type Criteria struct {
	Search               *string
	CategoryTypeID       *int64
	CategorySituationID  *int64
	CategoryIngredientID *int64
	CategoryMethodID     *int64
	Difficulty           *recipe.Difficulty
	Tags                 []string
	Page                 int
	Size                 int
	Sort                 *string
}

// New returns the criteria a listing starts with.
func New() Criteria {
	return Criteria{Page: 0, Size: DefaultSize}
}

// Field is one entry of a Partial. The zero value leaves the criteria field
// untouched, Set replaces it and Unset clears it.
type Field[T any] struct {
	touched bool
	value   *T
}

func Set[T any](v T) Field[T] {
	return Field[T]{touched: true, value: &v}
}

func Unset[T any]() Field[T] {
	return Field[T]{touched: true}
}

func (f Field[T]) Touched() bool {
	return f.touched
}

// Value returns the new value and whether one was set.
func (f Field[T]) Value() (T, bool) {
	var zero T
	if f.value == nil {
		return zero, false
	}
	return *f.value, true
}

func (f Field[T]) apply(dst **T) {
	if !f.touched {
		return
	}
	if f.value == nil {
		*dst = nil
		return
	}
	v := *f.value
	*dst = &v
}

// Partial is a sparse change to Criteria.
type Partial struct {
	Search               Field[string]
	CategoryTypeID       Field[int64]
	CategorySituationID  Field[int64]
	CategoryIngredientID Field[int64]
	CategoryMethodID     Field[int64]
	Difficulty           Field[recipe.Difficulty]
	Tags                 Field[[]string]
	Page                 Field[int]
	Size                 Field[int]
	Sort                 Field[string]
}

// TouchesFilter reports whether p changes what is being filtered on, as
// opposed to only paging or sorting.
func (p Partial) TouchesFilter() bool {
	return p.Search.Touched() ||
		p.CategoryTypeID.Touched() ||
		p.CategorySituationID.Touched() ||
		p.CategoryIngredientID.Touched() ||
		p.CategoryMethodID.Touched() ||
		p.Difficulty.Touched() ||
		p.Tags.Touched()
}

// Merge applies p over cur. A change to any filtering field moves back to the
// first page unless p also sets the page explicitly.
func Merge(cur Criteria, p Partial) Criteria {
	next := cur.Clone()

	if p.TouchesFilter() && !p.Page.Touched() {
		next.Page = 0
	}

	p.Search.apply(&next.Search)
	p.CategoryTypeID.apply(&next.CategoryTypeID)
	p.CategorySituationID.apply(&next.CategorySituationID)
	p.CategoryIngredientID.apply(&next.CategoryIngredientID)
	p.CategoryMethodID.apply(&next.CategoryMethodID)
	p.Difficulty.apply(&next.Difficulty)
	p.Sort.apply(&next.Sort)

	if p.Tags.Touched() {
		tags, _ := p.Tags.Value()
		next.Tags = slices.Clone(tags)
	}
	if page, ok := p.Page.Value(); ok {
		next.Page = max(page, 0)
	}
	if size, ok := p.Size.Value(); ok {
		next.Size = size
	}
	if next.Size <= 0 {
		next.Size = DefaultSize
	}

	return next
}

// Clear drops every filtering field and returns to the first page. Size and
// sort order are kept.
func Clear(cur Criteria) Criteria {
	next := New()
	if cur.Size > 0 {
		next.Size = cur.Size
	}
	if cur.Sort != nil {
		s := *cur.Sort
		next.Sort = &s
	}
	return next
}

// Clone returns a copy of c that shares no mutable state with it.
func (c Criteria) Clone() Criteria {
	c.Tags = slices.Clone(c.Tags)
	return c
}

// Filtered reports whether any filtering field is present.
func (c Criteria) Filtered() bool {
	return c.Search != nil ||
		c.CategoryTypeID != nil ||
		c.CategorySituationID != nil ||
		c.CategoryIngredientID != nil ||
		c.CategoryMethodID != nil ||
		c.Difficulty != nil ||
		len(c.Tags) > 0
}

// CategoryID returns the selection on the given axis.
func (c Criteria) CategoryID(axis recipe.Axis) *int64 {
	switch axis {
	case recipe.AxisType:
		return c.CategoryTypeID
	case recipe.AxisSituation:
		return c.CategorySituationID
	case recipe.AxisIngredient:
		return c.CategoryIngredientID
	case recipe.AxisMethod:
		return c.CategoryMethodID
	default:
		return nil
	}
}

// SelectCategory builds the Partial that selects id on axis. A nil id clears
// the axis.
func SelectCategory(axis recipe.Axis, id *int64) Partial {
	f := Unset[int64]()
	if id != nil {
		f = Set(*id)
	}

	var p Partial
	switch axis {
	case recipe.AxisType:
		p.CategoryTypeID = f
	case recipe.AxisSituation:
		p.CategorySituationID = f
	case recipe.AxisIngredient:
		p.CategoryIngredientID = f
	case recipe.AxisMethod:
		p.CategoryMethodID = f
	}
	return p
}

// Query serializes every present field. Tags become one parameter per tag.
func (c Criteria) Query() url.Values {
	q := url.Values{}
	if c.Search != nil {
		q.Set(ParamSearch, *c.Search)
	}
	setID := func(key string, id *int64) {
		if id != nil {
			q.Set(key, strconv.FormatInt(*id, 10))
		}
	}
	setID(ParamCategoryTypeID, c.CategoryTypeID)
	setID(ParamCategorySituationID, c.CategorySituationID)
	setID(ParamCategoryIngredientID, c.CategoryIngredientID)
	setID(ParamCategoryMethodID, c.CategoryMethodID)
	if c.Difficulty != nil {
		q.Set(ParamDifficulty, c.Difficulty.String())
	}
	for _, tag := range c.Tags {
		q.Add(ParamTags, tag)
	}
	q.Set(ParamPage, strconv.Itoa(c.Page))
	q.Set(ParamSize, strconv.Itoa(c.Size))
	if c.Sort != nil {
		q.Set(ParamSort, *c.Sort)
	}
	return q
}

// FromQuery parses criteria from query parameters. Missing page and size fall
// back to 0 and DefaultSize. The legacy pageSize parameter is accepted when
// size is absent.
func FromQuery(q url.Values) (Criteria, error) {
	c := New()

	if q.Has(ParamSearch) {
		s := q.Get(ParamSearch)
		c.Search = &s
	}

	ids := []struct {
		key string
		dst **int64
	}{
		{ParamCategoryTypeID, &c.CategoryTypeID},
		{ParamCategorySituationID, &c.CategorySituationID},
		{ParamCategoryIngredientID, &c.CategoryIngredientID},
		{ParamCategoryMethodID, &c.CategoryMethodID},
	}
	for _, id := range ids {
		raw := q.Get(id.key)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Criteria{}, fmt.Errorf("%s: %w", id.key, ErrInvalidID)
		}
		*id.dst = &v
	}

	if raw := q.Get(ParamDifficulty); raw != "" {
		d, err := recipe.ParseDifficulty(raw)
		if err != nil {
			return Criteria{}, fmt.Errorf("%s: %w", ParamDifficulty, err)
		}
		c.Difficulty = &d
	}

	if tags := DedupeTags(q[ParamTags]); len(tags) > 0 {
		c.Tags = tags
	}

	if raw := q.Get(ParamPage); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 0 {
			return Criteria{}, ErrInvalidPage
		}
		c.Page = page
	}

	rawSize := q.Get(ParamSize)
	if rawSize == "" {
		rawSize = q.Get(ParamPageSize)
	}
	if rawSize != "" {
		size, err := strconv.Atoi(rawSize)
		if err != nil || size <= 0 || size > maxSize {
			return Criteria{}, ErrInvalidSize
		}
		c.Size = size
	}

	if raw := q.Get(ParamSort); raw != "" {
		c.Sort = &raw
	}

	return c, nil
}

// DedupeTags trims tags, drops empty ones and removes duplicates while keeping
// the first occurrence order.
func DedupeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
