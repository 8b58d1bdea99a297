package cli

import (
	"net/url"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matt-dz/cookbook/internal/filter"
)

// criteriaFlags are the listing filters shared by `recipes list` and
// `browse`. They are parsed the same way the HTTP listing endpoint parses its
// query.
type criteriaFlags struct {
	search     string
	typeID     int64
	situation  int64
	ingredient int64
	method     int64
	difficulty string
	tags       []string
	page       int
	size       int
	sort       string
}

func (f *criteriaFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.search, "search", "", "Free text search")
	flags.Int64Var(&f.typeID, "type", 0, "Type category id")
	flags.Int64Var(&f.situation, "situation", 0, "Situation category id")
	flags.Int64Var(&f.ingredient, "ingredient", 0, "Ingredient category id")
	flags.Int64Var(&f.method, "method", 0, "Method category id")
	flags.StringVar(&f.difficulty, "difficulty", "", "EASY, NORMAL or HARD")
	flags.StringSliceVar(&f.tags, "tag", nil, "Tag to match (repeatable)")
	flags.IntVar(&f.page, "page", 0, "Zero based page")
	flags.IntVar(&f.size, "size", 0, "Page size (defaults to page_size from config)")
	flags.StringVar(&f.sort, "sort", "", "Sort order passed to the backend")
}

func (f *criteriaFlags) criteria(cmd *cobra.Command, defaultSize int) (filter.Criteria, error) {
	q := url.Values{}
	if cmd.Flags().Changed("search") {
		q.Set(filter.ParamSearch, f.search)
	}
	setID := func(key string, id int64) {
		if id > 0 {
			q.Set(key, strconv.FormatInt(id, 10))
		}
	}
	setID(filter.ParamCategoryTypeID, f.typeID)
	setID(filter.ParamCategorySituationID, f.situation)
	setID(filter.ParamCategoryIngredientID, f.ingredient)
	setID(filter.ParamCategoryMethodID, f.method)
	if f.difficulty != "" {
		q.Set(filter.ParamDifficulty, f.difficulty)
	}
	for _, t := range f.tags {
		q.Add(filter.ParamTags, t)
	}
	q.Set(filter.ParamPage, strconv.Itoa(f.page))
	size := f.size
	if size <= 0 {
		size = defaultSize
	}
	if size > 0 {
		q.Set(filter.ParamSize, strconv.Itoa(size))
	}
	if f.sort != "" {
		q.Set(filter.ParamSort, f.sort)
	}
	return filter.FromQuery(q)
}
