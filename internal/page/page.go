// Package page normalizes the listing payloads returned by the recipe backend
// into one canonical page.
package page

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/matt-dz/cookbook/internal/filter"
)

var ErrUnrecognizedShape = errors.New("unrecognized listing response shape")

// Shape identifies which payload layout a response used.
type Shape int

const (
	ShapeUnknown Shape = iota
	ShapeContent
	ShapeRecipes
	ShapeArray
)

func (s Shape) String() string {
	switch s {
	case ShapeContent:
		return "content"
	case ShapeRecipes:
		return "recipes"
	case ShapeArray:
		return "array"
	default:
		return "unknown"
	}
}

// Metadata describes where a page sits in the full result set.
type Metadata struct {
	TotalElements int  `json:"totalElements"`
	TotalPages    int  `json:"totalPages"`
	Number        int  `json:"number"`
	Size          int  `json:"size"`
	First         bool `json:"first"`
	Last          bool `json:"last"`
	Empty         bool `json:"empty"`
}

type Page[T any] struct {
	Content []T `json:"content"`
	Metadata
}

// TotalPages is max(1, ceil(total/size)).
func TotalPages(total, size int) int {
	if size <= 0 || total <= 0 {
		return 1
	}
	return max(1, (total+size-1)/size)
}

// New builds a page whose derived fields agree with content and the given
// position.
func New[T any](content []T, total, number, size int) Page[T] {
	if content == nil {
		content = []T{}
	}
	if size <= 0 {
		size = filter.DefaultSize
	}
	number = max(number, 0)
	total = max(total, 0)
	pages := TotalPages(total, size)

	return Page[T]{
		Content: content,
		Metadata: Metadata{
			TotalElements: total,
			TotalPages:    pages,
			Number:        number,
			Size:          size,
			First:         number == 0,
			Last:          number >= pages-1,
			Empty:         len(content) == 0,
		},
	}
}

// Empty is the page reported when nothing usable came back.
func Empty[T any](requested filter.Criteria) Page[T] {
	return New[T](nil, 0, 0, requested.Size)
}

// upstream is an object shaped response. Numbers are pointers so absent
// fields can be told apart from zeros.
type upstream[T any] struct {
	Content       *[]T `json:"content"`
	Recipes       *[]T `json:"recipes"`
	TotalElements *int `json:"totalElements"`
	TotalCount    *int `json:"totalCount"`
	Number        *int `json:"number"`
	Size          *int `json:"size"`
}

// Detect reports the layout of raw without decoding its items.
func Detect(raw []byte) Shape {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ShapeUnknown
	}

	switch raw[0] {
	case '[':
		return ShapeArray
	case '{':
		var keys map[string]json.RawMessage
		if err := json.Unmarshal(raw, &keys); err != nil {
			return ShapeUnknown
		}
		if _, ok := keys["content"]; ok {
			return ShapeContent
		}
		if _, ok := keys["recipes"]; ok {
			return ShapeRecipes
		}
	}
	return ShapeUnknown
}

// Normalize converts a raw listing response into a Page. Shapes are tried in
// order: a content field, a recipes field, a bare array. Anything else yields
// the empty page together with ErrUnrecognizedShape. Derived fields are always
// recomputed from the content and the requested criteria.
func Normalize[T any](raw []byte, requested filter.Criteria) (Page[T], error) {
	shape := Detect(raw)
	switch shape {
	case ShapeArray:
		var items []T
		if err := json.Unmarshal(raw, &items); err != nil {
			return Empty[T](requested), fmt.Errorf("decoding %s page: %w", shape, err)
		}
		size := len(items)
		if size == 0 {
			size = requested.Size
		}
		return New(items, len(items), 0, size), nil

	case ShapeContent, ShapeRecipes:
		var body upstream[T]
		if err := json.Unmarshal(raw, &body); err != nil {
			return Empty[T](requested), fmt.Errorf("decoding %s page: %w", shape, err)
		}

		var items []T
		if shape == ShapeContent && body.Content != nil {
			items = *body.Content
		} else if shape == ShapeRecipes && body.Recipes != nil {
			items = *body.Recipes
		}

		size := requested.Size
		if body.Size != nil && *body.Size > 0 {
			size = *body.Size
		}
		number := requested.Page
		if body.Number != nil && *body.Number >= 0 {
			number = *body.Number
		}

		var total int
		switch {
		case body.TotalElements != nil:
			total = *body.TotalElements
		case body.TotalCount != nil:
			total = *body.TotalCount
		default:
			total = len(items)
		}
		total = max(total, len(items))

		return New(items, total, number, size), nil
	}

	return Empty[T](requested), ErrUnrecognizedShape
}
