package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/matt-dz/cookbook/internal/recipe"
)

const categoriesPath = "/categories/v1/categories"

// Categories lists the categories of one axis. The endpoint wraps the list in
// a categories field; a bare array is accepted too.
func (c *Client) Categories(ctx context.Context, axis recipe.Axis) ([]recipe.Category, error) {
	body, err := c.http.GetRaw(ctx, categoriesPath, url.Values{"category_type": {axis.String()}})
	if err != nil {
		return nil, fmt.Errorf("listing %s categories: %w", axis, err)
	}

	var wrapped struct {
		Categories []recipe.Category `json:"categories"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil {
		return withAxis(wrapped.Categories, axis), nil
	}

	var bare []recipe.Category
	if err := json.Unmarshal(body, &bare); err != nil {
		return nil, fmt.Errorf("decoding %s categories: %w", axis, err)
	}
	return withAxis(bare, axis), nil
}

func withAxis(categories []recipe.Category, axis recipe.Axis) []recipe.Category {
	if categories == nil {
		return []recipe.Category{}
	}
	for i := range categories {
		if categories[i].Type == "" {
			categories[i].Type = axis
		}
	}
	return categories
}
