package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/matt-dz/cookbook/internal/filter"
	"github.com/matt-dz/cookbook/internal/recipe"
)

const recipesPath = "/recipes"

// ListRecipesRaw fetches one listing page and returns the body undecoded
// since the listing endpoint does not commit to a single response shape.
func (c *Client) ListRecipesRaw(ctx context.Context, criteria filter.Criteria) ([]byte, error) {
	body, err := c.http.GetRaw(ctx, recipesPath, criteria.Query())
	if err != nil {
		return nil, fmt.Errorf("listing recipes: %w", err)
	}
	return body, nil
}

func (c *Client) GetRecipe(ctx context.Context, id int64) (recipe.Recipe, error) {
	var r recipe.Recipe
	if err := c.http.GetJSON(ctx, fmt.Sprintf("%s/%d", recipesPath, id), nil, &r); err != nil {
		return recipe.Recipe{}, fmt.Errorf("getting recipe %d: %w", id, notFound(err))
	}
	return r, nil
}

func (c *Client) CreateRecipe(ctx context.Context, r recipe.Recipe) (recipe.Recipe, error) {
	var created recipe.Recipe
	if err := c.http.SendJSON(ctx, http.MethodPost, recipesPath, nil, r, &created); err != nil {
		return recipe.Recipe{}, fmt.Errorf("creating recipe: %w", err)
	}
	return created, nil
}

func (c *Client) UpdateRecipe(ctx context.Context, id int64, r recipe.Recipe) (recipe.Recipe, error) {
	var updated recipe.Recipe
	path := fmt.Sprintf("%s/%d", recipesPath, id)
	if err := c.http.SendJSON(ctx, http.MethodPut, path, nil, r, &updated); err != nil {
		return recipe.Recipe{}, fmt.Errorf("updating recipe %d: %w", id, notFound(err))
	}
	return updated, nil
}

func (c *Client) DeleteRecipe(ctx context.Context, id int64) error {
	path := fmt.Sprintf("%s/%d", recipesPath, id)
	if err := c.http.SendJSON(ctx, http.MethodDelete, path, nil, nil, nil); err != nil {
		return fmt.Errorf("deleting recipe %d: %w", id, notFound(err))
	}
	return nil
}

// RecommendRecipes lists recipes that use the given ingredients.
func (c *Client) RecommendRecipes(ctx context.Context, ingredients []string) ([]recipe.Recipe, error) {
	q := url.Values{}
	for _, ing := range ingredients {
		q.Add("ingredient", ing)
	}

	var out []recipe.Recipe
	if err := c.http.GetJSON(ctx, recipesPath+"/recommendations", q, &out); err != nil {
		return nil, fmt.Errorf("getting recommendations: %w", err)
	}
	return out, nil
}
