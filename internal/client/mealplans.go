package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/matt-dz/cookbook/internal/mealplan"
)

const mealPlansPath = "/meal-plans"

func (c *Client) MealPlans(ctx context.Context, userID int64) ([]mealplan.MealPlan, error) {
	var out []mealplan.MealPlan
	if err := c.http.GetJSON(ctx, mealPlansPath, userQuery(userID), &out); err != nil {
		return nil, fmt.Errorf("listing meal plans: %w", err)
	}
	return out, nil
}

func (c *Client) MealPlan(ctx context.Context, id int64) (mealplan.MealPlan, error) {
	var out mealplan.MealPlan
	if err := c.http.GetJSON(ctx, fmt.Sprintf("%s/%d", mealPlansPath, id), nil, &out); err != nil {
		return mealplan.MealPlan{}, fmt.Errorf("getting meal plan %d: %w", id, notFound(err))
	}
	return out, nil
}

func (c *Client) CreateMealPlan(ctx context.Context, plan mealplan.MealPlan) (mealplan.MealPlan, error) {
	var out mealplan.MealPlan
	if err := c.http.SendJSON(ctx, http.MethodPost, mealPlansPath, nil, plan, &out); err != nil {
		return mealplan.MealPlan{}, fmt.Errorf("creating meal plan: %w", err)
	}
	return out, nil
}

func (c *Client) UpdateMealPlan(ctx context.Context, id int64, plan mealplan.MealPlan) (mealplan.MealPlan, error) {
	var out mealplan.MealPlan
	path := fmt.Sprintf("%s/%d", mealPlansPath, id)
	if err := c.http.SendJSON(ctx, http.MethodPut, path, nil, plan, &out); err != nil {
		return mealplan.MealPlan{}, fmt.Errorf("updating meal plan %d: %w", id, notFound(err))
	}
	return out, nil
}

func (c *Client) DeleteMealPlan(ctx context.Context, id int64) error {
	path := fmt.Sprintf("%s/%d", mealPlansPath, id)
	if err := c.http.SendJSON(ctx, http.MethodDelete, path, nil, nil, nil); err != nil {
		return fmt.Errorf("deleting meal plan %d: %w", id, notFound(err))
	}
	return nil
}

func (c *Client) AddMealPlanItem(ctx context.Context, planID int64, item mealplan.Item) (mealplan.Item, error) {
	var out mealplan.Item
	path := fmt.Sprintf("%s/%d/items", mealPlansPath, planID)
	if err := c.http.SendJSON(ctx, http.MethodPost, path, nil, item, &out); err != nil {
		return mealplan.Item{}, fmt.Errorf("adding item to meal plan %d: %w", planID, notFound(err))
	}
	return out, nil
}

func (c *Client) RemoveMealPlanItem(ctx context.Context, planID, itemID int64) error {
	path := fmt.Sprintf("%s/%d/items/%d", mealPlansPath, planID, itemID)
	if err := c.http.SendJSON(ctx, http.MethodDelete, path, nil, nil, nil); err != nil {
		return fmt.Errorf("removing item %d from meal plan %d: %w", itemID, planID, notFound(err))
	}
	return nil
}
