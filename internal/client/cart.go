package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/matt-dz/cookbook/internal/cart"
)

const cartPath = "/cart"

func userQuery(userID int64) url.Values {
	return url.Values{"userId": {strconv.FormatInt(userID, 10)}}
}

// Cart returns the user's cart, or nil when the user has none yet.
func (c *Client) Cart(ctx context.Context, userID int64) (*cart.Cart, error) {
	var out cart.Cart
	if err := c.http.GetJSON(ctx, cartPath, userQuery(userID), &out); err != nil {
		if errors.Is(notFound(err), ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("getting cart: %w", err)
	}
	return &out, nil
}

func (c *Client) AddCartItem(ctx context.Context, userID int64, item cart.Item) (cart.Item, error) {
	body := struct {
		UserID int64     `json:"userId"`
		Item   cart.Item `json:"item"`
	}{userID, item}

	var out cart.Item
	if err := c.http.SendJSON(ctx, http.MethodPost, cartPath+"/items", nil, body, &out); err != nil {
		return cart.Item{}, fmt.Errorf("adding cart item: %w", err)
	}
	return out, nil
}

func (c *Client) UpdateCartItem(ctx context.Context, userID, itemID int64, updates cart.ItemUpdate) (cart.Item, error) {
	body := struct {
		UserID  int64           `json:"userId"`
		Updates cart.ItemUpdate `json:"updates"`
	}{userID, updates}

	var out cart.Item
	path := fmt.Sprintf("%s/items/%d", cartPath, itemID)
	if err := c.http.SendJSON(ctx, http.MethodPatch, path, nil, body, &out); err != nil {
		return cart.Item{}, fmt.Errorf("updating cart item %d: %w", itemID, notFound(err))
	}
	return out, nil
}

func (c *Client) RemoveCartItem(ctx context.Context, userID, itemID int64) error {
	path := fmt.Sprintf("%s/items/%d", cartPath, itemID)
	if err := c.http.SendJSON(ctx, http.MethodDelete, path, userQuery(userID), nil, nil); err != nil {
		return fmt.Errorf("removing cart item %d: %w", itemID, notFound(err))
	}
	return nil
}

func (c *Client) ClearCart(ctx context.Context, userID int64) error {
	if err := c.http.SendJSON(ctx, http.MethodDelete, cartPath+"/clear", userQuery(userID), nil, nil); err != nil {
		return fmt.Errorf("clearing cart: %w", err)
	}
	return nil
}
