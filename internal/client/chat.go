package client

import (
	"context"
	"fmt"
	"net/http"
)

type ChatRequest struct {
	Question  string  `json:"question" validate:"required"`
	SessionID *string `json:"sessionId"`
}

type ChatResponse struct {
	Answer string `json:"answer"`
}

// Ask sends a question to the cooking assistant.
func (c *Client) Ask(ctx context.Context, req ChatRequest) (ChatResponse, error) {
	var resp ChatResponse
	if err := c.http.SendJSON(ctx, http.MethodPost, "/chat/v1/message", nil, req, &resp); err != nil {
		return ChatResponse{}, fmt.Errorf("sending chat message: %w", err)
	}
	return resp, nil
}
