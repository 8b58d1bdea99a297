package requestid

import (
	"context"
	"testing"

	"github.com/oklog/ulid/v2"
)

func TestRequestID(t *testing.T) {
	if got := ExtractRequestID(context.Background()); got != "" {
		t.Errorf("expected empty id, got %q", got)
	}

	id := New()
	if _, err := ulid.Parse(id); err != nil {
		t.Fatalf("expected a ulid, got %q: %v", id, err)
	}

	ctx := InjectRequestID(context.Background(), id)
	if got := ExtractRequestID(ctx); got != id {
		t.Errorf("expected %q, got %q", id, got)
	}
}
