// Package params reads identifiers out of request paths.
package params

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

var ErrInvalidID = errors.New("invalid id")

// PathID parses the positive integer URL parameter name.
func PathID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidID, name, raw)
	}
	return id, nil
}
