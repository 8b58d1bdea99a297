// Package json contains utilities for handling JSON.
package json

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const maxRequestBody = 1 << 20 // 1 MiB

// DecodeJSON decodes a JSON object.
func DecodeJSON(dst any, decoder *json.Decoder) error {
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("decoding json: %w", err)
	}

	// Ensure no extra tokens after decoding
	if _, err := decoder.Token(); err != io.EOF {
		return fmt.Errorf("unexpected token after JSON object: %w", err)
	}
	return nil
}

// DecodeRequest decodes a bounded request body into dst.
func DecodeRequest(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	return DecodeJSON(dst, json.NewDecoder(r.Body))
}

// Encode writes v as the response body with the given status.
func Encode(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}
