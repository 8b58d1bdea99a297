// Package ping contains handlers for pinging the server
package ping

import "net/http"

// HandlePing godoc
//
//	@Summary	Liveness check.
//	@Tags		Ping
//	@Produce	plain
//	@Success	200	{string}	string	"pong"
//	@Router		/api/ping [GET]
func HandlePing(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("pong"))
}
