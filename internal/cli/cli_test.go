package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/matt-dz/cookbook/internal/auth"
)

type recorder struct {
	mu      sync.Mutex
	queries []string
	asked   []string
}

// startBackend serves the recipe backend endpoints the commands use.
func startBackend(t *testing.T) *recorder {
	t.Helper()
	rec := &recorder{}
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/recipes", func(w http.ResponseWriter, r *http.Request) {
		rec.mu.Lock()
		rec.queries = append(rec.queries, r.URL.RawQuery)
		rec.mu.Unlock()
		_, _ = w.Write([]byte(`{"content":[{"recipe_id":4,"title":"Tteokbokki","difficulty":"NORMAL","cookTime":20}],"totalElements":13}`))
	})
	mux.HandleFunc("GET /api/categories/v1/categories", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("category_type") == "TYPE" {
			_, _ = w.Write([]byte(`{"categories":[{"category_id":1,"name":"Soup"}]}`))
			return
		}
		_, _ = w.Write([]byte(`[]`))
	})
	mux.HandleFunc("POST /api/users/v1/login", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: auth.SessionCookie, Value: "sess-9", Path: "/"})
		_, _ = w.Write([]byte(`{"user":{"user_id":3,"email":"cook@example.com","name":"Cook"}}`))
	})
	mux.HandleFunc("GET /api/users/v1/me", func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie(auth.SessionCookie); err != nil || c.Value != "sess-9" {
			http.Error(w, `{"message":"unauthorized"}`, http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"user_id":3,"email":"cook@example.com","name":"Cook","role":"USER"}`))
	})
	mux.HandleFunc("GET /api/cart", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("userId") != "3" {
			http.Error(w, `{"message":"wrong user"}`, http.StatusBadRequest)
			return
		}
		_, _ = w.Write([]byte(`{"id":1,"user_id":3,"items":[{"id":7,"name":"Gochujang","amount":1,"unit":"jar","category":"Pantry"}]}`))
	})
	mux.HandleFunc("POST /api/chat/v1/message", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Question string `json:"question"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		rec.mu.Lock()
		rec.asked = append(rec.asked, body.Question)
		rec.mu.Unlock()
		_, _ = w.Write([]byte(`{"answer":"Use day old rice."}`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("COOKBOOK_CONFIG", filepath.Join(dir, "missing.yaml"))
	t.Setenv("API_BASE_URL", srv.URL+"/api")
	t.Setenv("SESSION_PATH", filepath.Join(dir, "session.json"))
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("PAGE_SIZE", "6")
	return rec
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(""))
	err := root.Execute()
	return out.String(), err
}

func TestRecipesList(t *testing.T) {
	rec := startBackend(t)

	out, err := run(t, "recipes", "list", "--type", "3", "--tag", "spicy", "--tag", "spicy")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"Tteokbokki", "NORMAL", "20m", "Page 1 of 3 (13 recipes)"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q\n%s", want, out)
		}
	}
	if got := rec.queries[0]; got != "categoryTypeId=3&page=0&size=6&tags=spicy" {
		t.Errorf("unexpected query %q", got)
	}
}

func TestRecipesListJSON(t *testing.T) {
	startBackend(t)

	out, err := run(t, "--json", "recipes", "list", "--size", "2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var body struct {
		Content    []map[string]any `json:"content"`
		Pagination struct {
			TotalPages int `json:"totalPages"`
			Size       int `json:"size"`
		} `json:"pagination"`
	}
	if err := json.Unmarshal([]byte(out), &body); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, out)
	}
	if len(body.Content) != 1 || body.Pagination.Size != 2 || body.Pagination.TotalPages != 7 {
		t.Errorf("unexpected listing %+v", body)
	}
}

func TestRecipesListInvalidFlags(t *testing.T) {
	startBackend(t)

	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown difficulty", args: []string{"recipes", "list", "--difficulty", "EXTREME"}},
		{name: "negative page", args: []string{"recipes", "list", "--page", "-1"}},
		{name: "bad id", args: []string{"recipes", "get", "abc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := run(t, tt.args...); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestCategories(t *testing.T) {
	startBackend(t)

	out, err := run(t, "categories", "type")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Type") || !strings.Contains(out, "Soup") {
		t.Errorf("unexpected output\n%s", out)
	}
}

func TestCartRequiresLogin(t *testing.T) {
	startBackend(t)

	_, err := run(t, "cart")
	if err == nil || !strings.Contains(err.Error(), "not logged in") {
		t.Fatalf("expected not logged in error, got %v", err)
	}
}

func TestLoginThenCart(t *testing.T) {
	startBackend(t)

	out, err := run(t, "login", "--email", "cook@example.com", "--password", "secret1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if !strings.Contains(out, "Logged in as Cook") {
		t.Errorf("unexpected login output %q", out)
	}

	out, err = run(t, "cart")
	if err != nil {
		t.Fatalf("cart failed: %v", err)
	}
	for _, want := range []string{"Gochujang", "1 jar", "Pantry", "1 of 1 items left"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q\n%s", want, out)
		}
	}

	out, err = run(t, "whoami")
	if err != nil {
		t.Fatalf("whoami failed: %v", err)
	}
	if !strings.Contains(out, "Cook <cook@example.com>") {
		t.Errorf("unexpected whoami output %q", out)
	}
}

func TestChat(t *testing.T) {
	rec := startBackend(t)

	out, err := run(t, "chat", "how", "do", "I", "make", "fried", "rice?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "Use day old rice." {
		t.Errorf("unexpected answer %q", out)
	}
	if rec.asked[0] != "how do I make fried rice?" {
		t.Errorf("unexpected question %q", rec.asked[0])
	}
}
