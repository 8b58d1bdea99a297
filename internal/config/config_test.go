package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadConfigFromEnv(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(*testing.T)
		wantError bool
		validate  func(*testing.T, *Config)
	}{
		{
			name:      "all defaults",
			setup:     func(t *testing.T) {},
			wantError: false,
			validate: func(t *testing.T, c *Config) {
				if c.Env != EnvDev {
					t.Errorf("expected Env %q, got %q", EnvDev, c.Env)
				}
				if c.APIBaseURL != "http://localhost:3001/api" {
					t.Errorf("expected APIBaseURL %q, got %q", "http://localhost:3001/api", c.APIBaseURL)
				}
				if c.PageSize != 6 {
					t.Errorf("expected PageSize 6, got %d", c.PageSize)
				}
				if c.HTTP.Timeout != 15*time.Second {
					t.Errorf("expected HTTP.Timeout 15s, got %s", c.HTTP.Timeout)
				}
				if c.HTTP.RetryMax != 0 {
					t.Errorf("expected HTTP.RetryMax 0, got %d", c.HTTP.RetryMax)
				}
				if c.Server.Addr != "localhost:8080" {
					t.Errorf("expected Server.Addr %q, got %q", "localhost:8080", c.Server.Addr)
				}
				if c.Server.TLS.Enabled() {
					t.Error("expected TLS to be disabled")
				}
				if c.Log.Level != "info" {
					t.Errorf("expected Log.Level %q, got %q", "info", c.Log.Level)
				}
				if !strings.HasSuffix(c.Session.Path, "session.json") {
					t.Errorf("expected Session.Path to end with session.json, got %q", c.Session.Path)
				}
				if c.IsProd() {
					t.Error("expected dev environment")
				}
			},
		},
		{
			name: "custom environment values",
			setup: func(t *testing.T) {
				t.Setenv("ENV", "PROD")
				t.Setenv("API_BASE_URL", "https://api.example.com/api/")
				t.Setenv("PAGE_SIZE", "12")
				t.Setenv("HTTP_TIMEOUT", "3s")
				t.Setenv("HTTP_RETRY_MAX", "2")
				t.Setenv("SERVER_ADDR", ":9090")
				t.Setenv("ALLOWED_ORIGIN", "https://cook.example.com")
				t.Setenv("TLS_CERT_FILE", "/etc/cookbook/cert.pem")
				t.Setenv("TLS_KEY_FILE", "/etc/cookbook/key.pem")
				t.Setenv("LOG_LEVEL", "debug")
				t.Setenv("SESSION_PATH", "/tmp/cookbook/session.json")
			},
			wantError: false,
			validate: func(t *testing.T, c *Config) {
				if !c.IsProd() {
					t.Errorf("expected Env %q, got %q", EnvProd, c.Env)
				}
				if c.APIBaseURL != "https://api.example.com/api" {
					t.Errorf("expected trailing slash trimmed, got %q", c.APIBaseURL)
				}
				if c.PageSize != 12 {
					t.Errorf("expected PageSize 12, got %d", c.PageSize)
				}
				if c.HTTP.Timeout != 3*time.Second {
					t.Errorf("expected HTTP.Timeout 3s, got %s", c.HTTP.Timeout)
				}
				if c.HTTP.RetryMax != 2 {
					t.Errorf("expected HTTP.RetryMax 2, got %d", c.HTTP.RetryMax)
				}
				if c.Server.Addr != ":9090" {
					t.Errorf("expected Server.Addr %q, got %q", ":9090", c.Server.Addr)
				}
				if c.Server.AllowedOrigin != "https://cook.example.com" {
					t.Errorf("expected Server.AllowedOrigin %q, got %q", "https://cook.example.com", c.Server.AllowedOrigin)
				}
				if !c.Server.TLS.Enabled() {
					t.Error("expected TLS to be enabled")
				}
				if c.Session.Path != "/tmp/cookbook/session.json" {
					t.Errorf("expected Session.Path %q, got %q", "/tmp/cookbook/session.json", c.Session.Path)
				}
			},
		},
		{
			name: "invalid page size",
			setup: func(t *testing.T) {
				t.Setenv("PAGE_SIZE", "six")
			},
			wantError: true,
		},
		{
			name: "page size out of range",
			setup: func(t *testing.T) {
				t.Setenv("PAGE_SIZE", "0")
			},
			wantError: true,
		},
		{
			name: "invalid timeout",
			setup: func(t *testing.T) {
				t.Setenv("HTTP_TIMEOUT", "soon")
			},
			wantError: true,
		},
		{
			name: "invalid env",
			setup: func(t *testing.T) {
				t.Setenv("ENV", "STAGING")
			},
			wantError: true,
		},
		{
			name: "invalid base url",
			setup: func(t *testing.T) {
				t.Setenv("API_BASE_URL", "not a url")
			},
			wantError: true,
		},
		{
			name: "tls cert without key",
			setup: func(t *testing.T) {
				t.Setenv("TLS_CERT_FILE", "/etc/cookbook/cert.pem")
			},
			wantError: true,
		},
		{
			name: "invalid log level",
			setup: func(t *testing.T) {
				t.Setenv("LOG_LEVEL", "loud")
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup(t)

			config, err := loadConfigFromEnv()

			if tt.wantError {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if tt.validate != nil {
				tt.validate(t, &config)
			}
		})
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		wantError bool
		validate  func(*testing.T, *Config)
	}{
		{
			name: "complete config",
			yaml: `
env: PROD
api_base_url: https://api.example.com/api
page_size: 9
http:
  timeout: 5s
  retry_max: 1
server:
  addr: 0.0.0.0:8443
  allowed_origin: https://cook.example.com
  tls:
    cert_file: /etc/cookbook/cert.pem
    key_file: /etc/cookbook/key.pem
log:
  level: warn
session:
  path: /var/lib/cookbook/session.json
`,
			wantError: false,
			validate: func(t *testing.T, c *Config) {
				if c.Env != EnvProd {
					t.Errorf("expected Env %q, got %q", EnvProd, c.Env)
				}
				if c.PageSize != 9 {
					t.Errorf("expected PageSize 9, got %d", c.PageSize)
				}
				if c.HTTP.Timeout != 5*time.Second {
					t.Errorf("expected HTTP.Timeout 5s, got %s", c.HTTP.Timeout)
				}
				if c.HTTP.RetryMax != 1 {
					t.Errorf("expected HTTP.RetryMax 1, got %d", c.HTTP.RetryMax)
				}
				if c.Server.Addr != "0.0.0.0:8443" {
					t.Errorf("expected Server.Addr %q, got %q", "0.0.0.0:8443", c.Server.Addr)
				}
				if !c.Server.TLS.Enabled() {
					t.Error("expected TLS to be enabled")
				}
				if c.Log.Level != "warn" {
					t.Errorf("expected Log.Level %q, got %q", "warn", c.Log.Level)
				}
			},
		},
		{
			name:      "minimal config with defaults",
			yaml:      "env: DEV\n",
			wantError: false,
			validate: func(t *testing.T, c *Config) {
				if c.APIBaseURL != "http://localhost:3001/api" {
					t.Errorf("expected default APIBaseURL, got %q", c.APIBaseURL)
				}
				if c.PageSize != 6 {
					t.Errorf("expected default PageSize 6, got %d", c.PageSize)
				}
				if c.HTTP.Timeout != 15*time.Second {
					t.Errorf("expected default HTTP.Timeout 15s, got %s", c.HTTP.Timeout)
				}
				if c.Server.Addr != "localhost:8080" {
					t.Errorf("expected default Server.Addr, got %q", c.Server.Addr)
				}
				if c.Session.Path == "" {
					t.Error("expected Session.Path to be set")
				}
			},
		},
		{
			name:      "invalid YAML",
			yaml:      `{invalid yaml content`,
			wantError: true,
		},
		{
			name: "invalid base url",
			yaml: `
api_base_url: not-a-valid-url
`,
			wantError: true,
		},
		{
			name: "tls key without cert",
			yaml: `
server:
  tls:
    key_file: /etc/cookbook/key.pem
`,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			configPath := filepath.Join(tempDir, "cookbook.yaml")

			if err := os.WriteFile(configPath, []byte(tt.yaml), 0o644); err != nil {
				t.Fatalf("failed to write test config file: %v", err)
			}

			config, err := loadConfigFromFile(configPath)

			if tt.wantError {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if tt.validate != nil {
				tt.validate(t, &config)
			}
		})
	}
}

func TestLoadConfigFromFile_FileNotFound(t *testing.T) {
	_, err := loadConfigFromFile("/nonexistent/cookbook.yaml")
	if err == nil {
		t.Error("expected error for nonexistent file, got nil")
	}
}

func TestIncompleteTLSMessage(t *testing.T) {
	t.Setenv("TLS_KEY_FILE", "/etc/cookbook/key.pem")

	_, err := loadConfigFromEnv()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "TLS configuration is incomplete") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("prefers config file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "custom.yaml")
		if err := os.WriteFile(path, []byte("page_size: 3\n"), 0o644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}
		t.Setenv("COOKBOOK_CONFIG", path)
		t.Setenv("PAGE_SIZE", "20")

		conf, err := LoadConfig()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if conf.PageSize != 3 {
			t.Errorf("expected PageSize from file (3), got %d", conf.PageSize)
		}
	})

	t.Run("reads dotenv", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)
		t.Setenv("COOKBOOK_CONFIG", filepath.Join(dir, "missing.yaml"))
		// registered so the value exported by godotenv is restored afterwards
		t.Setenv("PAGE_SIZE", "")
		if err := os.Unsetenv("PAGE_SIZE"); err != nil {
			t.Fatalf("unsetting PAGE_SIZE: %v", err)
		}
		if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("PAGE_SIZE=8\n"), 0o644); err != nil {
			t.Fatalf("failed to write .env: %v", err)
		}

		conf, err := LoadConfig()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if conf.PageSize != 8 {
			t.Errorf("expected PageSize from .env (8), got %d", conf.PageSize)
		}
	})
}
