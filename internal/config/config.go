// Package config contains utilities for loading configs
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"

	"github.com/go-playground/validator/v10"
)

const (
	configFilePath = "cookbook.yaml"
	dotenvFilePath = ".env"
)

const (
	EnvProd = "PROD"
	EnvDev  = "DEV"
)

const (
	defaultAPIBaseURL  = "http://localhost:3001/api"
	defaultPageSize    = 6
	defaultHTTPTimeout = 15 * time.Second
	defaultServerAddr  = "localhost:8080"
	defaultLogLevel    = "info"
	sessionFileName    = "session.json"
)

func splitFieldList(param string) []string {
	// "A,B,C" or "A B C"
	param = strings.ReplaceAll(param, " ", ",")
	parts := strings.Split(param, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// allOrNothing is a cross-field rule for go-playground/validator. Attached to a
// placeholder field, it passes only when the listed sibling fields (comma or
// space separated, e.g. `validate:"allOrNothing=A,B"`) are either all zero or
// all non-zero. Nil pointers and interfaces count as zero; non-nil ones are
// dereferenced first. A missing parent, non-struct parent, unknown field or
// empty field list fails validation.
func allOrNothing(fl validator.FieldLevel) bool {
	parent := fl.Parent()
	if parent.Kind() == reflect.Pointer {
		if parent.IsNil() {
			return true // nothing to validate
		}
		parent = parent.Elem()
	}
	if parent.Kind() != reflect.Struct {
		return false
	}

	names := splitFieldList(fl.Param())
	if len(names) == 0 {
		return false
	}

	hasZero := false
	hasNonZero := false

	for _, name := range names {
		f := parent.FieldByName(name)
		if !f.IsValid() {
			return false // field name typo / not found
		}

		for (f.Kind() == reflect.Pointer || f.Kind() == reflect.Interface) && !f.IsNil() {
			f = f.Elem()
		}

		if f.IsZero() {
			hasZero = true
		} else {
			hasNonZero = true
		}

		if hasZero && hasNonZero {
			return false
		}
	}

	return true
}

func registerAllOrNothing(v *validator.Validate) {
	_ = v.RegisterValidation("allOrNothing", allOrNothing)
}

func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	for _, e := range validationErrs {
		if e.Tag() == "allOrNothing" {
			// "Config.Server.TLS.Validate" -> "TLS"
			parts := strings.Split(e.Namespace(), ".")
			var structName string
			//nolint:mnd
			if len(parts) >= 2 {
				structName = parts[len(parts)-2]
			}

			var fields string
			switch structName {
			case "TLS":
				fields = "CertFile and KeyFile"
			default:
				fields = "all related fields"
			}

			return fmt.Errorf(
				"%s configuration is incomplete: either all fields must be set (%s) or all must be empty",
				structName, fields)
		}
	}

	return fmt.Errorf("invalid config: %w", err)
}

type HTTP struct {
	Timeout  time.Duration `yaml:"timeout" validate:"gt=0"`
	RetryMax int           `yaml:"retry_max" validate:"gte=0,lte=10"`
}

type TLS struct {
	CertFile string `yaml:"cert_file" validate:"omitempty,filepath"`
	KeyFile  string `yaml:"key_file" validate:"omitempty,filepath"`

	Validate struct{} `yaml:"-" validate:"allOrNothing=CertFile KeyFile"`
}

func (t TLS) Enabled() bool {
	return t.CertFile != "" && t.KeyFile != ""
}

type Server struct {
	Addr          string `yaml:"addr" validate:"hostname_port"`
	AllowedOrigin string `yaml:"allowed_origin" validate:"omitempty,url"`
	TLS           TLS    `yaml:"tls"`
}

type Log struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error DEBUG INFO WARN ERROR"`
	File  string `yaml:"file" validate:"omitempty,filepath"`
}

type Session struct {
	Path string `yaml:"path" validate:"omitempty,filepath"`
}

type Config struct {
	Env        string  `yaml:"env" validate:"omitempty,oneof=DEV PROD"`
	APIBaseURL string  `yaml:"api_base_url" validate:"url"`
	PageSize   int     `yaml:"page_size" validate:"gte=1,lte=100"`
	HTTP       HTTP    `yaml:"http"`
	Server     Server  `yaml:"server"`
	Log        Log     `yaml:"log"`
	Session    Session `yaml:"session"`
}

func (c Config) IsProd() bool {
	return c.Env == EnvProd
}

func defaultSessionPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".cookbook", sessionFileName)
	}
	return filepath.Join(dir, "cookbook", sessionFileName)
}

func validate(conf Config) error {
	v := validator.New(validator.WithRequiredStructEnabled())
	registerAllOrNothing(v)
	if err := v.Struct(conf); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func loadWithDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func loadConfigFromEnv() (Config, error) {
	conf := Config{
		Env:        loadWithDefault("ENV", EnvDev),
		APIBaseURL: strings.TrimRight(loadWithDefault("API_BASE_URL", defaultAPIBaseURL), "/"),
		Server: Server{
			Addr:          loadWithDefault("SERVER_ADDR", defaultServerAddr),
			AllowedOrigin: loadWithDefault("ALLOWED_ORIGIN", ""),
			TLS: TLS{
				CertFile: loadWithDefault("TLS_CERT_FILE", ""),
				KeyFile:  loadWithDefault("TLS_KEY_FILE", ""),
			},
		},
		Log: Log{
			Level: loadWithDefault("LOG_LEVEL", defaultLogLevel),
			File:  loadWithDefault("LOG_FILE", ""),
		},
		Session: Session{
			Path: loadWithDefault("SESSION_PATH", defaultSessionPath()),
		},
	}

	pageSize := loadWithDefault("PAGE_SIZE", strconv.Itoa(defaultPageSize))
	if size, err := strconv.Atoi(pageSize); err != nil {
		return conf, fmt.Errorf("invalid PAGE_SIZE (%q): %w", pageSize, err)
	} else {
		conf.PageSize = size
	}

	timeout := loadWithDefault("HTTP_TIMEOUT", defaultHTTPTimeout.String())
	if d, err := time.ParseDuration(timeout); err != nil {
		return conf, fmt.Errorf("invalid HTTP_TIMEOUT (%q): %w", timeout, err)
	} else {
		conf.HTTP.Timeout = d
	}

	retryMax := loadWithDefault("HTTP_RETRY_MAX", "0")
	if n, err := strconv.Atoi(retryMax); err != nil {
		return conf, fmt.Errorf("invalid HTTP_RETRY_MAX (%q): %w", retryMax, err)
	} else {
		conf.HTTP.RetryMax = n
	}

	if err := validate(conf); err != nil {
		return conf, err
	}
	return conf, nil
}

func loadConfigFromFile(path string) (Config, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(contents, &config); err != nil {
		return Config{}, fmt.Errorf("unmarshaling config: %w", err)
	}

	// Set defaults
	if config.Env == "" {
		config.Env = EnvDev
	}
	if config.APIBaseURL == "" {
		config.APIBaseURL = defaultAPIBaseURL
	}
	config.APIBaseURL = strings.TrimRight(config.APIBaseURL, "/")
	if config.PageSize == 0 {
		config.PageSize = defaultPageSize
	}
	if config.HTTP.Timeout == 0 {
		config.HTTP.Timeout = defaultHTTPTimeout
	}
	if config.Server.Addr == "" {
		config.Server.Addr = defaultServerAddr
	}
	if config.Log.Level == "" {
		config.Log.Level = defaultLogLevel
	}
	if config.Session.Path == "" {
		config.Session.Path = defaultSessionPath()
	}

	if err := validate(config); err != nil {
		return Config{}, err
	}
	return config, nil
}

func configFileExists(path string) bool {
	f, err := os.Lstat(path)
	if err != nil {
		return false
	}

	return !f.IsDir()
}

// loadDotenv exports the variables of a .env file. Variables already set in
// the environment win. A missing file is not an error.
func loadDotenv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// LoadConfig reads the YAML file named by COOKBOOK_CONFIG (default
// cookbook.yaml) when it exists and the environment otherwise.
func LoadConfig() (Config, error) {
	if err := loadDotenv(dotenvFilePath); err != nil {
		return Config{}, err
	}

	path := loadWithDefault("COOKBOOK_CONFIG", configFilePath)
	if configFileExists(path) {
		return loadConfigFromFile(path)
	}

	return loadConfigFromEnv()
}
