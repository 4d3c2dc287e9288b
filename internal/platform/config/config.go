package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	pkgstrings "normalro/pkg/platform/strings"
)

// Config is the full process configuration, read once at startup.
type Config struct {
	Server  Server
	Logging Logging
	Company Company
	Redis   RedisConfig
	Email   Email
	Tracing Tracing
}

// Server captures HTTP server level configuration.
type Server struct {
	Addr           string
	AllowedOrigins []string
	RequestTimeout time.Duration
	MaxBodyBytes   int64
	Version        string
}

type Logging struct {
	Level  string
	Format string
}

// Company configures the ANAF lookup proxy.
type Company struct {
	ANAFURL          string
	Timeout          time.Duration
	CacheTTL         time.Duration
	FailureThreshold int
	BreakerCooldown  time.Duration
}

// RedisConfig is optional; an empty URL keeps every store in memory.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Email configures the relay and its temporary attachment area.
type Email struct {
	TempDir       string
	TempTTL       time.Duration
	SweepInterval time.Duration
	MaxFileBytes  int64
	SMTPTimeout   time.Duration
	Providers     []SMTPProvider
}

// SMTPProvider is a named SMTP preset. Username and Password are the optional
// server-side credentials read from <NAME>_USER and <NAME>_PASSWORD.
type SMTPProvider struct {
	Name     string `yaml:"-"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"-"`
	Password string `yaml:"-"`
}

type Tracing struct {
	Enabled bool
	Output  string
}

// DefaultANAFURL is the public ANAF VAT-payer lookup endpoint.
const DefaultANAFURL = "https://webservicesp.anaf.ro/PlatitorTvaRest/api/v9/ws/tva"

// DefaultSMTPProviders are the built-in presets; SMTP_PROVIDERS_FILE can
// override or extend them.
func DefaultSMTPProviders() map[string]SMTPProvider {
	return map[string]SMTPProvider{
		"gmail":   {Name: "gmail", Host: "smtp.gmail.com", Port: 587},
		"outlook": {Name: "outlook", Host: "smtp-mail.outlook.com", Port: 587},
		"yahoo":   {Name: "yahoo", Host: "smtp.mail.yahoo.com", Port: 587},
	}
}

// FromEnv builds the configuration from environment variables so main stays lean.
func FromEnv() (Config, error) {
	return fromLookup(os.Getenv)
}

func fromLookup(getenv func(string) string) (Config, error) {
	e := env{get: getenv}

	addr := e.str("NORMALRO_ADDR", "")
	if addr == "" {
		if port := getenv("PORT"); port != "" {
			addr = ":" + port
		} else {
			addr = ":5000"
		}
	}

	cfg := Config{
		Server: Server{
			Addr:           addr,
			AllowedOrigins: pkgstrings.SplitList(e.str("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")),
			RequestTimeout: e.duration("REQUEST_TIMEOUT", 30*time.Second),
			MaxBodyBytes:   e.int64("MAX_BODY_BYTES", 20<<20),
			Version:        e.str("NORMALRO_VERSION", "1.0.0"),
		},
		Logging: Logging{
			Level:  e.str("LOG_LEVEL", "info"),
			Format: e.str("LOG_FORMAT", "json"),
		},
		Company: Company{
			ANAFURL:          e.str("ANAF_URL", DefaultANAFURL),
			Timeout:          e.duration("ANAF_TIMEOUT", 10*time.Second),
			CacheTTL:         e.duration("COMPANY_CACHE_TTL", time.Hour),
			FailureThreshold: e.int("ANAF_FAILURE_THRESHOLD", 5),
			BreakerCooldown:  e.duration("ANAF_BREAKER_COOLDOWN", 30*time.Second),
		},
		Redis: RedisConfig{
			URL:          e.str("REDIS_URL", ""),
			PoolSize:     e.int("REDIS_POOL_SIZE", 10),
			MinIdleConns: e.int("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  e.duration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  e.duration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: e.duration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Email: Email{
			TempDir:       e.str("TEMP_FILE_DIR", filepath.Join(os.TempDir(), "normalro-attachments")),
			TempTTL:       e.duration("TEMP_FILE_TTL", time.Hour),
			SweepInterval: e.duration("TEMP_FILE_SWEEP_INTERVAL", 5*time.Minute),
			MaxFileBytes:  e.int64("TEMP_FILE_MAX_BYTES", 10<<20),
			SMTPTimeout:   e.duration("SMTP_TIMEOUT", 30*time.Second),
		},
		Tracing: Tracing{
			Enabled: e.bool("TRACING_ENABLED", false),
			Output:  e.str("TRACING_OUTPUT", ""),
		},
	}
	if e.err != nil {
		return Config{}, e.err
	}

	providers := DefaultSMTPProviders()
	if path := getenv("SMTP_PROVIDERS_FILE"); path != "" {
		extra, err := LoadSMTPProviders(path)
		if err != nil {
			return Config{}, err
		}
		for name, p := range extra {
			providers[name] = p
		}
	}
	cfg.Email.Providers = withCredentials(providers, getenv)

	return cfg, nil
}

// providersFile is the SMTP_PROVIDERS_FILE layout:
//
//	providers:
//	  zoho:
//	    host: smtp.zoho.eu
//	    port: 465
type providersFile struct {
	Providers map[string]SMTPProvider `yaml:"providers"`
}

// LoadSMTPProviders reads SMTP presets from a YAML file. Names are lower-cased.
func LoadSMTPProviders(path string) (map[string]SMTPProvider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read smtp providers file: %w", err)
	}
	var file providersFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse smtp providers file: %w", err)
	}

	out := make(map[string]SMTPProvider, len(file.Providers))
	for name, p := range file.Providers {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" || name == "custom" {
			return nil, fmt.Errorf("smtp providers file: invalid provider name %q", name)
		}
		if p.Host == "" || p.Port <= 0 || p.Port > 65535 {
			return nil, fmt.Errorf("smtp providers file: provider %q needs host and port", name)
		}
		p.Name = name
		out[name] = p
	}
	return out, nil
}

func withCredentials(providers map[string]SMTPProvider, getenv func(string) string) []SMTPProvider {
	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	names = pkgstrings.DedupeAndTrimLower(names)
	sort.Strings(names)

	out := make([]SMTPProvider, 0, len(names))
	for _, name := range names {
		p := providers[name]
		prefix := strings.ToUpper(name)
		p.Username = getenv(prefix + "_USER")
		p.Password = getenv(prefix + "_PASSWORD")
		out = append(out, p)
	}
	return out
}

// env reads typed values and keeps the first parse error.
type env struct {
	get func(string) string
	err error
}

func (e *env) str(key, def string) string {
	if v := strings.TrimSpace(e.get(key)); v != "" {
		return v
	}
	return def
}

func (e *env) duration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(e.get(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		e.fail(key, v)
		return def
	}
	return d
}

func (e *env) int(key string, def int) int {
	v := strings.TrimSpace(e.get(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		e.fail(key, v)
		return def
	}
	return n
}

func (e *env) int64(key string, def int64) int64 {
	v := strings.TrimSpace(e.get(key))
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		e.fail(key, v)
		return def
	}
	return n
}

func (e *env) bool(key string, def bool) bool {
	v := strings.TrimSpace(e.get(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		e.fail(key, v)
		return def
	}
	return b
}

func (e *env) fail(key, value string) {
	if e.err == nil {
		e.err = fmt.Errorf("config: invalid value %q for %s", value, key)
	}
}
