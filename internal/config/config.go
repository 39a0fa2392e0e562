// Package config is used to configure the application settings.
package config

import (
	"encoding/json"
	"errors"
	"flag"
	"os"
	"strconv"
	"time"
)

// Config - application configuration structure.
type Config struct {
	// Addr: address on which the server will run (e.g., ":3000").
	Addr string `json:"server_address"`
	// PublicDir: directory with the static frontend.
	PublicDir string `json:"public_dir"`
	// CatalogFile: optional JSON file overriding the built-in users and Pokemon.
	CatalogFile string `json:"catalog_file"`
	// LogLevel: zap level name (debug, info, warn, error).
	LogLevel string `json:"log_level"`
	// TLSCertFile and TLSKeyFile enable HTTPS when both are set.
	TLSCertFile string `json:"tls_cert_file"`
	TLSKeyFile  string `json:"tls_key_file"`
	// CookieHashKey: key used to sign the AuthToken cookie.
	CookieHashKey string `json:"cookie_hash_key"`
	// ConfigPath: path to configuration file.
	ConfigPath string `json:"-"`
	// Timeout: request processing timeout in seconds.
	Timeout int `json:"timeout"`
	// WebhookTimeout: bound on one outbound webhook delivery, in milliseconds.
	WebhookTimeout int `json:"webhook_timeout_ms"`
}

var cfgDefault = Config{
	Addr:           ":3000",
	PublicDir:      "public",
	CatalogFile:    "",
	LogLevel:       "info",
	CookieHashKey:  "very-very-very-very-secret-key32",
	Timeout:        15,
	WebhookTimeout: 10000,
}

// NewConfig creates and returns a new instance of the Config structure with predefined values.
func NewConfig() *Config {
	c := cfgDefault
	return &c
}

// ErrReadConfig - error reading json config.
var ErrReadConfig = errors.New("reading json config")

// ErrParseConfig - error parsing json config.
var ErrParseConfig = errors.New("parse json config")

// ErrInvalidConfig - a setting has an unusable value.
var ErrInvalidConfig = errors.New("invalid config")

// WebhookTimeoutDuration returns WebhookTimeout as a time.Duration.
func (c *Config) WebhookTimeoutDuration() time.Duration {
	return time.Duration(c.WebhookTimeout) * time.Millisecond
}

// TLSEnabled reports whether both certificate and key are configured.
func (c *Config) TLSEnabled() bool {
	return c.TLSCertFile != "" && c.TLSKeyFile != ""
}

// Init initializes the application configuration.
// Precedence: defaults < JSON file < environment < command-line flags.
func Init(c *Config) error {
	var flagCfg Config
	flag.StringVar(&flagCfg.Addr, "a", "", "HTTP-server startup address")
	flag.StringVar(&flagCfg.PublicDir, "p", "", "directory with static files")
	flag.StringVar(&flagCfg.CatalogFile, "f", "", "path to a JSON catalog of users and Pokemon")
	flag.StringVar(&flagCfg.LogLevel, "l", "", "log level")
	flag.StringVar(&flagCfg.ConfigPath, "c", "", "path to config file (json)")
	flag.IntVar(&flagCfg.Timeout, "t", 0, "request timeout in seconds")
	flag.IntVar(&flagCfg.WebhookTimeout, "w", 0, "webhook delivery timeout in milliseconds")

	flag.Parse()

	if val, exist := os.LookupEnv("CONFIG"); exist && flagCfg.ConfigPath == "" {
		flagCfg.ConfigPath = val
	}

	if flagCfg.ConfigPath != "" {
		file, err := os.ReadFile(flagCfg.ConfigPath)
		if err != nil {
			return ErrReadConfig
		}
		if err := json.Unmarshal(file, c); err != nil {
			return ErrParseConfig
		}
		c.ConfigPath = flagCfg.ConfigPath
	}

	applyEnv(c)

	// override
	if flagCfg.Addr != "" {
		c.Addr = flagCfg.Addr
	}
	if flagCfg.PublicDir != "" {
		c.PublicDir = flagCfg.PublicDir
	}
	if flagCfg.CatalogFile != "" {
		c.CatalogFile = flagCfg.CatalogFile
	}
	if flagCfg.LogLevel != "" {
		c.LogLevel = flagCfg.LogLevel
	}
	if flagCfg.Timeout > 0 {
		c.Timeout = flagCfg.Timeout
	}
	if flagCfg.WebhookTimeout > 0 {
		c.WebhookTimeout = flagCfg.WebhookTimeout
	}

	if c.Timeout <= 0 || c.WebhookTimeout <= 0 {
		return ErrInvalidConfig
	}

	return nil
}

func applyEnv(c *Config) {
	if val, exist := os.LookupEnv("PORT"); exist && val != "" {
		c.Addr = ":" + val
	}
	if val, exist := os.LookupEnv("SERVER_ADDRESS"); exist {
		c.Addr = val
	}
	if val, exist := os.LookupEnv("PUBLIC_DIR"); exist {
		c.PublicDir = val
	}
	if val, exist := os.LookupEnv("CATALOG_FILE"); exist {
		c.CatalogFile = val
	}
	if val, exist := os.LookupEnv("LOG_LEVEL"); exist {
		c.LogLevel = val
	}
	if val, exist := os.LookupEnv("TLS_CERT_FILE"); exist {
		c.TLSCertFile = val
	}
	if val, exist := os.LookupEnv("TLS_KEY_FILE"); exist {
		c.TLSKeyFile = val
	}
	if val, exist := os.LookupEnv("COOKIE_HASH_KEY"); exist {
		c.CookieHashKey = val
	}
	if val, exist := os.LookupEnv("WEBHOOK_TIMEOUT"); exist {
		ms, err := strconv.Atoi(val)
		if err == nil {
			c.WebhookTimeout = ms
		}
	}
}
