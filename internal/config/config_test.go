package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// withArgs replaces the command line for a single Init call.
func withArgs(t *testing.T, args ...string) {
	t.Helper()
	oldArgs := os.Args
	oldFlags := flag.CommandLine
	os.Args = append([]string{oldArgs[0]}, args...)
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	t.Cleanup(func() {
		os.Args = oldArgs
		flag.CommandLine = oldFlags
	})
}

func TestNewConfig(t *testing.T) {
	config := NewConfig()

	// check default values
	require.Equal(t, ":3000", config.Addr)
	require.Equal(t, "public", config.PublicDir)
	require.Equal(t, 15, config.Timeout)
	require.Equal(t, 10000, config.WebhookTimeout)
	require.Equal(t, 10*time.Second, config.WebhookTimeoutDuration())
	require.Equal(t, "", config.CatalogFile)
	require.False(t, config.TLSEnabled())

	config.Addr = "changed"
	require.Equal(t, ":3000", NewConfig().Addr, "defaults must not be shared")
}

func TestInitWithEnvVariables(t *testing.T) {
	withArgs(t)
	t.Setenv("PORT", "9090")
	t.Setenv("PUBLIC_DIR", "/srv/public")
	t.Setenv("CATALOG_FILE", "/tmp/catalog.json")
	t.Setenv("WEBHOOK_TIMEOUT", "2500")
	t.Setenv("LOG_LEVEL", "debug")

	config := NewConfig()
	err := Init(config)

	require.NoError(t, err)
	require.Equal(t, ":9090", config.Addr)
	require.Equal(t, "/srv/public", config.PublicDir)
	require.Equal(t, "/tmp/catalog.json", config.CatalogFile)
	require.Equal(t, 2500, config.WebhookTimeout)
	require.Equal(t, "debug", config.LogLevel)
}

func TestInitServerAddressWinsOverPort(t *testing.T) {
	withArgs(t)
	t.Setenv("PORT", "9090")
	t.Setenv("SERVER_ADDRESS", "127.0.0.1:7070")

	config := NewConfig()
	require.NoError(t, Init(config))
	require.Equal(t, "127.0.0.1:7070", config.Addr)
}

func TestInitWithFlags(t *testing.T) {
	withArgs(t,
		"-a", "127.0.0.1:8081",
		"-p", "/var/www",
		"-f", "/tmp/catalog.json",
		"-w", "500",
		"-t", "30",
	)
	t.Setenv("PORT", "9090")

	config := NewConfig()
	err := Init(config)
	require.NoError(t, err)

	require.Equal(t, "127.0.0.1:8081", config.Addr)
	require.Equal(t, "/var/www", config.PublicDir)
	require.Equal(t, "/tmp/catalog.json", config.CatalogFile)
	require.Equal(t, 500, config.WebhookTimeout)
	require.Equal(t, 30, config.Timeout)
}

func TestInitWithConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"server_address":":4000","webhook_timeout_ms":3000,"tls_cert_file":"c.pem","tls_key_file":"k.pem"}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	withArgs(t, "-c", path)

	config := NewConfig()
	require.NoError(t, Init(config))
	require.Equal(t, ":4000", config.Addr)
	require.Equal(t, 3000, config.WebhookTimeout)
	require.True(t, config.TLSEnabled())
	require.Equal(t, path, config.ConfigPath)
}

func TestInitConfigFileErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		withArgs(t, "-c", filepath.Join(t.TempDir(), "absent.json"))
		require.ErrorIs(t, Init(NewConfig()), ErrReadConfig)
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))
		withArgs(t, "-c", path)
		require.ErrorIs(t, Init(NewConfig()), ErrParseConfig)
	})

	t.Run("non-positive webhook timeout", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"webhook_timeout_ms":0}`), 0o600))
		withArgs(t, "-c", path)
		require.ErrorIs(t, Init(NewConfig()), ErrInvalidConfig)
	})
}
