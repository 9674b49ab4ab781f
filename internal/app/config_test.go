package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, "http://127.0.0.1:3000/api", cfg.APIBaseURL)
	require.Equal(t, 30*time.Second, cfg.APITimeout)
	require.Equal(t, 500*time.Millisecond, cfg.SearchDebounce)
	require.False(t, cfg.IsProduction())
}

func TestLoadConfigReadsEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DMS_API_BASE_URL", "https://dms.rooherbals.lk/api")
	t.Setenv("DMS_SEARCH_DEBOUNCE", "750ms")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.True(t, cfg.IsProduction())
	require.Equal(t, "https://dms.rooherbals.lk/api", cfg.APIBaseURL)
	require.Equal(t, 750*time.Millisecond, cfg.SearchDebounce)
}

func TestLoadConfigClampsShortDebounce(t *testing.T) {
	t.Setenv("DMS_SEARCH_DEBOUNCE", "50ms")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, 500*time.Millisecond, cfg.SearchDebounce)
}

func TestLoadConfigRejectsNonPositiveRate(t *testing.T) {
	t.Setenv("DMS_REQUEST_RATE", "0")

	_, err := LoadConfig()
	require.Error(t, err)
}
