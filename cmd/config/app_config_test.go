package config

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"recipe-dashboard/domain"
	"recipe-dashboard/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func loadTestConfig(t *testing.T, env map[string]string) {
	t.Helper()
	for k, v := range env {
		t.Setenv(k, v)
	}
	require.NoError(t, utils.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")))
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		level string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"warn", zapcore.WarnLevel},
		{"", zapcore.InfoLevel},
		{"loud", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			l, err := NewLogger(tt.level)
			require.NoError(t, err)
			assert.True(t, l.Core().Enabled(tt.want))
			if tt.want > zapcore.DebugLevel {
				assert.False(t, l.Core().Enabled(tt.want-1))
			}
		})
	}
}

func TestLoadCatalogFromCSV(t *testing.T) {
	loadTestConfig(t, map[string]string{
		"CATALOG_SOURCE": "csv",
		"CATALOG_PATH":   "../../recipes.csv",
	})

	c, err := LoadCatalog(context.Background(), zap.NewNop())
	require.NoError(t, err)
	assert.False(t, c.IsEmpty())

	curry, ok := c.Lookup("Curry")
	require.True(t, ok)
	assert.Equal(t, 650.0, curry.Nutrients[domain.Calorie])
}

func TestLoadCatalogErrors(t *testing.T) {
	loadTestConfig(t, map[string]string{
		"CATALOG_SOURCE": "csv",
		"CATALOG_PATH":   filepath.Join(t.TempDir(), "nope.csv"),
	})
	_, err := LoadCatalog(context.Background(), zap.NewNop())
	assert.Error(t, err)

	loadTestConfig(t, map[string]string{"CATALOG_SOURCE": "ftp"})
	_, err = LoadCatalog(context.Background(), zap.NewNop())
	assert.ErrorContains(t, err, "unknown catalog source")
}

func TestNewApp(t *testing.T) {
	loadTestConfig(t, map[string]string{
		"JWT_SECRET":     "test-secret",
		"RATE_LIMIT_MAX": "1000",
	})

	c, err := domain.NewCatalog([]domain.Recipe{{Name: "Curry", Category: "Main"}})
	require.NoError(t, err)

	app, err := NewApp(c, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Shutdown() })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/recipes/Curry", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
