package config

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessEnvironmentVariables_Defaults(t *testing.T) {
	for _, key := range []string{"POSTGRES_ADDRESS", "HTTP_PORT", "ANALYSIS_WORKERS", "ANALYSIS_TIMEOUT", "HISTORY_MONTHS"} {
		t.Setenv(key, "")
	}

	env, err := ProcessEnvironmentVariables()

	require.NoError(t, err)
	assert.Equal(t, "localhost", env.PostgresAddress)
	assert.Equal(t, "9446", env.HTTPPort)
	assert.Equal(t, 4, env.AnalysisWorkers)
	assert.Equal(t, 10*time.Second, env.AnalysisTimeout)
	assert.Equal(t, 6, env.HistoryMonths)
}

func TestProcessEnvironmentVariables_Overrides(t *testing.T) {
	t.Setenv("POSTGRES_ADDRESS", "db")
	t.Setenv("POSTGRES_PORT", "5432")
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("ANALYSIS_WORKERS", "8")
	t.Setenv("ANALYSIS_TIMEOUT", "1500ms")
	t.Setenv("HISTORY_MONTHS", "12")

	env, err := ProcessEnvironmentVariables()

	require.NoError(t, err)
	assert.Equal(t, "db", env.PostgresAddress)
	assert.Equal(t, "8080", env.HTTPPort)
	assert.Equal(t, "debug", env.LogLevel)
	assert.Equal(t, 8, env.AnalysisWorkers)
	assert.Equal(t, 1500*time.Millisecond, env.AnalysisTimeout)
	assert.Equal(t, 12, env.HistoryMonths)
	assert.Equal(t, "postgres://postgres:testpassword@db:5432/postgres?sslmode=disable", env.PostgresURL())
}

func TestProcessEnvironmentVariables_Invalid(t *testing.T) {
	cases := map[string]string{
		"ANALYSIS_WORKERS": "many",
		"HISTORY_MONTHS":   "0",
		"ANALYSIS_TIMEOUT": "soon",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)

			_, err := ProcessEnvironmentVariables()
			assert.Error(t, err)
		})
	}
}

func TestPostgresURL_EscapesCredentials(t *testing.T) {
	c := &Config{
		PostgresAddress:  "db",
		PostgresPort:     "5432",
		PostgresUsername: "budget",
		PostgresPassword: "p@ss/w:rd?#",
		PostgresDB:       "budget",
	}

	parsed, err := url.Parse(c.PostgresURL())

	require.NoError(t, err)
	password, ok := parsed.User.Password()
	assert.True(t, ok)
	assert.Equal(t, "p@ss/w:rd?#", password)
	assert.Equal(t, "budget", parsed.User.Username())
	assert.Equal(t, "db:5432", parsed.Host)
	assert.Equal(t, "/budget", parsed.Path)
	assert.Equal(t, "disable", parsed.Query().Get("sslmode"))
}
