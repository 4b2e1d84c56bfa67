package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "0123456789abcdef0123456789abcdef"

func writeConfig(t *testing.T, env, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, env+".yaml"), []byte(body), 0o600))
	return dir
}

func TestLoad_FileAndDefaults(t *testing.T) {
	dir := writeConfig(t, Test, `
server:
  port: 9090
database:
  driver: sqlite
  path: ":memory:"
auth:
  jwtSecret: "`+secret+`"
  googleClientId: "client.apps.googleusercontent.com"
  tokenTTL: 30
`)

	cfg, err := Load(Test, dir)

	require.NoError(t, err)
	assert.Equal(t, Test, cfg.Environment)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 10*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, 200*time.Millisecond, cfg.Database.SlowThreshold)
	assert.Equal(t, 30*time.Minute, cfg.Auth.TokenTTL)
	assert.False(t, cfg.Events.Enabled)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	dir := writeConfig(t, Test, `
auth:
  jwtSecret: "`+secret+`"
  googleClientId: "file-client"
`)
	t.Setenv("FR_DB_HOST", "db.internal")
	t.Setenv("FR_GOOGLE_CLIENT_ID", "env-client")
	t.Setenv("FR_KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("FR_SERVER_PORT", "7070")

	cfg, err := Load(Test, dir)

	require.NoError(t, err)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "env-client", cfg.Auth.GoogleClientID)
	assert.True(t, cfg.Events.Enabled)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Events.Brokers)
	assert.Equal(t, 7070, cfg.Server.Port)
}

func TestLoad_Validation(t *testing.T) {
	testCases := []struct {
		name   string
		body   string
		expErr string
	}{
		{
			name:   "Short secret",
			body:   "auth:\n  jwtSecret: short\n  googleClientId: c\n",
			expErr: "jwtSecret",
		},
		{
			name:   "Missing client id",
			body:   "auth:\n  jwtSecret: \"" + secret + "\"\n",
			expErr: "googleClientId",
		},
		{
			name:   "Events without brokers",
			body:   "auth:\n  jwtSecret: \"" + secret + "\"\n  googleClientId: c\nevents:\n  enabled: true\n",
			expErr: "events.brokers",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(Test, writeConfig(t, Test, tc.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.expErr)
		})
	}
}

func TestGetEnvironment(t *testing.T) {
	t.Setenv("FR_ENV", "")
	assert.Equal(t, Development, getEnvironment())

	t.Setenv("FR_ENV", "PRODUCTION")
	assert.Equal(t, Production, getEnvironment())
}
