package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_DefaultsApplied(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "localhost"
dbname = "reservations"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.False(t, cfg.Metrics.Enabled)

	assert.Equal(t, 1100, cfg.Booking.TaxRateBasisPoints)
	assert.False(t, cfg.Booking.AllowEarlyCheckIn)
	assert.False(t, cfg.Booking.PendingBlocksAvailability)
	assert.Equal(t, 0, cfg.Booking.CancellationCutoffHours)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db.internal"
port = 5433
user = "hms"
password = "secret"
dbname = "reservations"
sslmode = "require"

[booking]
tax_rate_basis_points = 2000
allow_early_check_in = true
pending_blocks_availability = true
cancellation_cutoff_hours = 24
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 2000, cfg.Booking.TaxRateBasisPoints)
	assert.True(t, cfg.Booking.AllowEarlyCheckIn)
	assert.True(t, cfg.Booking.PendingBlocksAvailability)
	assert.Equal(t, 24, cfg.Booking.CancellationCutoffHours)

	assert.Equal(t,
		"host=db.internal port=5433 user=hms password=secret dbname=reservations sslmode=require",
		cfg.Database.DSN())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, ErrReadConfig)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "port out of range",
			content: `
[server]
http_port = 70000

[database]
host = "localhost"
dbname = "reservations"
`,
		},
		{
			name: "missing dbname",
			content: `
[database]
host = "localhost"
`,
		},
		{
			name: "negative tax rate",
			content: `
[database]
host = "localhost"
dbname = "reservations"

[booking]
tax_rate_basis_points = -1
`,
		},
		{
			name: "tax rate at divisor",
			content: `
[database]
host = "localhost"
dbname = "reservations"

[booking]
tax_rate_basis_points = 10000
`,
		},
		{
			name: "negative cancellation cutoff",
			content: `
[database]
host = "localhost"
dbname = "reservations"

[booking]
cancellation_cutoff_hours = -5
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}
