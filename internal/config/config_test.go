package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Veraticus/skiphire/internal/common"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	return v
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(newViper())
	require.NoError(t, err)

	assert.Equal(t, DefaultAPIBaseURL, cfg.APIBaseURL)
	assert.Equal(t, 30*time.Second, cfg.APITimeout)
	assert.Equal(t, "NR32", cfg.Location.Postcode)
	assert.Equal(t, "Lowestoft", cfg.Location.Area)
	assert.Equal(t, "default", cfg.Theme)
	assert.Equal(t, 24, cfg.ScrollStep)
	assert.Equal(t, 1, cfg.EdgeSlack)
	assert.True(t, cfg.StorageEnabled())
	assert.True(t, filepath.IsAbs(cfg.DatabasePath))
}

func TestLoad_Overrides(t *testing.T) {
	v := newViper()
	v.Set(KeyPostcode, "LE10")
	v.Set(KeyArea, "Hinckley")
	v.Set(KeyAPITimeout, "5s")
	v.Set(KeyDatabasePath, "")

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "LE10", cfg.Location.Postcode)
	assert.Equal(t, "Hinckley", cfg.Location.Area)
	assert.Equal(t, 5*time.Second, cfg.APITimeout)
	assert.False(t, cfg.StorageEnabled())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		value   any
		wantErr error
		name    string
		key     string
	}{
		{name: "empty base url", key: KeyAPIBaseURL, value: "", wantErr: common.ErrMissingConfig},
		{name: "relative base url", key: KeyAPIBaseURL, value: "/api", wantErr: common.ErrInvalidConfig},
		{name: "zero timeout", key: KeyAPITimeout, value: "0s", wantErr: common.ErrInvalidConfig},
		{name: "missing postcode", key: KeyPostcode, value: "", wantErr: common.ErrMissingConfig},
		{name: "missing area", key: KeyArea, value: "", wantErr: common.ErrMissingConfig},
		{name: "zero scroll step", key: KeyStepperStep, value: 0, wantErr: common.ErrInvalidConfig},
		{name: "negative slack", key: KeyStepperEdgeSlack, value: -1, wantErr: common.ErrInvalidConfig},
		{name: "unknown log level", key: KeyLogLevel, value: "loud", wantErr: common.ErrInvalidConfig},
		{name: "unknown log format", key: KeyLogFormat, value: "xml", wantErr: common.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newViper()
			v.Set(tt.key, tt.value)

			cfg, err := Load(v)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, cfg)
		})
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("SKIPHIRE_TEST_DIR", "/tmp/skips")

	tests := []struct {
		input string
		want  string
	}{
		{input: "", want: ""},
		{input: "~", want: home},
		{input: "~/data/skips.db", want: filepath.Join(home, "data/skips.db")},
		{input: "$SKIPHIRE_TEST_DIR/log.txt", want: "/tmp/skips/log.txt"},
		{input: "/var/lib/skips.db", want: "/var/lib/skips.db"},
		{input: "~other/file", want: "~other/file"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.input))
		})
	}
}
