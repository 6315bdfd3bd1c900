package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/skiphire/internal/common"
	"github.com/Veraticus/skiphire/internal/gateway"
)

const oneSkip = `[{"id": 1, "size": 8, "hire_period_days": 14, "price_before_vat": 311, "vat": 20,
	"allowed_on_road": true, "allows_heavy_waste": true, "forbidden": false}]`

func skipServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/skips/by-location", r.URL.Path)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

// execute runs the root command with isolated home, config and database.
func execute(t *testing.T, dbPath string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SKIPHIRE_DATABASE_PATH", dbPath)

	var stdout, stderr bytes.Buffer
	root := newRootCmd(viper.New())
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestList_JSON(t *testing.T) {
	srv := skipServer(t, http.StatusOK, oneSkip)
	dbPath := filepath.Join(t.TempDir(), "skiphire.db")

	out, _, err := execute(t, dbPath, "list", "--api-url", srv.URL, "--format", "json")
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "373.20", decoded[0]["total_price"])
	assert.Equal(t, false, decoded[0]["disabled"])

	history, _, err := execute(t, dbPath, "history", "--limit", "5")
	require.NoError(t, err)
	assert.Contains(t, history, "loaded")
	assert.Contains(t, history, "NR32, Lowestoft")
}

func TestList_Table(t *testing.T) {
	srv := skipServer(t, http.StatusOK, oneSkip)

	out, _, err := execute(t, "", "list", "--api-url", srv.URL, "--postcode", "LE10", "--area", "Hinckley")
	require.NoError(t, err)
	assert.Contains(t, out, "8 yd")
	assert.Contains(t, out, "£373.20")
	assert.Contains(t, out, "Available")
}

func TestList_Failed(t *testing.T) {
	srv := skipServer(t, http.StatusInternalServerError, `{"error":"boom"}`)

	_, stderr, err := execute(t, "", "list", "--api-url", srv.URL)
	require.Error(t, err)
	assert.ErrorIs(t, err, errFetchFailed)
	assert.Equal(t, gateway.MsgLoadFailed, common.UserMessage(err))
	assert.Contains(t, stderr, gateway.MsgLoadFailed)
}

func TestList_RejectsUnknownFormat(t *testing.T) {
	_, _, err := execute(t, "", "list", "--format", "xml")
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}

func TestHistory_RequiresDatabase(t *testing.T) {
	_, _, err := execute(t, "", "history")
	assert.ErrorIs(t, err, common.ErrStoreDisabled)
}

func TestMigrate(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "skiphire.db")

	out, _, err := execute(t, dbPath, "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "Database migrations completed successfully!")

	out, _, err = execute(t, dbPath, "migrate", "--status")
	require.NoError(t, err)
	assert.Contains(t, out, "Current version: 2")
	assert.Contains(t, out, "Latest version: 2")
}

func TestInvalidConfig(t *testing.T) {
	_, _, err := execute(t, "", "version", "--log-level", "loud")
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "skiphire dev\n", out)
}
