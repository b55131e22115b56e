package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cdn_manager/internal/config"
	"cdn_manager/internal/db"
	"cdn_manager/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRunEnv(t *testing.T) (*config.Config, *store.Store) {
	t.Helper()
	dir := t.TempDir()
	gdb, err := db.Open(filepath.Join(dir, "cdn-manager.db"))
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))
	t.Cleanup(func() { _ = db.Close(gdb) })

	cfg := &config.Config{
		DBPath:     filepath.Join(dir, "cdn-manager.db"),
		HTTPAddr:   ":8080",
		ExportPath: filepath.Join(dir, "cdn_export.json"),
	}
	return cfg, store.New(gdb)
}

func runCommand(t *testing.T, cfg *config.Config, s *store.Store, argv ...string) (string, error) {
	t.Helper()
	args, err := ParseArgs(argv)
	require.NoError(t, err)

	var out bytes.Buffer
	err = Run(args, cfg, s, &out)
	return out.String(), err
}

func TestRun_EndToEnd(t *testing.T) {
	cfg, s := newRunEnv(t)

	out, err := runCommand(t, cfg, s, "add", "-ttl", "7200", "shop", "https://origin.example.com", "https://cdn.example.com")
	require.NoError(t, err)
	assert.Contains(t, out, "Origin registered: [1] shop")

	// fresh origin: active, never purged
	o, err := s.GetOrigin(1)
	require.NoError(t, err)
	assert.Equal(t, "active", o.Status)
	assert.Equal(t, 7200, o.CacheTTL)
	assert.Nil(t, o.LastPurge)

	out, err = runCommand(t, cfg, s, "purge", "-type", "path", "-target", "/images/*", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Purge queued (event #1)")
	assert.Contains(t, out, "target=/images/*")

	o, err = s.GetOrigin(1)
	require.NoError(t, err)
	require.NotNil(t, o.LastPurge)

	out, err = runCommand(t, cfg, s, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "CDN Origins (1)")
	assert.Contains(t, out, "shop")

	out, err = runCommand(t, cfg, s, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "CDN Fleet Status")
}

func TestRun_ListEmpty(t *testing.T) {
	cfg, s := newRunEnv(t)

	out, err := runCommand(t, cfg, s, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No origins registered.")
}

func TestRun_RuleAgainstMissingOrigin(t *testing.T) {
	cfg, s := newRunEnv(t)

	_, err := runCommand(t, cfg, s, "rule", "9", "/static/*")
	assert.ErrorIs(t, err, store.ErrOriginNotFound)
}

func TestRun_ExportWritesFile(t *testing.T) {
	cfg, s := newRunEnv(t)

	_, err := runCommand(t, cfg, s, "add", "shop", "https://o", "https://c")
	require.NoError(t, err)

	out, err := runCommand(t, cfg, s, "export")
	require.NoError(t, err)
	assert.Contains(t, out, "Exported to: "+cfg.ExportPath)

	data, err := os.ReadFile(cfg.ExportPath)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "\"origins\""))
}

func TestRun_ExportCustomOutput(t *testing.T) {
	cfg, s := newRunEnv(t)
	custom := filepath.Join(t.TempDir(), "snapshot.json")

	_, err := runCommand(t, cfg, s, "export", "-output", custom)
	require.NoError(t, err)

	_, err = os.Stat(custom)
	assert.NoError(t, err)
}
