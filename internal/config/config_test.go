package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_FillsUnsetFields(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	require.Equal(t, "default", cfg.Layout)
	require.Equal(t, "views", cfg.ViewsRoot)
	require.Equal(t, ".html", cfg.Extension)
	require.Equal(t, "dist", cfg.Dest)
	require.Equal(t, "materials", cfg.Keys.Materials)
	require.Equal(t, "views", cfg.Keys.Views)
	require.Equal(t, "docs", cfg.Keys.Docs)
	require.NotEmpty(t, cfg.Views)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{Extension: ".htm", Keys: Keys{Views: "pages"}}
	cfg.ApplyDefaults()

	require.Equal(t, ".htm", cfg.Extension)
	require.Equal(t, "pages", cfg.Keys.Views)
}

func TestValidate_ExtensionMustStartWithDot(t *testing.T) {
	cfg := Default()
	cfg.Extension = "html"
	require.Error(t, cfg.Validate())
}

func TestValidate_AutoModuleRequiresWrapper(t *testing.T) {
	cfg := Default()
	cfg.AutoModule = "src/views/docs/**/*"
	require.Error(t, cfg.Validate())

	cfg.ModuleWrapper = "src/wrapper.html"
	require.NoError(t, cfg.Validate())
}

func TestLoad_MissingFileIsAnError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "not found")
}

func TestLoad_ExpandsEnvironmentVariables(t *testing.T) {
	t.Setenv("ASSEMBLE_TEST_DEST", "out")

	path := filepath.Join(t.TempDir(), "assemble.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dest: ${ASSEMBLE_TEST_DEST}\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "out", cfg.Dest)
}

func TestLoad_MalformedYAMLIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assemble.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dest: [unclosed\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestSlogLevel_NormalizesKnownLevels(t *testing.T) {
	lvl, err := LoggingConfig{Level: "DEBUG"}.SlogLevel()
	require.NoError(t, err)
	require.Equal(t, slog.LevelDebug, lvl)

	_, err = LoggingConfig{Level: "loud"}.SlogLevel()
	require.Error(t, err)
}

func TestInit_RefusesToOverwriteWithoutForce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assemble.yaml")
	require.NoError(t, Init(path, false))
	require.Error(t, Init(path, false))
	require.NoError(t, Init(path, true))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "dist", cfg.Dest)
}
