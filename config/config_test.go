package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadFromDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := LoadFrom(SearchPaths{HomeDir: t.TempDir(), WorkDir: t.TempDir()})
	require.NoError(t, err)
	require.True(t, cfg.UseEmoji)
	require.True(t, cfg.AskScope)
	require.True(t, cfg.AskBody)
	require.True(t, cfg.AskFooter)
	require.True(t, cfg.AskBreakingChange)
	require.Equal(t, 72, cfg.MaxSummaryLength)
	require.Empty(t, cfg.Scopes)
	require.Len(t, cfg.Types, 13)
	require.Equal(t, "feat", cfg.Types[0].Name)
	require.Equal(t, "#dcff3f", cfg.Color("primary"))
}

func TestLoadFromProjectOverridesGlobal(t *testing.T) {
	t.Parallel()

	home := t.TempDir()
	project := t.TempDir()
	nested := filepath.Join(project, "pkg", "deep")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	writeFile(t, filepath.Join(home, ".cocorc"), "use_emoji: false\naskScope: false\nscopes: [api, ui]\ntheme:\n  primary: '#ff0000'\n")
	writeFile(t, filepath.Join(project, "coco.yml"), "useEmoji: true\nmax_summary_length: 50\ntheme:\n  scope:bg: '#000fff'\n")

	cfg, err := LoadFrom(SearchPaths{HomeDir: home, WorkDir: nested})
	require.NoError(t, err)
	require.True(t, cfg.UseEmoji)
	require.False(t, cfg.AskScope)
	require.Equal(t, 50, cfg.MaxSummaryLength)
	require.Equal(t, []string{"api", "ui"}, cfg.Scopes)
	require.Equal(t, "#ff0000", cfg.Color("primary"))
	require.Equal(t, "#000fff", cfg.Color("scope:bg"))
	require.Equal(t, "#ffffff", cfg.Color("textarea:fg"))
}

func TestLoadFromReplacesTypes(t *testing.T) {
	t.Parallel()

	project := t.TempDir()
	writeFile(t, filepath.Join(project, "coco.yaml"), "types:\n  - name: hack\n    emoji: '🪓'\n    description: Quick hack\n")

	cfg, err := LoadFrom(SearchPaths{WorkDir: project})
	require.NoError(t, err)
	require.Equal(t, []CommitKind{{Name: "hack", Emoji: "🪓", Description: "Quick hack"}}, cfg.Types)
}

func TestLoadFromRejectsInvalidConfig(t *testing.T) {
	t.Parallel()

	project := t.TempDir()
	writeFile(t, filepath.Join(project, "coco.yml"), "max_summary_length: 0\n")

	_, err := LoadFrom(SearchPaths{WorkDir: project})
	var validationErr ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestGlobalPathFallsBackToExeDir(t *testing.T) {
	t.Parallel()

	home := t.TempDir()
	exe := t.TempDir()
	writeFile(t, filepath.Join(exe, "coco.yaml"), "ask_body: false\n")

	require.Equal(t, filepath.Join(exe, "coco.yaml"), GlobalPath(SearchPaths{HomeDir: home, ExeDir: exe}))

	writeFile(t, filepath.Join(home, "coco.yml"), "ask_body: true\n")
	require.Equal(t, filepath.Join(home, "coco.yml"), GlobalPath(SearchPaths{HomeDir: home, ExeDir: exe}))
}

func TestProjectPathWithoutFile(t *testing.T) {
	t.Parallel()

	require.Empty(t, ProjectPath(""))
}

func TestWriteRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := Default()
	cfg.AskFooter = false
	cfg.Scopes = []string{"core"}
	require.NoError(t, Write(filepath.Join(dir, "coco.yml"), cfg))

	loaded, err := LoadFrom(SearchPaths{WorkDir: dir})
	require.NoError(t, err)
	require.False(t, loaded.AskFooter)
	require.Equal(t, []string{"core"}, loaded.Scopes)
	require.Len(t, loaded.Types, len(cfg.Types))
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
