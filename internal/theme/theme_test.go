package theme

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestNormalizeHex(t *testing.T) {
	tests := map[string]string{
		"#A0B1C2":  "#a0b1c2",
		"a0b1c2":   "#a0b1c2",
		"0xA0B1C2": "#a0b1c2",
		"#abc":     "#aabbcc",
		" #fff ":   "#ffffff",
		"red":      "#red",
	}
	for in, want := range tests {
		assert.Equal(t, want, normalizeHex(in), in)
	}
}

func TestDimColor(t *testing.T) {
	assert.Equal(t, "#7f7f7f", dimColor("#ffffff", 0.5))
	assert.Equal(t, "#000000", dimColor("#123456", 0))
	assert.Equal(t, "#5d556e", dimColor("#bad", 0.5))
}

func TestDetectAlacritty(t *testing.T) {
	home := t.TempDir()
	writeFile(t, filepath.Join(home, ".config", "alacritty", "alacritty.toml"), `
[colors.primary]
foreground = "0xffffff"

[colors.normal]
green = "#00ff00"
`)

	p := detectIn(home)
	assert.Equal(t, "#ffffff", p.FG)
	assert.Equal(t, "#7f7f7f", p.Muted)
	assert.Equal(t, "#00ff00", p.Accent)
	assert.Equal(t, DefaultPalette().Error, p.Error)
}

func TestDetectOmarchyWinsOverAlacritty(t *testing.T) {
	home := t.TempDir()
	writeFile(t, filepath.Join(home, ".config", "omarchy", "current", "theme", "alacritty.toml"),
		"[colors.primary]\nforeground = \"#111111\"\n")
	writeFile(t, filepath.Join(home, ".alacritty.toml"),
		"[colors.primary]\nforeground = \"#222222\"\n")

	assert.Equal(t, "#111111", detectIn(home).FG)
}

func TestDetectKitty(t *testing.T) {
	home := t.TempDir()
	writeFile(t, filepath.Join(home, ".config", "kitty", "kitty.conf"), `
# theme
foreground #c0c0c0
color1     #ff0000
color2     #00aa00
`)

	p := detectIn(home)
	assert.Equal(t, "#c0c0c0", p.FG)
	assert.Equal(t, "#00aa00", p.Accent)
	assert.Equal(t, "#ff0000", p.Error)
}

func TestDetectFoot(t *testing.T) {
	home := t.TempDir()
	writeFile(t, filepath.Join(home, ".config", "foot", "foot.ini"), `
[colors]
foreground=dcdccc
regular1=cc9393
`)

	p := detectIn(home)
	assert.Equal(t, "#dcdccc", p.FG)
	assert.Equal(t, "#cc9393", p.Error)
	assert.Equal(t, DefaultPalette().Accent, p.Accent)
}

func TestDetectFallsBackToDefault(t *testing.T) {
	assert.Equal(t, DefaultPalette(), detectIn(t.TempDir()))
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SEASON_RENAMER_ACCENT", "123456")
	p := applyEnvOverrides(DefaultPalette())
	assert.Equal(t, "#123456", p.Accent)
	assert.Equal(t, DefaultPalette().FG, p.FG)
}

func TestWatchDirs(t *testing.T) {
	dirs := WatchDirs("/home/u")
	assert.Equal(t, []string{
		"/home/u/.config/omarchy/current/theme",
		"/home/u/.config/alacritty",
		"/home/u/.config/kitty",
		"/home/u/.config/foot",
	}, dirs)
}

func TestLoadWithoutDetection(t *testing.T) {
	Load(false)
	assert.Equal(t, DefaultPalette(), CurrentPalette())
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	changed := make(chan struct{}, 1)

	w, err := newWatcher([]string{dir}, 10*time.Millisecond, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	require.NoError(t, err)
	defer w.Stop()

	writeFile(t, filepath.Join(dir, "alacritty.toml"), "[colors.primary]\n")

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not fire")
	}
}
