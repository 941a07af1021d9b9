package theme

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/ini.v1"
)

// source is one terminal whose config may carry a palette.
type source struct {
	name  string
	paths func(home string) []string
	parse func(path string) (Palette, bool)
}

// sources are tried in order; the first that yields a palette wins.
var sources = []source{
	{
		name: "omarchy",
		paths: func(home string) []string {
			return []string{filepath.Join(home, ".config", "omarchy", "current", "theme", "alacritty.toml")}
		},
		parse: parseAlacrittyTOML,
	},
	{
		name: "alacritty",
		paths: func(home string) []string {
			return []string{
				filepath.Join(home, ".config", "alacritty", "alacritty.toml"),
				filepath.Join(home, ".alacritty.toml"),
			}
		},
		parse: parseAlacrittyTOML,
	},
	{
		name: "kitty",
		paths: func(home string) []string {
			return []string{filepath.Join(home, ".config", "kitty", "kitty.conf")}
		},
		parse: parseKittyConf,
	},
	{
		name: "foot",
		paths: func(home string) []string {
			return []string{filepath.Join(home, ".config", "foot", "foot.ini")}
		},
		parse: parseFootINI,
	},
}

// WatchDirs returns the directories holding the config files Detect reads.
func WatchDirs(home string) []string {
	seen := make(map[string]bool)
	var dirs []string
	for _, src := range sources {
		for _, p := range src.paths(home) {
			d := filepath.Dir(p)
			if d == home || seen[d] {
				continue
			}
			seen[d] = true
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// Detect returns the palette of the first terminal config found, with
// SEASON_RENAMER_* environment overrides applied.
func Detect() Palette {
	home, err := os.UserHomeDir()
	if err != nil {
		return applyEnvOverrides(DefaultPalette())
	}
	return applyEnvOverrides(detectIn(home))
}

func detectIn(home string) Palette {
	for _, src := range sources {
		for _, path := range src.paths(home) {
			if p, ok := src.parse(path); ok {
				return p
			}
		}
	}
	return DefaultPalette()
}

// alacrittyConfig is the part of alacritty.toml we read.
type alacrittyConfig struct {
	Colors struct {
		Primary struct {
			Foreground string `toml:"foreground"`
		} `toml:"primary"`
		Normal struct {
			Red   string `toml:"red"`
			Green string `toml:"green"`
		} `toml:"normal"`
	} `toml:"colors"`
}

func parseAlacrittyTOML(path string) (Palette, bool) {
	var cfg alacrittyConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Palette{}, false
	}
	c := cfg.Colors
	return fromTerminal(c.Primary.Foreground, c.Normal.Green, c.Normal.Red)
}

func parseKittyConf(path string) (Palette, bool) {
	f, err := os.Open(path)
	if err != nil {
		return Palette{}, false
	}
	defer f.Close()

	values := make(map[string]string)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		values[fields[0]] = fields[1]
	}
	return fromTerminal(values["foreground"], values["color2"], values["color1"])
}

func parseFootINI(path string) (Palette, bool) {
	cfg, err := ini.Load(path)
	if err != nil {
		return Palette{}, false
	}
	colors := cfg.Section("colors")
	return fromTerminal(
		colors.Key("foreground").String(),
		colors.Key("regular2").String(),
		colors.Key("regular1").String(),
	)
}

// fromTerminal builds a palette from a terminal's foreground, green and
// red. The foreground is required; the others fall back to the defaults.
func fromTerminal(fg, green, red string) (Palette, bool) {
	if fg == "" {
		return Palette{}, false
	}
	p := DefaultPalette()
	p.FG = normalizeHex(fg)
	p.Muted = dimColor(p.FG, 0.5)
	if green != "" {
		p.Accent = normalizeHex(green)
	}
	if red != "" {
		p.Error = normalizeHex(red)
	}
	return p, true
}

func applyEnvOverrides(p Palette) Palette {
	overrides := map[string]*string{
		"SEASON_RENAMER_FG":     &p.FG,
		"SEASON_RENAMER_MUTED":  &p.Muted,
		"SEASON_RENAMER_ACCENT": &p.Accent,
		"SEASON_RENAMER_ERROR":  &p.Error,
	}
	for env, field := range overrides {
		if v := os.Getenv(env); v != "" {
			*field = normalizeHex(v)
		}
	}
	return p
}

var (
	hexFull  = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
	hexShort = regexp.MustCompile(`^#[0-9a-fA-F]{3}$`)
)

// normalizeHex turns "0xRRGGBB", "RRGGBB" and "#RGB" into "#RRGGBB".
func normalizeHex(color string) string {
	color = strings.TrimSpace(color)
	if strings.HasPrefix(color, "0x") || strings.HasPrefix(color, "0X") {
		color = "#" + color[2:]
	}
	if !strings.HasPrefix(color, "#") {
		color = "#" + color
	}

	switch {
	case hexFull.MatchString(color):
		return strings.ToLower(color)
	case hexShort.MatchString(color):
		r, g, b := color[1:2], color[2:3], color[3:4]
		return strings.ToLower("#" + r + r + g + g + b + b)
	}
	return color
}

// dimColor scales each channel of a hex colour by factor.
func dimColor(hex string, factor float64) string {
	hex = normalizeHex(hex)
	if len(hex) != 7 {
		return hex
	}
	var out [3]byte
	for i := range out {
		out[i] = byte(float64(hexToByte(hex[1+2*i:3+2*i])) * factor)
	}
	return "#" + byteToHex(out[0]) + byteToHex(out[1]) + byteToHex(out[2])
}

func hexToByte(s string) byte {
	var v byte
	for _, c := range strings.ToLower(s) {
		v *= 16
		switch {
		case c >= '0' && c <= '9':
			v += byte(c - '0')
		case c >= 'a' && c <= 'f':
			v += byte(c - 'a' + 10)
		}
	}
	return v
}

func byteToHex(b byte) string {
	const digits = "0123456789abcdef"
	return string([]byte{digits[b>>4], digits[b&0x0f]})
}
