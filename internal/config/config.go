// Package config loads stackview settings from a TOML file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"stackview/internal/route"
	"stackview/internal/transition"
)

// Environment variables that override file values.
const (
	EnvMode       = "STACKVIEW_MODE"
	EnvPlatform   = "STACKVIEW_PLATFORM"
	EnvHeaderMode = "STACKVIEW_HEADER_MODE"
	EnvLogLevel   = "STACKVIEW_LOG_LEVEL"
)

// Screen describes one screen the stack can show.
type Screen struct {
	Name        string  `toml:"name"`
	Title       string  `toml:"title"`
	HeaderTitle *string `toml:"header_title"`
	Body        string  `toml:"body"`
	// Next is the screen pushed from this one, if any.
	Next string `toml:"next"`
}

// Options returns the screen's default route options.
func (s Screen) Options() route.Options {
	return route.Options{Title: s.Title, HeaderTitle: s.HeaderTitle}
}

// Config is the top-level configuration.
type Config struct {
	Mode       string   `toml:"mode"`
	Platform   string   `toml:"platform"`
	HeaderMode string   `toml:"header_mode"`
	LogLevel   string   `toml:"log_level"`
	LogPath    string   `toml:"log_path"`
	Initial    []string `toml:"initial"`
	Screens    []Screen `toml:"screens"`
}

// Default returns a small three-screen demo stack.
func Default() Config {
	return Config{
		Platform: string(transition.PlatformIOS),
		LogLevel: "info",
		Initial:  []string{"Home"},
		Screens: []Screen{
			{Name: "Home", Title: "Home", Body: "Press enter to open the inbox.", Next: "Inbox"},
			{Name: "Inbox", Title: "Inbox", Body: "Press enter to read a message, esc to go back.", Next: "Message"},
			{Name: "Message", Title: "Message", HeaderTitle: route.HeaderTitle("Re: stack transitions"), Body: "Esc closes this card after its exit transition."},
		},
	}
}

// Load reads path (if non-empty) over the defaults, then applies env overrides.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		var fileCfg Config
		md, err := toml.DecodeFile(path, &fileCfg)
		if err != nil {
			return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Config{}, fmt.Errorf("config: unknown keys in %s: %v", path, undecoded)
		}
		cfg = merge(cfg, fileCfg)
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func merge(base, over Config) Config {
	if over.Mode != "" {
		base.Mode = over.Mode
	}
	if over.Platform != "" {
		base.Platform = over.Platform
	}
	if over.HeaderMode != "" {
		base.HeaderMode = over.HeaderMode
	}
	if over.LogLevel != "" {
		base.LogLevel = over.LogLevel
	}
	if over.LogPath != "" {
		base.LogPath = over.LogPath
	}
	if len(over.Screens) > 0 {
		base.Screens = over.Screens
		base.Initial = nil
	}
	if len(over.Initial) > 0 {
		base.Initial = over.Initial
	}
	return base
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvMode); v != "" {
		c.Mode = v
	}
	if v := os.Getenv(EnvPlatform); v != "" {
		c.Platform = v
	}
	if v := os.Getenv(EnvHeaderMode); v != "" {
		c.HeaderMode = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
}

// Validate checks header mode and screen references.
func (c Config) Validate() error {
	if _, err := transition.ParseHeaderMode(c.HeaderMode); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if len(c.Screens) == 0 {
		return errors.New("config: no screens defined")
	}
	names := make(map[string]bool, len(c.Screens))
	for _, s := range c.Screens {
		if s.Name == "" {
			return errors.New("config: screen with empty name")
		}
		if names[s.Name] {
			return fmt.Errorf("config: duplicate screen %q", s.Name)
		}
		names[s.Name] = true
	}
	for _, s := range c.Screens {
		if s.Next != "" && !names[s.Next] {
			return fmt.Errorf("config: screen %q links to unknown screen %q", s.Name, s.Next)
		}
	}
	for _, n := range c.Initial {
		if !names[n] {
			return fmt.Errorf("config: initial route names unknown screen %q", n)
		}
	}
	return nil
}

// Transition returns the transition config and platform for this Config.
// Call Validate first; an invalid header mode is treated as unset here.
func (c Config) Transition() (transition.Config, transition.Platform) {
	hm, _ := transition.ParseHeaderMode(c.HeaderMode)
	return transition.Config{
		Mode:       transition.ParseMode(c.Mode),
		HeaderMode: hm,
	}, transition.ParsePlatform(c.Platform)
}

// ScreenNames returns the configured screen names in order.
func (c Config) ScreenNames() []string {
	names := make([]string, len(c.Screens))
	for i, s := range c.Screens {
		names[i] = s.Name
	}
	return names
}
