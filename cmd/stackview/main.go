package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"stackview/internal/config"
	"stackview/internal/logging"
	"stackview/internal/route"
	"stackview/internal/stack"
	"stackview/internal/trace"
	"stackview/internal/ui"
)

// flags holds command-line overrides. Empty values leave the config alone.
type flags struct {
	configPath string
	mode       string
	platform   string
	headerMode string
	logLevel   string
	logPath    string
}

func parseFlags() flags {
	var f flags

	flag.StringVar(&f.configPath, "config", "", "path to a TOML config file")
	flag.StringVar(&f.mode, "mode", "", "presentation mode: card or modal")
	flag.StringVar(&f.platform, "platform", "", "host platform: ios or android")
	flag.StringVar(&f.headerMode, "header-mode", "", "header mode override: float, screen or none")
	flag.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn or error")
	flag.StringVar(&f.logPath, "log-path", "", "log file path (default "+logging.DefaultPath+")")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: stackview [flags]\n\n")
		fmt.Fprintf(os.Stderr, "stackview runs a navigable stack of screens in the terminal.\n")
		fmt.Fprintf(os.Stderr, "enter opens the next screen, esc closes the top one.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()
	return f
}

func (f flags) apply(cfg *config.Config) {
	if f.mode != "" {
		cfg.Mode = f.mode
	}
	if f.platform != "" {
		cfg.Platform = f.platform
	}
	if f.headerMode != "" {
		cfg.HeaderMode = f.headerMode
	}
	if f.logLevel != "" {
		cfg.LogLevel = f.logLevel
	}
	if f.logPath != "" {
		cfg.LogPath = f.logPath
	}
}

func run(f flags) error {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	f.apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.Open(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logger.Close()

	ctx := context.Background()
	tp, err := trace.NewOTLPProvider(ctx)
	if err != nil {
		return fmt.Errorf("tracing: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			logger.Warn("trace shutdown", "error", err)
		}
	}()

	reg := route.NewRegistry(cfg.ScreenNames(), logger.Logger)
	screens := make(ui.Screens, len(cfg.Screens))
	for _, s := range cfg.Screens {
		screens[s.Name] = ui.RouteConfig{Screen: ui.TextScreen(s.Body, s.Next), Options: s.Options()}
	}
	for _, name := range cfg.Initial {
		if _, err := reg.Push(name, nil); err != nil {
			return fmt.Errorf("initial route %q: %w", name, err)
		}
	}

	tc, platform := cfg.Transition()
	sv := ui.NewStackView(reg, screens, tc, platform,
		ui.WithLogger(logger.Logger),
		ui.WithScreenProps(ui.ScreenProps{"platform": string(platform)}),
		ui.WithMachineOptions(stack.WithObserver(trace.NewObserver(ctx, tp.Tracer()))),
	)
	defer sv.Close()

	p := tea.NewProgram(ui.NewAppModel(sv).AsTeaModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func main() {
	f := parseFlags()
	if err := run(f); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
