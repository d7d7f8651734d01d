package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/folio/config"
	"github.com/lixenwraith/folio/content"
	"github.com/lixenwraith/folio/core"
	"github.com/lixenwraith/folio/engine"
	"github.com/lixenwraith/folio/input"
)

var (
	configFlag  = flag.String("config", "", "Path to a TOML config file")
	fpsFlag     = flag.Int("fps", config.DefaultFPS, "Frame rate")
	seedFlag    = flag.Int64("seed", 0, "Random seed; 0 seeds from the clock")
	debugFlag   = flag.Bool("debug", false, "Write logs to logs/folio.log")
	audioFlag   = flag.Bool("audio", false, "Start with the ambient drone on")
	charsetFlag = flag.String("charset", "ascii", "Glyph set: ascii, blocks, braille")
	contentFlag = flag.String("content", "", "Path to a TOML content document")
	keymapFlag  = flag.String("keymap", "", "Path to a TOML keymap override")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the main goroutine crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "folio: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	doc, err := content.Load(cfg.Content)
	if err != nil {
		return err
	}

	var keys *input.KeyTable
	if cfg.Keymap != "" {
		data, err := os.ReadFile(cfg.Keymap)
		if err != nil {
			return fmt.Errorf("read keymap: %w", err)
		}
		override, err := input.LoadKeyConfig(data)
		if err != nil {
			return fmt.Errorf("keymap %s: %w", cfg.Keymap, err)
		}
		keys = input.MergeKeyTable(input.DefaultKeyTable(), override)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.RegisterScreen(screen)

	e, err := engine.NewEngine(screen, engine.Options{Config: cfg, Document: doc, Keys: keys})
	if err != nil {
		screen.Fini()
		core.RegisterScreen(nil)
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("folio starting: fps=%d seed=%d charset=%s audio=%v", cfg.FPS, cfg.Seed, cfg.Display.Charset, cfg.Audio.Enabled)
	return e.Run(ctx)
}

// loadConfig layers defaults, the config file, FOLIO_* variables and the
// flags given explicitly on the command line
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return nil, err
	}
	if err := config.ParseEnv(cfg); err != nil {
		return nil, err
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "fps":
			cfg.FPS = *fpsFlag
		case "seed":
			cfg.Seed = *seedFlag
		case "debug":
			cfg.Debug = *debugFlag
		case "audio":
			cfg.Audio.Enabled = *audioFlag
		case "charset":
			cfg.Display.Charset = *charsetFlag
		case "content":
			cfg.Content = *contentFlag
		case "keymap":
			cfg.Keymap = *keymapFlag
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
