package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/solitaire/config"
	"github.com/lixenwraith/solitaire/engine"
	"github.com/lixenwraith/solitaire/rules"
	"github.com/lixenwraith/solitaire/vmath"
)

func main() {
	cfg, err := config.Parse(os.Args[0], os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}

	logFile, logger := setupLogging(cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}

	policy, release, err := rules.New(cfg.Rules, cfg.RulesScript, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load rules: %v\n", err)
		os.Exit(1)
	}
	defer release()

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := vmath.NewFastRand(seed)
	layout := cfg.EngineLayout()

	table, err := engine.NewTable(engine.Options{
		Files:  cfg.TableauFiles,
		Layout: &layout,
		Policy: policy,
		Rand:   rng,
		Logger: logger,
		Strict: cfg.Strict,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create table: %v\n", err)
		os.Exit(1)
	}
	if err := table.NewGame(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to deal: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	// Panic recovery: ensure the terminal is restored even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			crash(screen, "SOLITAIRE CRASHED", r)
		}
	}()
	defer screen.Fini()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	logger.Info("session start", "seed", seed, "files", cfg.TableauFiles, "rules", policy.Name())
	NewGame(screen, table, rng, seed, cfg.FrameInterval, logger).Run()
}
