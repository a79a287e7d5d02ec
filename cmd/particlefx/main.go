package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/particlefx/config"
	"github.com/lixenwraith/particlefx/core"
	"github.com/lixenwraith/particlefx/engine"
	"github.com/lixenwraith/particlefx/preset"
	"github.com/lixenwraith/particlefx/render"
	"github.com/lixenwraith/particlefx/session"
	"github.com/lixenwraith/particlefx/terminal"
)

var (
	presetFlag  = flag.String("preset", "", "Preset: "+strings.Join(preset.Names(), ", "))
	configFlag  = flag.String("config", "", "TOML config file")
	writeFlag   = flag.String("write-config", "", "Write the effective config to this path and exit")
	paletteFlag = flag.String("palette", "", "Palette theme name")
	countFlag   = flag.Int("count", 0, "Particle count override")
	fpsFlag     = flag.Int("fps", 0, "Frame rate")
	audioFlag   = flag.Bool("audio", false, "Play the chiptune preset's music")
	hudFlag     = flag.Bool("hud", false, "Show the metrics overlay")
	debugFlag   = flag.Bool("debug", false, "Log to logs/particlefx.log")
)

var errNotTerminal = errors.New("stdout is not a terminal, use particlefx-window")

func main() {
	// Panic Recovery: restore the terminal before printing the stack
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if logFile := core.SetupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	f, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "particlefx: %v\n", err)
		os.Exit(2)
	}

	if *writeFlag != "" {
		if err := config.Save(*writeFlag, f); err != nil {
			fmt.Fprintf(os.Stderr, "particlefx: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(f); err != nil {
		fmt.Fprintf(os.Stderr, "particlefx: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig layers defaults, the config file, environment and explicitly set flags
func loadConfig() (config.File, error) {
	f, err := config.Load(*configFlag)
	if err != nil {
		return f, err
	}
	config.ApplyEnv(&f)
	applyFlags(&f)
	return f, f.Validate()
}

func applyFlags(f *config.File) {
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "preset":
			f.Preset = *presetFlag
		case "palette":
			f.Palette, f.Colors = *paletteFlag, nil
		case "count":
			f.Count = *countFlag
		case "fps":
			f.FrameRate = *fpsFlag
		case "audio":
			f.Audio = *audioFlag
		case "hud":
			f.HUD = *hudFlag
		}
	})
}

func run(f config.File) error {
	if !terminal.Available(os.Stdout.Fd()) {
		return errNotTerminal
	}

	host, err := terminal.Open()
	if err != nil {
		return err
	}
	defer host.Close()

	sched := engine.NewTickerScheduler(f.FrameRate, nil)
	sched.Start()
	defer sched.Stop()

	sess := session.New(f, host, sched, 1/render.CellAspect)
	defer sess.Close()

	if err := sess.Switch(f.Preset); err != nil {
		return err
	}
	host.Start()

	for {
		select {
		case ev := <-host.Keys():
			quit, err := sess.Apply(actionForKey(ev))
			if err != nil {
				log.Printf("key %s: %v", ev.Name(), err)
			}
			if quit {
				return nil
			}
		case err := <-sess.Errors():
			return err
		}
	}
}

func actionForKey(ev *tcell.EventKey) session.Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return session.Action{Kind: session.KindQuit}
	case tcell.KeyRune:
		return session.ForRune(ev.Rune())
	}
	return session.Action{}
}
