package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/particlefx/config"
	"github.com/lixenwraith/particlefx/core"
	"github.com/lixenwraith/particlefx/parameter"
	"github.com/lixenwraith/particlefx/preset"
	"github.com/lixenwraith/particlefx/session"
	"github.com/lixenwraith/particlefx/window"
)

var (
	presetFlag = flag.String("preset", "", "Preset: "+strings.Join(preset.Names(), ", "))
	configFlag = flag.String("config", "", "TOML config file")
	widthFlag  = flag.Int("width", parameter.WindowWidth, "Window width in pixels")
	heightFlag = flag.Int("height", parameter.WindowHeight, "Window height in pixels")
	scaleFlag  = flag.Float64("scale", parameter.WindowScale, "Pixels per surface unit")
	fpsFlag    = flag.Int("fps", 0, "Frame rate")
	audioFlag  = flag.Bool("audio", false, "Play the chiptune preset's music")
	hudFlag    = flag.Bool("hud", false, "Show the metrics overlay")
	debugFlag  = flag.Bool("debug", false, "Log to logs/particlefx.log")
)

func main() {
	flag.Parse()

	if logFile := core.SetupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	f, err := config.Load(*configFlag)
	if err == nil {
		config.ApplyEnv(&f)
		applyFlags(&f)
		err = f.Validate()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "particlefx-window: %v\n", err)
		os.Exit(2)
	}

	if err := run(f); err != nil {
		fmt.Fprintf(os.Stderr, "particlefx-window: %v\n", err)
		os.Exit(1)
	}
}

func applyFlags(f *config.File) {
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "preset":
			f.Preset = *presetFlag
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
	g := window.NewGame(*widthFlag, *heightFlag, *scaleFlag)

	sess := session.New(f, g, g.Clock(), 1)
	defer sess.Close()

	if err := sess.Switch(f.Preset); err != nil {
		return err
	}

	g.OnKey = func(k ebiten.Key) bool {
		r, ok := window.RuneForKey(k)
		if !ok {
			return false
		}
		quit, err := sess.Apply(session.ForRune(r))
		if err != nil {
			log.Printf("key %s: %v", k, err)
		}
		return quit
	}

	if err := window.Run(g, parameter.AppName, f.FrameRate); err != nil {
		return err
	}

	select {
	case err := <-sess.Errors():
		log.Printf("loop ended: %v", err)
	default:
	}
	return nil
}
