package core

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/lixenwraith/particlefx/parameter"
)

// SetupLogging routes the standard logger to logs/particlefx.log when debug is set
// and discards it otherwise; the terminal owns stdout and stderr while running
// The returned file is nil when logging is off
func SetupLogging(debug bool) *os.File {
	return setupLogging(debug, parameter.LogDir)
}

func setupLogging(debug bool, dir string) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	path := filepath.Join(dir, parameter.LogFile)
	if info, err := os.Stat(path); err == nil && info.Size() > parameter.LogMaxBytes {
		rotated := filepath.Join(dir, fmt.Sprintf("%s-%s.log", parameter.AppName, time.Now().Format("20060102-150405")))
		os.Rename(path, rotated)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)
	log.Printf("%s: logging started", parameter.AppName)
	return f
}
