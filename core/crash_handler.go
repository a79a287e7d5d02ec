// Package core holds process-wide crash handling and logging shared by the binaries.
package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
)

// Finalizer restores the host display before the process dies
type Finalizer interface {
	Fini()
}

var (
	crashMu       sync.Mutex
	crashTerminal Finalizer
)

// SetCrashTerminal registers the display to restore on panic; nil clears it
func SetCrashTerminal(f Finalizer) {
	crashMu.Lock()
	crashTerminal = f
	crashMu.Unlock()
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	f := crashTerminal
	crashMu.Unlock()

	// Terminal cleanup if available
	if f != nil {
		f.Fini()
	}

	fmt.Fprintf(os.Stderr, "\nCRASH DETECTED: %v\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
