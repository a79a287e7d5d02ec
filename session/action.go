package session

import "github.com/lixenwraith/particlefx/preset"

// Kind identifies a user command
type Kind int

const (
	KindNone Kind = iota
	KindQuit
	KindPause
	KindHUD
	KindPreset
)

// Action is one user command decoded from host input
type Action struct {
	Kind   Kind
	Preset string
}

// ForRune maps the shared key bindings: q quits, space pauses, h toggles the HUD, 1-4 select a preset
func ForRune(r rune) Action {
	switch r {
	case 'q', 'Q':
		return Action{Kind: KindQuit}
	case ' ':
		return Action{Kind: KindPause}
	case 'h', 'H':
		return Action{Kind: KindHUD}
	}

	names := preset.Names()
	if i := int(r - '1'); i >= 0 && i < len(names) {
		return Action{Kind: KindPreset, Preset: names[i]}
	}
	return Action{}
}
