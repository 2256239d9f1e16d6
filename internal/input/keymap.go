package input

import (
	"fmt"
	"strings"

	"github.com/dshills/gridstorm/internal/renderer/backend"
)

// Bindings maps key events to actions.
type Bindings struct {
	byKey  map[backend.Key]Action
	byRune map[rune]Action
}

// DefaultBindings returns the built-in key bindings.
func DefaultBindings() *Bindings {
	b := &Bindings{
		byKey:  make(map[backend.Key]Action),
		byRune: make(map[rune]Action),
	}

	b.byKey[backend.KeyEscape] = ActionQuit
	b.byKey[backend.KeyCtrlC] = ActionQuit
	b.byKey[backend.KeyCtrlZ] = ActionUndo
	b.byKey[backend.KeyCtrlY] = ActionRedo
	b.byKey[backend.KeyCtrlS] = ActionSave
	b.byKey[backend.KeyCtrlO] = ActionLoad
	b.byKey[backend.KeyUp] = ActionRowsDec
	b.byKey[backend.KeyDown] = ActionRowsInc
	b.byKey[backend.KeyLeft] = ActionColsDec
	b.byKey[backend.KeyRight] = ActionColsInc

	b.byRune['q'] = ActionQuit
	b.byRune['u'] = ActionUndo
	b.byRune['r'] = ActionRedo
	b.byRune['f'] = ActionFill
	b.byRune['c'] = ActionClear
	b.byRune[']'] = ActionColorNext
	b.byRune['['] = ActionColorPrev
	b.byRune['o'] = ActionOutlineToggle
	b.byRune['s'] = ActionSave
	b.byRune['l'] = ActionLoad
	b.byRune['p'] = ActionPattern

	return b
}

// Bind binds a chord string to an action, replacing any existing binding.
// Chords are a single printable rune ("q", "["), a special key name
// ("up", "escape", "enter"), or "ctrl+x" for control chords.
func (b *Bindings) Bind(chord string, action Action) error {
	chord = strings.ToLower(strings.TrimSpace(chord))
	if chord == "" {
		return fmt.Errorf("empty chord")
	}

	if key, ok := specialKeys[chord]; ok {
		b.byKey[key] = action
		return nil
	}

	if name, ok := strings.CutPrefix(chord, "ctrl+"); ok {
		key, ok := ctrlKeys[name]
		if !ok {
			return fmt.Errorf("unsupported control chord %q", chord)
		}
		b.byKey[key] = action
		return nil
	}

	runes := []rune(chord)
	if len(runes) != 1 {
		return fmt.Errorf("unsupported chord %q", chord)
	}
	b.byRune[runes[0]] = action
	return nil
}

// Resolve maps a key event to its bound action.
func (b *Bindings) Resolve(ev backend.Event) (Action, bool) {
	if ev.Type != backend.EventKey {
		return ActionNone, false
	}

	if ev.Key == backend.KeyRune {
		action, ok := b.byRune[ev.Rune]
		return action, ok
	}

	action, ok := b.byKey[ev.Key]
	return action, ok
}

// specialKeys maps chord names to backend keys.
var specialKeys = map[string]backend.Key{
	"escape":    backend.KeyEscape,
	"esc":       backend.KeyEscape,
	"enter":     backend.KeyEnter,
	"tab":       backend.KeyTab,
	"backspace": backend.KeyBackspace,
	"up":        backend.KeyUp,
	"down":      backend.KeyDown,
	"left":      backend.KeyLeft,
	"right":     backend.KeyRight,
}

// ctrlKeys maps "ctrl+<letter>" chords to backend keys.
var ctrlKeys = map[string]backend.Key{
	"c": backend.KeyCtrlC,
	"l": backend.KeyCtrlL,
	"o": backend.KeyCtrlO,
	"r": backend.KeyCtrlR,
	"s": backend.KeyCtrlS,
	"y": backend.KeyCtrlY,
	"z": backend.KeyCtrlZ,
}
