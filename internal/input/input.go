// Package input translates terminal events into editor actions.
//
// Key events resolve through a Bindings table (defaults plus keymap file
// overrides) into named Actions; mouse events resolve through hit testing
// into cell toggles and drag painting.
package input

// Action is a named editor action a key chord can bind to.
type Action string

// Editor actions.
const (
	ActionNone          Action = ""
	ActionQuit          Action = "quit"
	ActionUndo          Action = "undo"
	ActionRedo          Action = "redo"
	ActionFill          Action = "fill"
	ActionClear         Action = "clear"
	ActionColorNext     Action = "color-next"
	ActionColorPrev     Action = "color-prev"
	ActionOutlineToggle Action = "outline-toggle"
	ActionRowsInc       Action = "rows-inc"
	ActionRowsDec       Action = "rows-dec"
	ActionColsInc       Action = "cols-inc"
	ActionColsDec       Action = "cols-dec"
	ActionSave          Action = "save"
	ActionLoad          Action = "load"
	ActionPattern       Action = "pattern"
)

// knownActions is the set of actions a keymap file may reference.
var knownActions = map[Action]bool{
	ActionQuit:          true,
	ActionUndo:          true,
	ActionRedo:          true,
	ActionFill:          true,
	ActionClear:         true,
	ActionColorNext:     true,
	ActionColorPrev:     true,
	ActionOutlineToggle: true,
	ActionRowsInc:       true,
	ActionRowsDec:       true,
	ActionColsInc:       true,
	ActionColsDec:       true,
	ActionSave:          true,
	ActionLoad:          true,
	ActionPattern:       true,
}

// ParseAction resolves an action name from a keymap file.
func ParseAction(name string) (Action, bool) {
	a := Action(name)
	return a, knownActions[a]
}
