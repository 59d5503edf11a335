package hotkeys

import (
	"strings"

	"golang.design/x/hotkey"
)

// Slot names the command a hotkey is bound to.
type Slot int

const (
	SlotClose Slot = iota
	SlotMoveLeft
	SlotMoveRight
	SlotMoveUp
	SlotMoveDown
)

func (s Slot) String() string {
	switch s {
	case SlotClose:
		return "close"
	case SlotMoveLeft:
		return "move-left"
	case SlotMoveRight:
		return "move-right"
	case SlotMoveUp:
		return "move-up"
	case SlotMoveDown:
		return "move-down"
	default:
		return "unknown"
	}
}

// State is the key transition reported for a hotkey.
type State int

const (
	Pressed State = iota
	Released
)

func (s State) String() string {
	if s == Released {
		return "released"
	}
	return "pressed"
}

// Notification is one hotkey transition observed by the Registry.
type Notification struct {
	ID    uint32
	State State
}

// Combination is a modifier set plus key code in the OS hotkey facility's terms.
type Combination struct {
	Mods []hotkey.Modifier
	Key  hotkey.Key
	Name string
}

func (c Combination) String() string {
	return c.Name
}

// Binding ties a Combination to the slot it triggers.
type Binding struct {
	Slot        Slot
	Combination Combination
}

// DefaultBindings returns the fixed binding set: End closes the overlay and
// the move modifier plus an arrow key moves it.
func DefaultBindings() []Binding {
	return []Binding{
		{SlotClose, Combination{Key: keyEnd, Name: "End"}},
		{SlotMoveRight, moveCombination(hotkey.KeyRight, "Right")},
		{SlotMoveLeft, moveCombination(hotkey.KeyLeft, "Left")},
		{SlotMoveUp, moveCombination(hotkey.KeyUp, "Up")},
		{SlotMoveDown, moveCombination(hotkey.KeyDown, "Down")},
	}
}

// MoveModifiersName names the modifiers held for the move bindings.
const MoveModifiersName = moveModsName

func moveCombination(key hotkey.Key, keyName string) Combination {
	return Combination{
		Mods: moveMods,
		Key:  key,
		Name: strings.Join([]string{moveModsName, keyName}, "+"),
	}
}
