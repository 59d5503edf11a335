package hotkeys

import (
	"errors"
	"fmt"
)

// MaxSlots bounds the table size.
const MaxSlots = 10

var (
	ErrZeroID      = errors.New("hotkey id 0 is reserved")
	ErrDuplicateID = errors.New("hotkey id bound to more than one slot")
	ErrTableFull   = errors.New("too many hotkey slots")
)

// Table maps OS identifiers back to slots. It is read-only once built,
// so it can be shared without locking.
type Table struct {
	ids   map[Slot]uint32
	slots map[uint32]Slot
}

// NewTable builds a lookup table from slot -> identifier.
func NewTable(ids map[Slot]uint32) (*Table, error) {
	if len(ids) > MaxSlots {
		return nil, fmt.Errorf("%w: %d > %d", ErrTableFull, len(ids), MaxSlots)
	}

	t := &Table{
		ids:   make(map[Slot]uint32, len(ids)),
		slots: make(map[uint32]Slot, len(ids)),
	}
	for slot, id := range ids {
		if id == 0 {
			return nil, fmt.Errorf("%w: slot %s", ErrZeroID, slot)
		}
		if other, ok := t.slots[id]; ok {
			return nil, fmt.Errorf("%w: id %d (%s, %s)", ErrDuplicateID, id, other, slot)
		}
		t.ids[slot] = id
		t.slots[id] = slot
	}
	return t, nil
}

// SlotFor returns the slot bound to id, or false for ids this process does not own.
func (t *Table) SlotFor(id uint32) (Slot, bool) {
	if t == nil || id == 0 {
		return 0, false
	}
	slot, ok := t.slots[id]
	return slot, ok
}

// ID returns the identifier bound to slot.
func (t *Table) ID(slot Slot) (uint32, bool) {
	if t == nil {
		return 0, false
	}
	id, ok := t.ids[slot]
	return id, ok
}

// Len returns the number of bound slots.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.ids)
}
