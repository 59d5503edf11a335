package hotkeys

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"golang.design/x/hotkey"
)

// ErrRegister wraps every failed OS registration.
var ErrRegister = errors.New("hotkey registration failed")

// osHotkey is the part of golang.design/x/hotkey the Registry uses.
type osHotkey interface {
	Register() error
	Unregister() error
	Keydown() <-chan hotkey.Event
	Keyup() <-chan hotkey.Event
}

func newSystemHotkey(c Combination) osHotkey {
	return hotkey.New(c.Mods, c.Key)
}

// Registrar registers a Combination and returns its identifier.
type Registrar interface {
	Register(c Combination) (uint32, error)
}

// Registry owns the process's global hotkeys and merges their transitions
// into a single stream read with Receive.
type Registry struct {
	newHotkey func(Combination) osHotkey

	mu     sync.Mutex
	nextID uint32
	keys   map[uint32]osHotkey
	closed bool

	events chan Notification
	done   chan struct{}
	wg     sync.WaitGroup
}

// NewRegistry creates a registry backed by the OS global-hotkey facility
func NewRegistry() *Registry {
	return newRegistry(newSystemHotkey)
}

func newRegistry(newHotkey func(Combination) osHotkey) *Registry {
	return &Registry{
		newHotkey: newHotkey,
		keys:      make(map[uint32]osHotkey),
		events:    make(chan Notification),
		done:      make(chan struct{}),
	}
}

// Register asks the OS for c and returns a non-zero identifier for it.
// On failure the returned id is 0 and the combination stays inert.
func (r *Registry) Register(c Combination) (uint32, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return 0, fmt.Errorf("%w: %s: registry closed", ErrRegister, c)
	}

	hk := r.newHotkey(c)
	if err := hk.Register(); err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrRegister, c, err)
	}

	r.nextID++
	id := r.nextID
	r.keys[id] = hk

	r.wg.Add(1)
	go r.forward(id, hk)
	return id, nil
}

// forward copies one hotkey's transitions onto the shared stream
func (r *Registry) forward(id uint32, hk osHotkey) {
	defer r.wg.Done()

	keydown, keyup := hk.Keydown(), hk.Keyup()
	for {
		var state State
		select {
		case _, ok := <-keydown:
			if !ok {
				return
			}
			state = Pressed
		case _, ok := <-keyup:
			if !ok {
				return
			}
			state = Released
		case <-r.done:
			return
		}

		select {
		case r.events <- Notification{ID: id, State: state}:
		case <-r.done:
			return
		}
	}
}

// Receive blocks until the next hotkey transition. ok is false once the
// registry has been closed. Each hotkey's presses arrive in the order the OS
// reported them, as do its releases. Transitions of different hotkeys, and a
// press and release of one hotkey that are pending together, may be reordered.
func (r *Registry) Receive() (n Notification, ok bool) {
	n, ok = <-r.events
	return n, ok
}

// Close unregisters every hotkey and ends the Receive stream
func (r *Registry) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	close(r.done)
	keys := r.keys
	r.keys = make(map[uint32]osHotkey)
	r.mu.Unlock()

	for id, hk := range keys {
		if err := hk.Unregister(); err != nil {
			log.Printf("Failed to unregister hotkey %d: %v", id, err)
		}
	}

	r.wg.Wait()
	close(r.events)
	log.Println("Hotkey registry closed")
}

// RegisterAll registers each binding and returns the identifiers of the ones
// that succeeded. Failures are logged and leave that slot unbound.
func RegisterAll(r Registrar, bindings []Binding) map[Slot]uint32 {
	ids := make(map[Slot]uint32, len(bindings))
	for _, b := range bindings {
		id, err := r.Register(b.Combination)
		if err != nil {
			log.Printf("Failed to register %s (%s): %v", b.Combination, b.Slot, err)
			continue
		}
		log.Printf("Registered hotkey: %s -> %s (id %d)", b.Combination, b.Slot, id)
		ids[b.Slot] = id
	}
	return ids
}
