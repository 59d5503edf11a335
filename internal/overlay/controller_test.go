package overlay

import (
	"math/rand"
	"reflect"
	"testing"

	"hotkeyoverlay/internal/hotkeys"
	"hotkeyoverlay/internal/platform"
)

type moveCall struct {
	window WindowID
	pos    Point
}

type fakeFrame struct {
	handleRequests []WindowID
	moves          []moveCall
	exits          int
}

func (f *fakeFrame) RequestNativeHandle(window WindowID) {
	f.handleRequests = append(f.handleRequests, window)
}

func (f *fakeFrame) MoveTo(window WindowID, pos Point) {
	f.moves = append(f.moves, moveCall{window, pos})
}

func (f *fakeFrame) Exit() { f.exits++ }

type fakeStyler struct {
	handles []platform.WindowHandle
}

func (s *fakeStyler) Apply(h platform.WindowHandle) { s.handles = append(s.handles, h) }

const (
	idClose uint32 = 11
	idLeft  uint32 = 12
	idRight uint32 = 13
	idUp    uint32 = 14
	idDown  uint32 = 15
)

func testTable(t *testing.T) *hotkeys.Table {
	t.Helper()
	table, err := hotkeys.NewTable(map[hotkeys.Slot]uint32{
		hotkeys.SlotClose:     idClose,
		hotkeys.SlotMoveLeft:  idLeft,
		hotkeys.SlotMoveRight: idRight,
		hotkeys.SlotMoveUp:    idUp,
		hotkeys.SlotMoveDown:  idDown,
	})
	if err != nil {
		t.Fatalf("table: %v", err)
	}
	return table
}

func press(id uint32) HotkeyMessage {
	return HotkeyMessage{Notification: hotkeys.Notification{ID: id, State: hotkeys.Pressed}}
}

func newTestController(t *testing.T) (*Controller, *fakeFrame, *fakeStyler) {
	frame := &fakeFrame{}
	styler := &fakeStyler{}
	return NewController(frame, styler, testTable(t)), frame, styler
}

func TestController_OpenThenMoveRightDown(t *testing.T) {
	c, frame, _ := newTestController(t)

	c.Update(WindowOpened{Window: 1, Position: Point{100, 100}})
	if c.State() != StateActive {
		t.Fatalf("expected active after open, got %s", c.State())
	}
	if !reflect.DeepEqual(frame.handleRequests, []WindowID{1}) {
		t.Fatalf("expected one native handle request, got %v", frame.handleRequests)
	}

	c.Update(press(idRight))
	c.Update(press(idDown))

	pos, _ := c.Position()
	if pos != (Point{140, 140}) {
		t.Fatalf("expected (140,140), got %+v", pos)
	}
	want := []moveCall{{1, Point{140, 100}}, {1, Point{140, 140}}}
	if !reflect.DeepEqual(frame.moves, want) {
		t.Fatalf("expected moves %v, got %v", want, frame.moves)
	}
}

func TestController_MoveBeforeOpenIsNoop(t *testing.T) {
	c, frame, _ := newTestController(t)

	c.Update(press(idLeft))
	c.Move(Down)

	if c.State() != StateUninitialized {
		t.Fatalf("expected uninitialized, got %s", c.State())
	}
	if _, ok := c.Position(); ok {
		t.Fatalf("expected no position")
	}
	if len(frame.moves) != 0 {
		t.Fatalf("expected no native move, got %v", frame.moves)
	}
}

func TestController_CloseBeforeOpenExits(t *testing.T) {
	c, frame, _ := newTestController(t)

	c.Update(press(idClose))

	if frame.exits != 1 {
		t.Fatalf("expected exit, got %d exits", frame.exits)
	}
	if c.State() != StateClosing {
		t.Fatalf("expected closing, got %s", c.State())
	}

	// Terminal: nothing else is processed.
	c.Update(WindowOpened{Window: 1, Position: Point{0, 0}})
	c.Update(press(idClose))
	c.Update(CloseRequested{})
	if frame.exits != 1 || len(frame.handleRequests) != 0 {
		t.Fatalf("expected no transitions after closing, exits=%d requests=%v", frame.exits, frame.handleRequests)
	}
}

func TestController_CloseRequested(t *testing.T) {
	c, frame, _ := newTestController(t)
	c.Update(WindowOpened{Window: 3, Position: Point{5, 5}})
	c.Update(CloseRequested{})
	if frame.exits != 1 || c.State() != StateClosing {
		t.Fatalf("expected exit on close request, exits=%d state=%s", frame.exits, c.State())
	}
}

func TestController_IgnoresUnknownAndReleased(t *testing.T) {
	c, frame, _ := newTestController(t)
	c.Update(WindowOpened{Window: 1, Position: Point{10, 10}})

	c.Update(press(999))
	c.Update(HotkeyMessage{Notification: hotkeys.Notification{ID: idRight, State: hotkeys.Released}})
	c.Update(HotkeyMessage{Notification: hotkeys.Notification{ID: idClose, State: hotkeys.Released}})

	if len(frame.moves) != 0 || frame.exits != 0 {
		t.Fatalf("expected no effect, moves=%v exits=%d", frame.moves, frame.exits)
	}
	if pos, _ := c.Position(); pos != (Point{10, 10}) {
		t.Fatalf("expected position unchanged, got %+v", pos)
	}
}

func TestController_StylesOnce(t *testing.T) {
	c, _, styler := newTestController(t)

	// A handle before the window opened is not ours yet.
	c.Update(NativeHandleMessage{Window: 1, Handle: 0xAB})
	if len(styler.handles) != 0 {
		t.Fatalf("expected no styling before open")
	}

	c.Update(WindowOpened{Window: 1, Position: Point{0, 0}})
	c.Update(NativeHandleMessage{Window: 2, Handle: 0xCD})
	c.Update(NativeHandleMessage{Window: 1, Handle: 0xAB})
	c.Update(NativeHandleMessage{Window: 1, Handle: 0xAB})

	if !reflect.DeepEqual(styler.handles, []platform.WindowHandle{0xAB}) {
		t.Fatalf("expected a single styling of 0xAB, got %v", styler.handles)
	}
}

func TestController_SecondOpenIsIgnored(t *testing.T) {
	c, frame, _ := newTestController(t)
	c.Update(WindowOpened{Window: 1, Position: Point{1, 2}})
	c.Update(WindowOpened{Window: 2, Position: Point{3, 4}})

	if id, _ := c.Window(); id != 1 {
		t.Fatalf("expected window 1 to stay tracked, got %d", id)
	}
	if len(frame.handleRequests) != 1 {
		t.Fatalf("expected one handle request, got %v", frame.handleRequests)
	}
}

func TestController_WindowClosedResetsState(t *testing.T) {
	c, frame, _ := newTestController(t)
	c.Update(WindowOpened{Window: 1, Position: Point{1, 2}})
	c.Update(WindowClosed{Window: 1})

	if c.State() != StateUninitialized {
		t.Fatalf("expected uninitialized after window closed, got %s", c.State())
	}
	c.Move(Right)
	if len(frame.moves) != 0 {
		t.Fatalf("expected no move without a window")
	}
}

func TestController_MovesAccumulate(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	ids := map[uint32]Direction{idLeft: Left, idRight: Right, idUp: Up, idDown: Down}
	keys := []uint32{idLeft, idRight, idUp, idDown}

	for trial := 0; trial < 20; trial++ {
		c, frame, _ := newTestController(t)
		start := Point{rng.Intn(1000), rng.Intn(1000)}
		c.Update(WindowOpened{Window: 1, Position: start})

		want := start
		n := rng.Intn(50)
		for i := 0; i < n; i++ {
			// Unrelated traffic between moves must not disturb the sum.
			switch rng.Intn(3) {
			case 0:
				c.Update(press(uint32(1000 + rng.Intn(100))))
			case 1:
				c.Update(NativeHandleMessage{Window: 1, Handle: 0x10})
			}
			id := keys[rng.Intn(len(keys))]
			c.Update(press(id))
			want = want.Add(Offset(ids[id]))
		}

		got, _ := c.Position()
		if got != want {
			t.Fatalf("trial %d: expected %+v, got %+v", trial, want, got)
		}
		if len(frame.moves) != n {
			t.Fatalf("trial %d: expected %d native moves, got %d", trial, n, len(frame.moves))
		}
	}
}

func TestOffset(t *testing.T) {
	tests := []struct {
		dir  Direction
		want Point
	}{
		{Left, Point{-40, 0}},
		{Right, Point{40, 0}},
		{Up, Point{0, -40}},
		{Down, Point{0, 40}},
	}
	for _, tt := range tests {
		if got := Offset(tt.dir); got != tt.want {
			t.Fatalf("Offset(%s): expected %+v, got %+v", tt.dir, tt.want, got)
		}
	}

	if sum := Offset(Left).Add(Offset(Right)); sum != (Point{}) {
		t.Fatalf("left+right should cancel, got %+v", sum)
	}
	if sum := Offset(Up).Add(Offset(Down)); sum != (Point{}) {
		t.Fatalf("up+down should cancel, got %+v", sum)
	}
}
