package platform

import (
	"errors"
	"reflect"
	"testing"
)

type fakeWM struct {
	calls    []string
	style    uint32
	written  uint32
	affinity uint32
	opacity  float64
	fail     map[string]bool
}

func (f *fakeWM) record(name string) error {
	f.calls = append(f.calls, name)
	if f.fail[name] {
		return errors.New(name + " failed")
	}
	return nil
}

func (f *fakeWM) SetDisplayAffinity(_ WindowHandle, affinity uint32) error {
	f.affinity = affinity
	return f.record("affinity")
}

func (f *fakeWM) ExtendedStyle(WindowHandle) (uint32, error) {
	if err := f.record("get-style"); err != nil {
		return 0, err
	}
	return f.style, nil
}

func (f *fakeWM) SetExtendedStyle(_ WindowHandle, style uint32) error {
	f.written = style
	return f.record("set-style")
}

func (f *fakeWM) SetTopmost(WindowHandle) error { return f.record("topmost") }

func (f *fakeWM) SetOpacity(_ WindowHandle, opacity float64) error {
	f.opacity = opacity
	return f.record("opacity")
}

func (f *fakeWM) MoveWindowTo(WindowHandle, int, int) error { return f.record("move") }

func (f *fakeWM) GetWindowRect(WindowHandle) (int, int, int, int, error) {
	return 0, 0, 0, 0, f.record("rect")
}

func (f *fakeWM) GetWorkArea() (int, int, int, int) { return 0, 0, 1920, 1080 }

func TestOverlayExStyle(t *testing.T) {
	got := OverlayExStyle(WS_EX_APPWINDOW | 0x100)
	if got&WS_EX_APPWINDOW != 0 {
		t.Fatalf("expected WS_EX_APPWINDOW cleared, got %#x", got)
	}
	want := uint32(0x100) | WS_EX_TOOLWINDOW | WS_EX_TOPMOST | WS_EX_LAYERED | WS_EX_TRANSPARENT
	if got != want {
		t.Fatalf("expected %#x, got %#x", want, got)
	}
}

func TestApplyOverlayStyle_CallOrder(t *testing.T) {
	wm := &fakeWM{style: WS_EX_APPWINDOW}
	ApplyOverlayStyle(wm, 42, 0.85)

	want := []string{"affinity", "get-style", "set-style", "topmost", "opacity"}
	if !reflect.DeepEqual(wm.calls, want) {
		t.Fatalf("expected calls %v, got %v", want, wm.calls)
	}
	if wm.affinity != WDA_EXCLUDEFROMCAPTURE {
		t.Fatalf("expected affinity %#x, got %#x", WDA_EXCLUDEFROMCAPTURE, wm.affinity)
	}
	if wm.written != OverlayExStyle(WS_EX_APPWINDOW) {
		t.Fatalf("unexpected written style %#x", wm.written)
	}
	if wm.opacity != 0.85 {
		t.Fatalf("expected opacity 0.85, got %v", wm.opacity)
	}
}

func TestApplyOverlayStyle_FailuresAreIgnored(t *testing.T) {
	wm := &fakeWM{fail: map[string]bool{"affinity": true, "set-style": true, "topmost": true}}
	ApplyOverlayStyle(wm, 42, 0.5)

	want := []string{"affinity", "get-style", "set-style", "topmost", "opacity"}
	if !reflect.DeepEqual(wm.calls, want) {
		t.Fatalf("expected every step attempted %v, got %v", want, wm.calls)
	}
}

func TestApplyOverlayStyle_SkipsWriteWhenReadFails(t *testing.T) {
	wm := &fakeWM{fail: map[string]bool{"get-style": true}}
	ApplyOverlayStyle(wm, 42, 0.5)

	want := []string{"affinity", "get-style", "topmost", "opacity"}
	if !reflect.DeepEqual(wm.calls, want) {
		t.Fatalf("expected %v, got %v", want, wm.calls)
	}
}

func TestApplyOverlayStyle_ClampsOpacity(t *testing.T) {
	for _, in := range []float64{0, -1, 1.5} {
		wm := &fakeWM{}
		ApplyOverlayStyle(wm, 1, in)
		if wm.opacity != 1 {
			t.Fatalf("opacity %v: expected clamp to 1, got %v", in, wm.opacity)
		}
	}
}

func TestOverlayStyler_Apply(t *testing.T) {
	wm := &fakeWM{}
	OverlayStyler{WM: wm, Opacity: 0.6}.Apply(7)
	if len(wm.calls) == 0 || wm.opacity != 0.6 {
		t.Fatalf("expected styler to run the sequence, got calls %v opacity %v", wm.calls, wm.opacity)
	}
}
