//go:build windows

package platform

import (
	"errors"
	"testing"

	"golang.org/x/sys/windows"
)

func TestLongResultError(t *testing.T) {
	tests := []struct {
		name    string
		ret     uintptr
		lastErr error
		wantErr bool
	}{
		{"zero style", 0, windows.ERROR_SUCCESS, false},
		{"zero style nil error", 0, nil, false},
		{"non-zero ignores stale error", 0x40000, windows.ERROR_ACCESS_DENIED, false},
		{"zero with error", 0, windows.ERROR_INVALID_WINDOW_HANDLE, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := longResultError("GetWindowLong", tt.ret, tt.lastErr)
			if (err != nil) != tt.wantErr {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
			if tt.wantErr && !errors.Is(err, tt.lastErr) {
				t.Fatalf("expected wrapped %v, got %v", tt.lastErr, err)
			}
		})
	}
}

func TestExtendedStyle_InvalidHandle(t *testing.T) {
	// A stale last error must not leak into the result.
	procSetLastError.Call(uintptr(windows.ERROR_ACCESS_DENIED))

	_, err := NewWindowsFeatures().ExtendedStyle(0)
	if !errors.Is(err, windows.ERROR_INVALID_WINDOW_HANDLE) {
		t.Fatalf("expected ERROR_INVALID_WINDOW_HANDLE, got %v", err)
	}
}
