package sqlitedrv

import (
	"os"
	"testing"
)

func TestDriverInfo(t *testing.T) {
	info := GetInfo()
	if info.DriverName == "" {
		t.Fatal("DriverName must not be empty")
	}
	if info.DriverType != "purego" && info.DriverType != "cgo" {
		t.Fatalf("unexpected DriverType %q", info.DriverType)
	}
}

func TestOpenFromBytesRemovesTempFileOnClose(t *testing.T) {
	h, err := OpenFromBytes([]byte("not a real sqlite file"), "test-*.db")
	if err != nil {
		t.Fatalf("OpenFromBytes: %v", err)
	}
	path := h.path

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("temp file should exist before Close: %v", err)
	}

	if err := h.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("temp file should be removed after Close, stat err = %v", err)
	}
}
