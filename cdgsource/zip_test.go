/*
DESCRIPTION
  zip_test.go tests the zip-entry-backed CD+G Source.

AUTHORS
  The Australian Ocean Lab (AusOcean)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package cdgsource

import (
	"archive/zip"
	"os"
	"testing"
)

func writeTestZip(t *testing.T, entryName string, data []byte) string {
	t.Helper()
	tmp, err := os.CreateTemp("", "cdg-zip-test-*.zip")
	if err != nil {
		t.Fatalf("could not create temp file: %v", err)
	}
	defer tmp.Close()

	zw := zip.NewWriter(tmp)
	w, err := zw.Create(entryName)
	if err != nil {
		t.Fatalf("could not create zip entry: %v", err)
	}
	if _, err := w.Write(data); err != nil {
		t.Fatalf("could not write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("could not close zip writer: %v", err)
	}
	return tmp.Name()
}

func TestZipEntryReadSizeAndRewind(t *testing.T) {
	data := []byte("0123456789abcdef")
	path := writeTestZip(t, "track.cdg", data)
	defer os.Remove(path)

	src, err := NewZipEntry(path, "track.cdg")
	if err != nil {
		t.Fatalf("NewZipEntry failed: %v", err)
	}
	defer src.Close()

	if got, want := src.Size(), int64(len(data)); got != want {
		t.Errorf("Size() = %d, want %d", got, want)
	}

	buf := make([]byte, 4)
	if _, err := src.Read(buf); err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if string(buf) != "0123" {
		t.Errorf("Read = %q, want %q", buf, "0123")
	}

	if err := src.Rewind(); err != nil {
		t.Fatalf("Rewind failed: %v", err)
	}
	if _, err := src.Read(buf); err != nil || string(buf) != "0123" {
		t.Errorf("post-rewind Read = %q err=%v, want 0123", buf, err)
	}
}

func TestNewZipEntryMissingEntryReturnsError(t *testing.T) {
	path := writeTestZip(t, "track.cdg", []byte("data"))
	defer os.Remove(path)

	if _, err := NewZipEntry(path, "missing.cdg"); err == nil {
		t.Error("expected an error for a missing entry")
	}
}

func TestNewZipEntryMissingArchiveReturnsError(t *testing.T) {
	if _, err := NewZipEntry("/nonexistent.zip", "track.cdg"); err == nil {
		t.Error("expected an error for a missing archive")
	}
}
