/*
DESCRIPTION
  file.go provides a Source implementation for a CD+G file on disk.

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
	"fmt"
	"io"
	"os"
)

// File is a Source backed by a plain *os.File.
type File struct {
	f    *os.File
	size int64
}

// NewFile opens path and returns a File source. The file's size is
// queried once at open time for duration calculation; if the stat
// fails, Size reports 0.
func NewFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open cdg file: %w", err)
	}

	var size int64
	if fi, err := f.Stat(); err == nil {
		size = fi.Size()
	}

	return &File{f: f, size: size}, nil
}

// Read implements Source.
func (s *File) Read(dst []byte) (int, error) { return s.f.Read(dst) }

// Size implements Source.
func (s *File) Size() int64 { return s.size }

// Rewind implements Source.
func (s *File) Rewind() error {
	_, err := s.f.Seek(0, io.SeekStart)
	if err != nil {
		return fmt.Errorf("could not rewind cdg file: %w", err)
	}
	return nil
}

// Close closes the underlying file. Interpreter.Close calls this
// automatically if the bound Source implements io.Closer.
func (s *File) Close() error { return s.f.Close() }
