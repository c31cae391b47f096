/*
DESCRIPTION
  zip.go provides a Source implementation for a CD+G stream packed as a
  single entry inside a zip archive, as many karaoke disc rips ship it.

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
	"io"

	"github.com/pkg/errors"
)

// ZipEntry is a Source backed by a single named entry of a zip archive.
// Unlike a plain file, a zip entry's decompressing reader cannot be
// seeked; Rewind instead closes and reopens the entry from the archive's
// central directory.
type ZipEntry struct {
	zr   *zip.ReadCloser
	zf   *zip.File
	rc   io.ReadCloser
	size int64
}

// NewZipEntry opens archivePath and returns a Source over the entry
// named entryName. An error is returned if the archive cannot be
// opened or the entry is not found.
func NewZipEntry(archivePath, entryName string) (*ZipEntry, error) {
	zr, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, errors.Wrap(err, "could not open zip archive")
	}

	var zf *zip.File
	for _, f := range zr.File {
		if f.Name == entryName {
			zf = f
			break
		}
	}
	if zf == nil {
		zr.Close()
		return nil, errors.Errorf("entry %q not found in zip archive", entryName)
	}

	rc, err := zf.Open()
	if err != nil {
		zr.Close()
		return nil, errors.Wrap(err, "could not open zip entry")
	}

	return &ZipEntry{zr: zr, zf: zf, rc: rc, size: int64(zf.UncompressedSize64)}, nil
}

// Read implements Source.
func (s *ZipEntry) Read(dst []byte) (int, error) { return s.rc.Read(dst) }

// Size implements Source.
func (s *ZipEntry) Size() int64 { return s.size }

// Rewind implements Source by reopening the entry from the archive's
// central directory, since the deflate reader itself cannot seek.
func (s *ZipEntry) Rewind() error {
	if err := s.rc.Close(); err != nil {
		return errors.Wrap(err, "could not close zip entry reader")
	}
	rc, err := s.zf.Open()
	if err != nil {
		return errors.Wrap(err, "could not reopen zip entry")
	}
	s.rc = rc
	return nil
}

// Close closes the open entry reader and the archive itself.
func (s *ZipEntry) Close() error {
	err1 := s.rc.Close()
	err2 := s.zr.Close()
	if err1 != nil {
		return err1
	}
	return err2
}
