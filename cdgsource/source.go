/*
DESCRIPTION
  source.go defines the byte source capability consumed by cdg.Interpreter.

AUTHORS
  The Australian Ocean Lab (AusOcean)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package cdgsource provides byte-source implementations for a CD+G
// packet stream: a plain file and a zip archive entry. The interpreter
// never seeks within a Source except by a full Rewind to the start.
package cdgsource

// Source is the capability an interpreter needs from its packet stream:
// sequential reads, an optional size for duration calculation, and a
// rewind to support backward seeks.
type Source interface {
	// Read reads up to len(dst) bytes into dst, as io.Reader does.
	Read(dst []byte) (n int, err error)

	// Size returns the total size of the stream in bytes, or 0 if unknown.
	Size() int64

	// Rewind restarts the stream from its first byte. It returns an
	// error if the underlying source cannot be rewound.
	Rewind() error
}
