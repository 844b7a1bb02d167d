// SPDX-FileCopyrightText: (C) 2025 Intel Corporation
// SPDX-License-Identifier: Apache 2.0

package codec

import "io"

// Writer is an encode context with a fixed-capacity backing block. The
// zero value is not usable; allocate with NewWriter.
type Writer struct {
	block  []byte
	closed bool
}

var _ io.Writer = (*Writer)(nil)

// NewWriter allocates an encode context whose backing block holds at
// most size bytes. The block is allocated once; Reset reuses it.
func NewWriter(size int) (*Writer, error) {
	if err := validSize(size); err != nil {
		return nil, err
	}
	return &Writer{block: make([]byte, 0, size)}, nil
}

// Write implements io.Writer, appending to the backing block. It fails
// with ErrBuffSize rather than growing the block beyond its fixed
// capacity.
func (w *Writer) Write(p []byte) (int, error) {
	if w.closed {
		return 0, ErrClosed
	}
	if len(w.block)+len(p) > cap(w.block) {
		return 0, ErrBuffSize
	}
	w.block = append(w.block, p...)
	return len(p), nil
}

// SignedInt appends the CBOR encoding of v to the block.
func (w *Writer) SignedInt(v int64) error {
	if w.closed {
		return ErrClosed
	}
	return encMode.NewEncoder(w).Encode(v)
}

// EncodedLen reports the total number of encoded bytes currently in
// the block.
func (w *Writer) EncodedLen() (int, error) {
	if w.closed {
		return 0, ErrClosed
	}
	return len(w.block), nil
}

// Bytes returns the encoded block contents. The returned slice aliases
// the backing block and is invalidated by the next Reset.
func (w *Writer) Bytes() []byte { return w.block }

// Cap reports the fixed capacity of the backing block.
func (w *Writer) Cap() int { return cap(w.block) }

// Reset discards the block contents, keeping the allocation.
func (w *Writer) Reset() {
	if w.closed {
		return
	}
	w.block = w.block[:0]
}

// Close releases the backing block. A closed Writer fails all further
// operations with ErrClosed.
func (w *Writer) Close() {
	w.closed = true
	w.block = nil
}
