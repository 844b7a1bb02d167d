// SPDX-FileCopyrightText: (C) 2025 Intel Corporation
// SPDX-License-Identifier: Apache 2.0

package codec

// Reader is a decode context with a fixed-capacity backing block. The
// zero value is not usable; allocate with NewReader.
type Reader struct {
	block  []byte
	closed bool
}

// NewReader allocates a decode context whose backing block holds at
// most size bytes.
func NewReader(size int) (*Reader, error) {
	if err := validSize(size); err != nil {
		return nil, err
	}
	return &Reader{block: make([]byte, 0, size)}, nil
}

// Load copies b into the backing block, replacing prior contents. It
// fails with ErrBuffSize if b exceeds the block's fixed capacity.
func (r *Reader) Load(b []byte) error {
	if r.closed {
		return ErrClosed
	}
	if len(b) > cap(r.block) {
		return ErrBuffSize
	}
	r.block = append(r.block[:0], b...)
	return nil
}

// SignedInt decodes the block contents as a single CBOR signed
// integer.
func (r *Reader) SignedInt() (int64, error) {
	if r.closed {
		return 0, ErrClosed
	}
	var v int64
	if err := decMode.Unmarshal(r.block, &v); err != nil {
		return 0, err
	}
	return v, nil
}

// Cap reports the fixed capacity of the backing block.
func (r *Reader) Cap() int { return cap(r.block) }

// Reset discards the block contents, keeping the allocation.
func (r *Reader) Reset() {
	if r.closed {
		return
	}
	r.block = r.block[:0]
}

// Close releases the backing block. A closed Reader fails all further
// operations with ErrClosed.
func (r *Reader) Close() {
	r.closed = true
	r.block = nil
}
