// SPDX-FileCopyrightText: (C) 2025 Intel Corporation
// SPDX-License-Identifier: Apache 2.0

/*
Package codec provides the reader/writer codec contexts a service info
module borrows for one call at a time.

Each context owns a single backing block of fixed capacity, allocated
once at session start and logically reset (never reallocated) before
each use. CBOR encoding and decoding are delegated to
github.com/fxamacker/cbor/v2 in deterministic core mode, as required
for FDO wire data.
*/
package codec

import (
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// MaxBuffSize is the fixed capacity of a codec context's backing
// block. One encoded service info value must always fit within it.
const MaxBuffSize = 8192

var (
	// ErrBuffSize indicates a write or load would exceed the block's
	// fixed capacity.
	ErrBuffSize = errors.New("codec block capacity exceeded")

	// ErrClosed indicates use of a context after Close.
	ErrClosed = errors.New("codec context closed")
)

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("codec: CBOR encoder mode: %v", err))
	}
	decMode, err = cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyEnforcedAPF,
		IndefLength: cbor.IndefLengthForbidden,
	}.DecMode()
	if err != nil {
		panic(fmt.Sprintf("codec: CBOR decoder mode: %v", err))
	}
}

func validSize(size int) error {
	if size <= 0 || size > MaxBuffSize {
		return fmt.Errorf("invalid block size %d, must be in (0, %d]", size, MaxBuffSize)
	}
	return nil
}
