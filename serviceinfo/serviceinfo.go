// SPDX-FileCopyrightText: (C) 2025 Intel Corporation
// SPDX-License-Identifier: Apache 2.0

package serviceinfo

import "fmt"

// DefaultMTU for service info when the owner service does not negotiate
// a maximum service info size.
const DefaultMTU = 1300

// KV is a ServiceInfoKV structure. It is produced fresh each round into
// caller-owned memory; a module never retains it past the producing
// call.
type KV struct {
	Key string
	Val []byte
}

func (kv *KV) String() string {
	return fmt.Sprintf("[Key=%q,Val=% x]", kv.Key, kv.Val)
}

// Size calculates the number of bytes once marshaled to CBOR. It is
// used for checking a KV against the session MTU before it is handed to
// the orchestrator.
func (kv *KV) Size() uint16 {
	size := uint16(1) // header for overall KV structure
	size += headerLen(len(kv.Key)) + uint16(len(kv.Key))
	size += headerLen(len(kv.Val)) + uint16(len(kv.Val))
	return size
}

func headerLen(length int) uint16 {
	if length > 65535 {
		panic("KV cannot have length > max uint16")
	}
	switch {
	case length < 24:
		return 1
	case length < 256:
		return 2
	default:
		return 3
	}
}
