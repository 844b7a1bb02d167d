// SPDX-FileCopyrightText: (C) 2025 Intel Corporation
// SPDX-License-Identifier: Apache 2.0

package serviceinfo

// A DeviceSIM is a device service info module driven by the protocol
// orchestrator through a fixed call order per session:
//
//	Start
//	{ HasMoreDSI, DSICount, GetDSI, IsMoreDSI } per round
//	End
//
// with Failure callable at any time as an alternative to the next
// scheduled call. The orchestrator is single threaded with respect to a
// session; one module instance serves at most one in-flight session and
// must not be shared across concurrent sessions without external
// synchronization.
//
// Any returned error wraps ErrContent or ErrInternal. On either, the
// module has already collapsed its own state and the orchestrator
// should stop calling into the session.
type DeviceSIM interface {
	// Start allocates the session's codec contexts and resets module
	// state. It may only be called when no session is active.
	Start() error

	// HasMoreDSI validates hasMore and records the caller's
	// availability decision for this round. The caller derives pending
	// from upstream state; the module does not second-guess it.
	HasMoreDSI(hasMore *bool, pending bool) error

	// IsMoreDSI validates isMore and records the caller's look-ahead
	// decision for the next round.
	IsMoreDSI(isMore *bool, pending bool) error

	// DSICount reports the number of messages this round will contain:
	// 1 while a message is pending, 0 once the terminal message has
	// been sent.
	DSICount(n *uint16) error

	// GetDSI encodes the pending message into kv, within the mtu byte
	// budget. On failure no bytes are written to kv and the session
	// has been cleaned up.
	GetDSI(mtu uint16, kv *KV) error

	// End releases per-round transient buffers and, if prior is not
	// nil, collapses all session state. It returns prior unchanged.
	End(prior error) error

	// Failure aborts the session from outside the normal call order.
	Failure() error
}
