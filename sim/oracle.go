// SPDX-FileCopyrightText: (C) 2025 Intel Corporation
// SPDX-License-Identifier: Apache 2.0

package sim

import (
	"fmt"
	"log/slog"

	"github.com/fido-device-onboard/go-fdo-sim/serviceinfo"
)

// Pending reports whether the module currently has a message to emit.
// The orchestrator derives its availability decision from this and
// hands it back through HasMoreDSI.
func (m *Module) Pending() bool { return m.hasMore }

// HasMoreDSI reports through hasMore whether there is service info to
// send this round. The caller supplies the decision; this call
// validates the output slot.
func (m *Module) HasMoreDSI(hasMore *bool, pending bool) error {
	if hasMore == nil {
		return fmt.Errorf("fdo_sim: has_more output is nil: %w", serviceinfo.ErrContent)
	}
	*hasMore = pending
	if *hasMore && debugEnabled() {
		slog.Debug("fdo_sim", "session", m.sessionID, "event", "service info pending", "kind", m.kind)
	}
	return nil
}

// IsMoreDSI reports through isMore whether there will be service info
// to send in the next round. Callers are expected to pass false rather
// than predict: payload boundaries are not known until encode time, so
// look-ahead is error-prone and deliberately not attempted here.
func (m *Module) IsMoreDSI(isMore *bool, pending bool) error {
	if isMore == nil {
		return fmt.Errorf("fdo_sim: is_more output is nil: %w", serviceinfo.ErrContent)
	}
	*isMore = pending
	return nil
}

// DSICount reports the number of service info messages this round will
// contain: exactly one while a message is pending, zero once the
// terminal message has been sent.
func (m *Module) DSICount(n *uint16) error {
	if n == nil {
		return fmt.Errorf("fdo_sim: count output is nil: %w", serviceinfo.ErrContent)
	}
	*n = 0
	if m.hasMore {
		*n = 1
	}
	return nil
}
