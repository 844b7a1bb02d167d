// SPDX-FileCopyrightText: (C) 2025 Intel Corporation
// SPDX-License-Identifier: Apache 2.0

package sim

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fido-device-onboard/go-fdo-sim/codec"
	"github.com/fido-device-onboard/go-fdo-sim/serviceinfo"
)

// Module is the fdo_sim device service info module. One instance
// serves at most one in-flight session; it must not be shared across
// concurrent sessions without external synchronization.
type Module struct {
	// ProcessData, if set, receives module control signals for
	// consumers of the underlying data. Only the serviceinfo.MsgExit
	// signal is delivered by this module, from Failure, so that
	// mid-transfer consumers stop cleanly.
	ProcessData func(kind serviceinfo.MsgKind, data []byte) error

	// Codec contexts, allocated by Start and owned for the session.
	fdow *codec.Writer
	fdor *codec.Reader

	// Fetch-tracking state. Reset whenever the session terminates.
	fileSeekPos   uint64
	fileTotalSize uint64
	fetchStatus   FetchStatus

	// Round state. DSICount and GetDSI within one round observe the
	// same decision; availability is never re-derived mid-round.
	hasMore bool
	kind    serviceinfo.MsgKind
	payload int64

	// Transient buffers released on every End call.
	fetched  []byte
	execArgs [][]byte

	sessionID uuid.UUID
}

var _ serviceinfo.DeviceSIM = (*Module)(nil)

// Start allocates both codec contexts at fixed capacity and resets the
// module to a fresh session. It fails if a session is already active;
// TERMINATED is the only state a new session may begin from.
func (m *Module) Start() error {
	if m.fdow != nil || m.fdor != nil {
		return fmt.Errorf("fdo_sim: session already active: %w", serviceinfo.ErrContent)
	}

	fdow, err := codec.NewWriter(codec.MaxBuffSize)
	if err != nil {
		// Cleanup of any partial allocation is deferred to the
		// caller's End on the error path.
		return fmt.Errorf("fdo_sim: FDOW allocation: %v: %w", err, serviceinfo.ErrContent)
	}
	m.fdow = fdow

	fdor, err := codec.NewReader(codec.MaxBuffSize)
	if err != nil {
		return fmt.Errorf("fdo_sim: FDOR allocation: %v: %w", err, serviceinfo.ErrInternal)
	}
	m.fdor = fdor

	m.fileSeekPos, m.fileTotalSize, m.fetchStatus = 0, 0, FetchFailure
	m.hasMore, m.kind, m.payload = false, serviceinfo.MsgNone, 0
	m.sessionID = uuid.New()

	if debugEnabled() {
		slog.Debug("fdo_sim", "session", m.sessionID, "event", "started")
	}
	return nil
}

// End releases per-round transient buffers and returns prior
// unchanged. If prior indicates failure, it additionally collapses all
// session state: the fetch triple resets, the pending kind becomes
// MsgExit, no more service info is reported, and both codec contexts
// are released. The collapse is idempotent.
func (m *Module) End(prior error) error {
	m.releaseTransients()
	if prior != nil {
		m.collapse()
	}
	return prior
}

// Failure aborts the session from outside the normal call order. The
// ProcessData hook is signaled first so consumers mid-transfer stop
// before the codec contexts go away.
func (m *Module) Failure() error {
	if m.ProcessData != nil {
		if err := m.ProcessData(serviceinfo.MsgExit, nil); err != nil {
			return fmt.Errorf("fdo_sim: clean-up signal: %v: %w", err, serviceinfo.ErrInternal)
		}
	}
	m.releaseTransients()
	m.collapse()
	return nil
}

// collapse forces the terminal state. All exit paths, normal or not,
// converge here so that no session state survives into the next
// session. Calling it on an already-collapsed module is a no-op for
// the reset fields.
func (m *Module) collapse() {
	m.hasMore = false
	m.fileSeekPos, m.fileTotalSize, m.fetchStatus = 0, 0, FetchFailure
	m.kind = serviceinfo.MsgExit
	m.payload = 0
	if m.fdow != nil {
		m.fdow.Close()
		m.fdow = nil
	}
	if m.fdor != nil {
		m.fdor.Close()
		m.fdor = nil
	}
	if debugEnabled() {
		slog.Debug("fdo_sim", "session", m.sessionID, "event", "terminated")
	}
}

// releaseTransients drops the references handed over by the fetch and
// command paths. Owned argument buffers are dropped in reverse index
// order, then the array itself.
func (m *Module) releaseTransients() {
	m.fetched = nil
	for i := len(m.execArgs) - 1; i >= 0; i-- {
		m.execArgs[i] = nil
	}
	m.execArgs = nil
}
