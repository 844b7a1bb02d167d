// SPDX-FileCopyrightText: (C) 2025 Intel Corporation
// SPDX-License-Identifier: Apache 2.0

package sim

import "github.com/fido-device-onboard/go-fdo-sim/serviceinfo"

// The fetch and command paths feed this module's state. They are
// called by whatever handles the owner service's instructions (file
// transfer, command execution) before the orchestrator asks for
// Device ServiceInfo.

// BeginFetch records the size of the file about to be transferred and
// rewinds the seek position.
func (m *Module) BeginFetch(size uint64) {
	m.fileTotalSize = size
	m.fileSeekPos = 0
	m.fetchStatus = FetchPending
}

// AdvanceFetch records one more transferred chunk. The chunk is
// retained as a transient until the next End call.
func (m *Module) AdvanceFetch(chunk []byte) {
	m.fileSeekPos += uint64(len(chunk))
	m.fetched = chunk
}

// CompleteFetch marks the transfer finished and arms the
// fdo.download:done response carrying the number of bytes written.
func (m *Module) CompleteFetch() {
	m.fetchStatus = FetchSuccess
	m.payload = int64(m.fileSeekPos)
	m.kind = serviceinfo.MsgDone
	m.hasMore = true
}

// FailFetch marks the transfer failed and arms a fdo.download:done
// response of -1, the protocol's error signal.
func (m *Module) FailFetch() {
	m.fetchStatus = FetchFailure
	m.payload = -1
	m.kind = serviceinfo.MsgDone
	m.hasMore = true
}

// StageCommand retains the owned argument buffers of a command being
// executed on behalf of the owner service. They are released, in
// reverse index order, on the next End call.
func (m *Module) StageCommand(args [][]byte) {
	m.execArgs = args
}

// SetExitCode arms the fdo.command:exitcode response.
func (m *Module) SetExitCode(code int) {
	m.payload = int64(code)
	m.kind = serviceinfo.MsgExitCode
	m.hasMore = true
}

// State reports the fetch-tracking triple: seek position, total file
// size, and status of the last transfer.
func (m *Module) State() (seekPos, totalSize uint64, status FetchStatus) {
	return m.fileSeekPos, m.fileTotalSize, m.fetchStatus
}
