// SPDX-FileCopyrightText: (C) 2025 Intel Corporation
// SPDX-License-Identifier: Apache 2.0

package serviceinfo

// Message keys produced by the fdo_sim device module. Each value is a
// CBOR signed integer.
const (
	// KeyDownloadDone reports the number of bytes the device wrote for
	// a completed fdo.download transfer, or -1 on failure.
	KeyDownloadDone = "fdo.download:done"

	// KeyCommandExitCode reports the exit code of a command executed
	// on behalf of the owner service.
	KeyCommandExitCode = "fdo.command:exitcode"
)

// MsgKind is the message a module has pending for the current round.
type MsgKind uint8

const (
	// MsgNone means no message kind has been selected. It is never
	// legal to encode.
	MsgNone MsgKind = iota

	// MsgDone is the fdo.download:done response.
	MsgDone

	// MsgExitCode is the fdo.command:exitcode response.
	MsgExitCode

	// MsgExit signals "no further rounds, enter termination" and
	// carries no payload.
	MsgExit
)

func (k MsgKind) String() string {
	switch k {
	case MsgNone:
		return "none"
	case MsgDone:
		return "done"
	case MsgExitCode:
		return "exitcode"
	case MsgExit:
		return "exit"
	}
	return "invalid"
}

// RoundSignal is the availability triple reported to the orchestrator
// each round.
type RoundSignal struct {
	// HasMoreNow reports whether the module has service info to send
	// this round.
	HasMoreNow bool

	// IsMoreNext reports whether the module expects to have service
	// info next round.
	IsMoreNext bool

	// Count is the number of messages the module will emit this round.
	Count uint16
}

// Valid reports whether the triple satisfies the protocol invariant
// that exactly one message is emitted per round with pending service
// info and none otherwise.
func (s RoundSignal) Valid() bool {
	return (s.Count == 1) == s.HasMoreNow && s.Count <= 1
}
