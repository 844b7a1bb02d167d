// SPDX-FileCopyrightText: (C) 2025 Intel Corporation
// SPDX-License-Identifier: Apache 2.0

package sim

import (
	"fmt"
	"log/slog"

	"github.com/fido-device-onboard/go-fdo-sim/serviceinfo"
)

// GetDSI encodes the pending message into kv within the mtu byte
// budget. Encoding is only legal while a message is owed and the
// session is not exiting. On failure nothing is written to kv and the
// session state has already collapsed: there is exactly one terminal
// cleanup path regardless of where within the round the failure
// originated.
func (m *Module) GetDSI(mtu uint16, kv *serviceinfo.KV) error {
	return m.End(m.getDSI(mtu, kv))
}

func (m *Module) getDSI(mtu uint16, kv *serviceinfo.KV) error {
	if mtu == 0 || kv == nil {
		return fmt.Errorf("fdo_sim: invalid get_dsi params: %w", serviceinfo.ErrContent)
	}
	if m.fdow == nil {
		return fmt.Errorf("fdo_sim: session not started: %w", serviceinfo.ErrContent)
	}

	// Reuse, don't reallocate: the backing block is fixed for the
	// session and encode cost per round stays bounded.
	m.fdow.Reset()

	if !m.hasMore || m.kind == serviceinfo.MsgExit {
		return fmt.Errorf("fdo_sim: invalid module state %s: %w", m.kind, serviceinfo.ErrContent)
	}

	var key string
	switch m.kind {
	case serviceinfo.MsgDone:
		key = serviceinfo.KeyDownloadDone
	case serviceinfo.MsgExitCode:
		key = serviceinfo.KeyCommandExitCode
	case serviceinfo.MsgNone:
		// A kind must be resolved before encoding. Reaching this is a
		// logical error, not a silent no-op.
		return fmt.Errorf("fdo_sim: no message kind selected: %w", serviceinfo.ErrContent)
	default:
		return fmt.Errorf("fdo_sim: invalid message kind %d: %w", uint8(m.kind), serviceinfo.ErrContent)
	}

	if err := m.fdow.SignedInt(m.payload); err != nil {
		return fmt.Errorf("fdo_sim: encoding %s content: %v: %w", key, err, serviceinfo.ErrContent)
	}
	m.hasMore = false

	// The encoded length is reported by the writer, not assumed, so a
	// silently truncating encoder cannot pass this step.
	n, err := m.fdow.EncodedLen()
	if err != nil {
		return fmt.Errorf("fdo_sim: encoded length: %v: %w", err, serviceinfo.ErrContent)
	}

	out := serviceinfo.KV{Key: key, Val: m.fdow.Bytes()[:n]}
	if out.Size() > mtu {
		// Exceeding the negotiated budget is a protocol violation,
		// not a recoverable retry.
		return fmt.Errorf("fdo_sim: message size %d exceeds MTU %d: %w", out.Size(), mtu, serviceinfo.ErrContent)
	}

	// Copy out only once the full message is known to be valid and
	// within budget; the writer block is reused next round.
	kv.Key = out.Key
	kv.Val = append(kv.Val[:0], out.Val...)

	if debugEnabled() {
		slog.Debug("fdo_sim", "session", m.sessionID, "event", "responded", "key", key, "size", out.Size())
	}
	return nil
}
