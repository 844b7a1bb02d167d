// SPDX-FileCopyrightText: (C) 2025 Intel Corporation
// SPDX-License-Identifier: Apache 2.0

package simtest

import (
	"testing"

	"github.com/fido-device-onboard/go-fdo-sim/serviceinfo"
	"github.com/fido-device-onboard/go-fdo-sim/sim"
)

// Arm prepares the module state for one round, standing in for the
// fetch/command paths that feed the module in production.
type Arm func(*sim.Module)

// RunSession drives mod through the orchestrator call order: Start,
// then one {has_more, count, get_dsi, is_more} round per Arm, then
// End. It fails the test on any error or round signal invariant
// violation and returns the service info produced, in order.
func RunSession(t *testing.T, mod *sim.Module, mtu uint16, arms []Arm) []serviceinfo.KV {
	t.Helper()
	CaptureSlog(t)

	if err := mod.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	t.Cleanup(func() { _ = mod.Failure() })

	var produced []serviceinfo.KV
	for i, arm := range arms {
		if arm != nil {
			arm(mod)
		}

		var signal serviceinfo.RoundSignal
		if err := mod.HasMoreDSI(&signal.HasMoreNow, mod.Pending()); err != nil {
			t.Fatalf("round %d has_more: %v", i, err)
		}
		if err := mod.DSICount(&signal.Count); err != nil {
			t.Fatalf("round %d count: %v", i, err)
		}
		if signal.HasMoreNow {
			var kv serviceinfo.KV
			if err := mod.GetDSI(mtu, &kv); err != nil {
				t.Fatalf("round %d get_dsi: %v", i, err)
			}
			produced = append(produced, kv)
		}
		if err := mod.IsMoreDSI(&signal.IsMoreNext, false); err != nil {
			t.Fatalf("round %d is_more: %v", i, err)
		}
		if !signal.Valid() {
			t.Fatalf("round %d signal invariant violated: %+v", i, signal)
		}
	}

	if err := mod.End(nil); err != nil {
		t.Fatalf("end: %v", err)
	}
	return produced
}
