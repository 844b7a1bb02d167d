// SPDX-FileCopyrightText: (C) 2025 Intel Corporation
// SPDX-License-Identifier: Apache 2.0

package sim

import (
	"bytes"
	"testing"

	"github.com/fido-device-onboard/go-fdo-sim/codec"
	"github.com/fido-device-onboard/go-fdo-sim/serviceinfo"
)

// Two consecutive successful rounds must reuse the writer's backing
// block, not reallocate it.
func TestEncodeReusesWriterBlock(t *testing.T) {
	var mod Module
	if err := mod.Start(); err != nil {
		t.Fatal(err)
	}

	mod.BeginFetch(64)
	mod.AdvanceFetch(bytes.Repeat([]byte{0xcc}, 64))
	mod.CompleteFetch()

	var kv serviceinfo.KV
	if err := mod.GetDSI(serviceinfo.DefaultMTU, &kv); err != nil {
		t.Fatal(err)
	}
	fdow := mod.fdow
	if got := fdow.Cap(); got != codec.MaxBuffSize {
		t.Fatalf("writer block capacity %d after first round", got)
	}

	mod.SetExitCode(0)
	if err := mod.GetDSI(serviceinfo.DefaultMTU, &kv); err != nil {
		t.Fatal(err)
	}
	if mod.fdow != fdow {
		t.Fatal("writer context was reallocated between rounds")
	}
	if got := fdow.Cap(); got != codec.MaxBuffSize {
		t.Fatalf("writer block capacity %d after second round", got)
	}
}
