// SPDX-FileCopyrightText: (C) 2025 Intel Corporation
// SPDX-License-Identifier: Apache 2.0

/*
Package sim implements the device side of the fdo.download and
fdo.command service info modules: reporting download completion and
command exit codes to the owner service during TO2.

The module is driven by the protocol orchestrator through the
serviceinfo.DeviceSIM call order. It owns one session's worth of state
at a time: the fetch-tracking triple, the pending message kind, and a
pair of codec contexts with fixed-capacity backing blocks reused every
round. Every exit path, success or failure, funnels through End so that
no session state survives into the next session.
*/
package sim

import (
	"context"
	"log/slog"
)

func debugEnabled() bool {
	return slog.Default().Enabled(context.Background(), slog.LevelDebug)
}

// FetchStatus is the outcome of the most recent file transfer. The
// zero value is FetchFailure, which is also the value every session
// starts and ends with.
type FetchStatus uint8

const (
	// FetchFailure means no transfer has completed successfully.
	FetchFailure FetchStatus = iota

	// FetchSuccess means the last transfer completed and its byte
	// count is reportable.
	FetchSuccess

	// FetchPending means a transfer is in progress.
	FetchPending
)

func (s FetchStatus) String() string {
	switch s {
	case FetchFailure:
		return "failure"
	case FetchSuccess:
		return "success"
	case FetchPending:
		return "pending"
	}
	return "invalid"
}
