// SPDX-FileCopyrightText: (C) 2025 Intel Corporation
// SPDX-License-Identifier: Apache 2.0

// Package simtest contains test harnesses for driving a device service
// info module the way the protocol orchestrator would.
package simtest

import (
	"bytes"
	"io"
	"log/slog"
	"testing"
)

// TestingLog creates a testing logger.
func TestingLog(t *testing.T) io.Writer { return (*errorLog)(t) }

type errorLog testing.T

// Write implements io.Writer.
func (t *errorLog) Write(p []byte) (int, error) {
	(*testing.T)(t).Helper()
	t.Log(string(bytes.TrimSpace(p)))
	return len(p), nil
}

// CaptureSlog routes the default logger through t.Log at debug level
// for the duration of the test.
func CaptureSlog(t *testing.T) {
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(TestingLog(t), &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })
}
