// SPDX-FileCopyrightText: (C) 2025 Intel Corporation
// SPDX-License-Identifier: Apache 2.0

package codec_test

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/fido-device-onboard/go-fdo-sim/codec"
)

func TestWriterSignedIntRoundTrip(t *testing.T) {
	w, err := codec.NewWriter(codec.MaxBuffSize)
	if err != nil {
		t.Fatal(err)
	}
	r, err := codec.NewReader(codec.MaxBuffSize)
	if err != nil {
		t.Fatal(err)
	}

	for _, v := range []int64{0, 1, -1, 7, 42, 255, -256, math.MaxInt64, math.MinInt64} {
		w.Reset()
		if err := w.SignedInt(v); err != nil {
			t.Fatalf("encoding %d: %v", v, err)
		}
		n, err := w.EncodedLen()
		if err != nil {
			t.Fatalf("encoded length of %d: %v", v, err)
		}
		if n == 0 || n != len(w.Bytes()) {
			t.Fatalf("encoded length %d does not match block contents %d", n, len(w.Bytes()))
		}
		if err := r.Load(w.Bytes()); err != nil {
			t.Fatalf("loading encoding of %d: %v", v, err)
		}
		got, err := r.SignedInt()
		if err != nil {
			t.Fatalf("decoding %d: %v", v, err)
		}
		if got != v {
			t.Errorf("round trip of %d produced %d", v, got)
		}
	}
}

func TestWriterFixedCapacity(t *testing.T) {
	w, err := codec.NewWriter(4)
	if err != nil {
		t.Fatal(err)
	}

	// int64 max encodes to 9 bytes, exceeding the 4 byte block
	if err := w.SignedInt(math.MaxInt64); !errors.Is(err, codec.ErrBuffSize) {
		t.Fatalf("expected %v, got %v", codec.ErrBuffSize, err)
	}
	if err := w.SignedInt(42); err != nil {
		t.Fatal(err)
	}
}

func TestWriterResetKeepsAllocation(t *testing.T) {
	w, err := codec.NewWriter(codec.MaxBuffSize)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		w.Reset()
		if err := w.SignedInt(int64(i)); err != nil {
			t.Fatal(err)
		}
		if got := w.Cap(); got != codec.MaxBuffSize {
			t.Fatalf("block capacity changed to %d after reset %d", got, i)
		}
	}
}

func TestWriterWriteBounded(t *testing.T) {
	w, err := codec.NewWriter(8)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write(bytes.Repeat([]byte{0xa5}, 8)); err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte{0x00}); !errors.Is(err, codec.ErrBuffSize) {
		t.Fatalf("expected %v, got %v", codec.ErrBuffSize, err)
	}
	// failed write must not have altered the block
	if n, _ := w.EncodedLen(); n != 8 {
		t.Fatalf("block length %d after failed write", n)
	}
}

func TestReaderLoadBounded(t *testing.T) {
	r, err := codec.NewReader(4)
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Load(bytes.Repeat([]byte{0x00}, 5)); !errors.Is(err, codec.ErrBuffSize) {
		t.Fatalf("expected %v, got %v", codec.ErrBuffSize, err)
	}
}

func TestClosedContexts(t *testing.T) {
	w, err := codec.NewWriter(codec.MaxBuffSize)
	if err != nil {
		t.Fatal(err)
	}
	w.Close()
	if err := w.SignedInt(1); !errors.Is(err, codec.ErrClosed) {
		t.Fatalf("expected %v, got %v", codec.ErrClosed, err)
	}
	if _, err := w.EncodedLen(); !errors.Is(err, codec.ErrClosed) {
		t.Fatalf("expected %v, got %v", codec.ErrClosed, err)
	}

	r, err := codec.NewReader(codec.MaxBuffSize)
	if err != nil {
		t.Fatal(err)
	}
	r.Close()
	if err := r.Load([]byte{0x01}); !errors.Is(err, codec.ErrClosed) {
		t.Fatalf("expected %v, got %v", codec.ErrClosed, err)
	}
}

func TestInvalidBlockSize(t *testing.T) {
	for _, size := range []int{0, -1, codec.MaxBuffSize + 1} {
		if _, err := codec.NewWriter(size); err == nil {
			t.Errorf("NewWriter(%d) did not fail", size)
		}
		if _, err := codec.NewReader(size); err == nil {
			t.Errorf("NewReader(%d) did not fail", size)
		}
	}
}
