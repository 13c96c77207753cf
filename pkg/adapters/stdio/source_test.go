package stdio

import (
	"context"
	"io"
	"strings"
	"testing"
)

func TestReadLine(t *testing.T) {
	src := New(strings.NewReader("first\nsecond\r\nthird"))
	ctx := context.Background()

	for i, want := range []string{"first", "second", "third"} {
		got, err := src.ReadLine(ctx)
		if err != nil {
			t.Fatalf("ReadLine() #%d error: %v", i, err)
		}
		if got != want {
			t.Errorf("ReadLine() #%d = %q, want %q", i, got, want)
		}
	}

	// Exhausted source reports end of input.
	if _, err := src.ReadLine(ctx); err != io.EOF {
		t.Errorf("ReadLine() after exhaustion = %v, want io.EOF", err)
	}
}

func TestReadLineEmptyInput(t *testing.T) {
	src := New(strings.NewReader(""))
	if _, err := src.ReadLine(context.Background()); err != io.EOF {
		t.Errorf("ReadLine() on empty input = %v, want io.EOF", err)
	}
}

func TestReadLineCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := New(strings.NewReader("pending\n"))
	if _, err := src.ReadLine(ctx); err != context.Canceled {
		t.Errorf("ReadLine() with canceled ctx = %v, want context.Canceled", err)
	}
}

type closeCounter struct {
	io.Reader
	closes int
}

func (c *closeCounter) Close() error {
	c.closes++
	return nil
}

func TestCloseClosesOwnedReader(t *testing.T) {
	cc := &closeCounter{Reader: strings.NewReader("x\n")}
	src := New(cc)
	if err := src.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	if cc.closes != 1 {
		t.Errorf("underlying reader closed %d times, want 1", cc.closes)
	}
}

func TestCloseIgnoresPlainReader(t *testing.T) {
	src := New(strings.NewReader("x\n"))
	if err := src.Close(); err != nil {
		t.Errorf("Close() on plain reader = %v, want nil", err)
	}
}
