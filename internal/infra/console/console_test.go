package console

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestTerminalReadLine(t *testing.T) {
	term := New(strings.NewReader("first\r\n  second  \nlast"), io.Discard)

	for _, want := range []string{"first", "  second  ", "last"} {
		got, err := term.ReadLine()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	}

	if _, err := term.ReadLine(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestTerminalEmptyLine(t *testing.T) {
	term := New(strings.NewReader("\n"), io.Discard)

	got, err := term.ReadLine()
	if err != nil || got != "" {
		t.Fatalf("expected empty line, got %q err=%v", got, err)
	}
	if _, err := term.ReadLine(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestTerminalWrite(t *testing.T) {
	var buf bytes.Buffer
	term := New(strings.NewReader(""), &buf)

	if err := term.Write("Plain Text: "); err != nil {
		t.Fatal(err)
	}
	if err := term.WriteLine("ok"); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "Plain Text: ok\n" {
		t.Fatalf("unexpected output %q", buf.String())
	}
}
