// Package clip copies the picked color out of the terminal.
package clip

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	atotto "github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
	"golang.org/x/term"

	apperrors "github.com/alexisbeaulieu97/huepick/pkg/errors"
)

// Method names how the text was made available.
type Method string

const (
	MethodNative Method = "native" // system clipboard
	MethodOSC52  Method = "osc52"  // terminal clipboard escape sequence
	MethodFile   Method = "file"   // temp file fallback
)

// Result reports where the text went.
type Result struct {
	Method   Method
	FilePath string // only set for MethodFile
}

// Color values are a few bytes; anything larger is not ours.
const osc52LimitBytes = 1024

var (
	nativeWriteAll = atotto.WriteAll
	osc52WriteAll  = func(text string) error { return writeOSC52(os.Stderr, text) }
	tempDir        = os.TempDir
)

// WriteAll copies text to the system clipboard, falling back to the
// terminal's OSC52 clipboard and finally to a temp file.
func WriteAll(text string) (Result, error) {
	if text == "" {
		return Result{}, apperrors.NewClipboardError("", errors.New("nothing to copy"))
	}

	if err := nativeWriteAll(text); err == nil {
		return Result{Method: MethodNative}, nil
	}

	if err := osc52WriteAll(text); err == nil {
		return Result{Method: MethodOSC52}, nil
	}

	path, err := writeTempFile(text)
	if err != nil {
		return Result{}, apperrors.NewClipboardError(string(MethodFile), err)
	}
	return Result{Method: MethodFile, FilePath: path}, nil
}

// fder is satisfied by *os.File.
type fder interface {
	Fd() uintptr
}

func writeOSC52(w io.Writer, text string) error {
	f, ok := w.(fder)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return errors.New("output is not a terminal")
	}
	if len(text) > osc52LimitBytes {
		return fmt.Errorf("text too large for OSC52 (%d bytes > %d)", len(text), osc52LimitBytes)
	}

	return writeSequence(w, text)
}

// writeSequence emits the whole escape sequence in a single Write. The TUI
// renderer draws on the same stream from its own goroutine and *os.File
// serializes Write calls, so a frame never lands inside the sequence.
func writeSequence(w io.Writer, text string) error {
	seq := osc52.New(text).Limit(osc52LimitBytes)
	switch {
	case os.Getenv("TMUX") != "":
		seq = seq.Tmux()
	case os.Getenv("STY") != "":
		seq = seq.Screen()
	}

	_, err := io.WriteString(w, seq.String())
	return err
}

func writeTempFile(text string) (path string, err error) {
	f, err := os.CreateTemp(tempDir(), "huepick-color-*.txt")
	if err != nil {
		return "", err
	}
	path = f.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	if _, err = f.WriteString(text + "\n"); err != nil {
		_ = f.Close()
		return "", err
	}
	if err = f.Close(); err != nil {
		return "", err
	}
	return filepath.Clean(path), nil
}
