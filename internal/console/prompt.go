package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	lineWidth = 70

	// maxLineBytes bounds a single input line. Longer lines are consumed
	// and rejected with errInputTooLong.
	maxLineBytes = 1 << 20
)

var errInputTooLong = errors.New("input line too long")

// readLine prints label and returns the next trimmed input line. End of
// input is reported as io.EOF.
func (a *App) readLine(label string) (string, error) {
	if label != "" {
		fmt.Fprint(a.out, label)
	}

	var (
		line    []byte
		tooLong bool
	)
	for {
		chunk, err := a.in.ReadSlice('\n')
		if len(line)+len(chunk) > maxLineBytes {
			tooLong = true
			line = line[:0]
		} else if !tooLong {
			line = append(line, chunk...)
		}

		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if err != nil {
			if errors.Is(err, io.EOF) && (tooLong || len(line) > 0) {
				break
			}
			return "", err
		}
		break
	}

	if tooLong {
		return "", errInputTooLong
	}
	return strings.TrimSpace(string(line)), nil
}

func (a *App) header(title string) {
	bar := strings.Repeat("=", lineWidth)
	pad := (lineWidth - len(title)) / 2
	if pad < 0 {
		pad = 0
	}
	fmt.Fprintf(a.out, "\n%s\n%s%s\n%s\n\n", bar, strings.Repeat(" ", pad), title, bar)
}

func (a *App) rule() {
	fmt.Fprintln(a.out, strings.Repeat("-", lineWidth))
}

func (a *App) ok(format string, args ...any) {
	fmt.Fprintf(a.out, "\n✓ "+format+"\n", args...)
}

func (a *App) fail(format string, args ...any) {
	fmt.Fprintf(a.out, "\n✗ "+format+"\n", args...)
}
