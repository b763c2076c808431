package term

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var errMoveSyntax = errors.New("expected two integers: row col")

// ParseMove reads "row col" from a line. Commas count as spaces.
func ParseMove(line string) (row, col int, err error) {
	fields := strings.Fields(strings.ReplaceAll(line, ",", " "))
	if len(fields) != 2 {
		return 0, 0, errMoveSyntax
	}
	if row, err = strconv.Atoi(fields[0]); err != nil {
		return 0, 0, fmt.Errorf("%w: row %q", errMoveSyntax, fields[0])
	}
	if col, err = strconv.Atoi(fields[1]); err != nil {
		return 0, 0, fmt.Errorf("%w: col %q", errMoveSyntax, fields[1])
	}
	return row, col, nil
}

// lineReader feeds lines from r to a channel so reads can be abandoned when
// the session's context ends.
type lineReader struct {
	lines chan string
	err   error
}

func readLines(ctx context.Context, r io.Reader) *lineReader {
	lr := &lineReader{lines: make(chan string)}
	go func() {
		defer close(lr.lines)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			select {
			case lr.lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		lr.err = sc.Err()
	}()
	return lr
}

// next returns the next line, io.ErrUnexpectedEOF once input runs out, or the
// context's error.
func (lr *lineReader) next(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-lr.lines:
		if ok {
			return line, nil
		}
		if lr.err != nil {
			return "", fmt.Errorf("read move: %w", lr.err)
		}
		return "", io.ErrUnexpectedEOF
	}
}
