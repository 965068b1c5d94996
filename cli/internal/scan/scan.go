// Package scan reads the raw output of a static-analysis run as an ordered
// sequence of lines. No structure beyond the line is assumed: blank lines are
// ordinary lines, and nothing in the content is interpreted.
package scan

import (
	"bufio"
	"io"
)

// maxLineSize bounds a single diagnostic line. Analysis tools occasionally
// dump whole source lines into a message, so this is well above the bufio
// default of 64KiB.
const maxLineSize = 4 * 1024 * 1024

// Line is one literal line of diagnostic output. Nr is 1-based and reflects
// arrival order on the stream.
type Line struct {
	Nr   int
	Text string
}

// ReadLines drains r to end-of-stream and returns every line in order.
// A trailing newline does not produce an extra empty line; a final line
// without a newline is still returned. Returns nil for empty input.
func ReadLines(r io.Reader) ([]Line, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineSize)
	var lines []Line
	nr := 0
	for sc.Scan() {
		nr++
		lines = append(lines, Line{Nr: nr, Text: sc.Text()})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
