package adapter

import (
	"bufio"
	"strconv"
	"strings"

	"fortio.org/safecast"
)

// forEachLine feeds raw text to fn one line at a time. Each line is
// evaluated independently; no state crosses lines.
func forEachLine(raw string, fn func(line string)) {
	sc := bufio.NewScanner(strings.NewReader(raw))
	// Checker reports can carry long snippet lines.
	buf := make([]byte, 0, 64*1024)
	sc.Buffer(buf, 1024*1024)
	for sc.Scan() {
		fn(sc.Text())
	}
	// A scanner error here means a line over the buffer limit; treated the
	// same as any other unrecognized input.
}

// parseLineNumber converts a raw line-number field. Returns false for
// anything that is not a positive integer; callers skip such lines rather
// than fabricating a default.
func parseLineNumber(field string) (uint32, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(field))
	if err != nil || n < 1 {
		return 0, false
	}
	line, err := safecast.Conv[uint32](n)
	if err != nil {
		return 0, false
	}
	return line, true
}
