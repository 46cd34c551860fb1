package save

import (
	"strconv"
	"strings"
)

// LineEnding is the line terminator the game writes.
const LineEnding = "\r\n"

// SplitLines splits file content into lines. Both "\n" and "\r\n" end a
// line, and a final terminator does not produce an extra empty line.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// JoinLines renders lines the way the game writes them.
func JoinLines(lines []string) string {
	return strings.Join(lines, LineEnding)
}

// FormatInt renders an integer field. The game writes numbers followed by a
// single space.
func FormatInt[T ~int | ~int32 | ~int64](v T) string {
	return strconv.FormatInt(int64(v), 10) + " "
}

// FormatFloat renders a float field with the shortest representation that
// reads back to the same float32.
func FormatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32) + " "
}

// FormatBool renders a boolean field.
func FormatBool(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
