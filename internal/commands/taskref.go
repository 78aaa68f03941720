package commands

import (
	"strconv"
	"strings"
	"unicode"

	"tasker/internal/task"
)

// ParseChoice parses a menu choice. Input that is not a number maps to 0,
// which no action is registered under.
func ParseChoice(input string) int {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0
	}
	return n
}

// ParseTaskNumber converts a 1-based task number typed by the user into a
// 0-based list index. Anything that is not a positive decimal number yields
// task.ErrInvalidIndex. The result is not checked against the list length;
// the list does that.
func ParseTaskNumber(input string) (int, error) {
	input = strings.TrimSpace(input)
	if !isAllDigits(input) {
		return 0, task.ErrInvalidIndex
	}
	num, err := strconv.Atoi(input)
	if err != nil || num < 1 {
		return 0, task.ErrInvalidIndex
	}
	return num - 1, nil
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
