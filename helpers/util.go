package helpers

import (
	"errors"
	"strings"
)

func GetSplitPart(target string, separate string, index int) (string, error) {
	parts := strings.Split(target, separate)
	if index >= len(parts) {
		return "", errors.New("index out of range")
	}
	return parts[index], nil
}

// SplitFirst splits target at the first occurrence of separate.
// When the separator is absent the whole string is returned as the
// first part and the second part is empty.
func SplitFirst(target string, separate string) (string, string) {
	parts := strings.SplitN(target, separate, 2)
	if len(parts) < 2 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}
