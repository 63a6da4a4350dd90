package utils

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
)

// FormatBytes formats byte counts into human-readable strings
func FormatBytes(bytes int64) string {
	if bytes < 0 {
		return fmt.Sprintf("%d B", bytes)
	}
	return humanize.IBytes(uint64(bytes))
}

// DecodeText returns data as a string if it is valid UTF-8.
// The error names the offset of the first invalid sequence.
func DecodeText(data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}

	offset := 0
	for offset < len(data) {
		r, size := utf8.DecodeRune(data[offset:])
		if r == utf8.RuneError && size <= 1 {
			break
		}
		offset += size
	}
	return "", fmt.Errorf("stream did not contain valid UTF-8 (invalid byte at offset %d)", offset)
}

// Digits returns the number of decimal digits needed to print n
func Digits(n int64) int {
	if n < 0 {
		return len(strconv.FormatInt(n, 10))
	}
	digits := 1
	for n >= 10 {
		n /= 10
		digits++
	}
	return digits
}
