package objcli

import (
	"io"
	"regexp"
)

// SeekerLength calculates the number of bytes in the given seeker, leaving the cursor where it found it.
func SeekerLength(seeker io.Seeker) (int64, error) {
	cur, err := seeker.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, err
	}

	end, err := seeker.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}

	_, err = seeker.Seek(cur, io.SeekStart)
	if err != nil {
		return 0, err
	}

	return end - cur, nil
}

// ShouldIgnore returns a boolean indicating whether an object with the given key should be skipped during iteration,
// due to the provided include/exclude filtering.
func ShouldIgnore(key string, include, exclude []*regexp.Regexp) bool {
	return (include != nil && !matchAny(include, key)) || (exclude != nil && matchAny(exclude, key))
}

// matchAny returns a boolean indicating whether the given key matches any of the provided expressions.
func matchAny(expressions []*regexp.Regexp, key string) bool {
	for _, expression := range expressions {
		if expression.MatchString(key) {
			return true
		}
	}

	return false
}
