package service

import (
	"errors"
	"strings"
	"time"
)

// ErrInvalidDate reports a birth date that is in neither accepted format.
var ErrInvalidDate = errors.New("invalid date format")

// ParseBirthDate accepts exactly two literal formats:
//
//	dd/mm/yyyy  (slash-separated, exactly 3 parts)
//	yyyy-mm-dd  (ISO-like, hyphen-separated)
//
// Anything else, including other separators or a slash date with the parts
// in ISO order, fails with ErrInvalidDate.
func ParseBirthDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)

	if strings.Contains(s, "/") {
		if len(strings.Split(s, "/")) != 3 {
			return time.Time{}, ErrInvalidDate
		}
		t, err := time.Parse("02/01/2006", s)
		if err != nil {
			return time.Time{}, ErrInvalidDate
		}
		return t, nil
	}

	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}
