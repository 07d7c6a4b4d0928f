package booking

import (
	"errors"
	"regexp"
	"time"
)

var ErrInvalidBookingDate = errors.New("booking_date must be YYYY-MM-DD")

var bookingDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

const dateLayout = "2006-01-02"

// ParseBookingDate returns today's date for an empty input.
func ParseBookingDate(s string, now time.Time) (time.Time, error) {
	if s == "" {
		y, m, d := now.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	if !bookingDatePattern.MatchString(s) {
		return time.Time{}, ErrInvalidBookingDate
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidBookingDate
	}
	return t, nil
}

func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}
