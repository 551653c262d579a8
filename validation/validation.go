package validation

import (
	"errors"
	"regexp"
	"time"
)

var (
	// ErrInvalidEmail means the value does not look like local@domain.tld.
	ErrInvalidEmail = errors.New("invalid email format")
	// ErrInvalidDate means the value could not be parsed as a timestamp.
	ErrInvalidDate = errors.New("invalid date format")
	// ErrPastDate means the parsed instant is not strictly in the future.
	ErrPastDate = errors.New("preferred date must be in the future")
)

// emailRegex requires a non-whitespace local part, an "@", and a
// non-whitespace domain containing a literal dot.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// dateLayouts are tried in order when parsing client-supplied timestamps.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ValidateEmail checks the email shape. It is intentionally loose: the goal
// is catching obvious typos, not full RFC 5322 conformance.
func ValidateEmail(value string) error {
	if !emailRegex.MatchString(value) {
		return ErrInvalidEmail
	}
	return nil
}

// ParseDateTime parses a client-supplied timestamp, accepting RFC 3339 and a
// few common unzoned variants (interpreted as UTC).
func ParseDateTime(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

// ValidateFutureDate parses value and requires the instant to be strictly
// after now. Both booking creation and booking update apply this rule.
func ValidateFutureDate(value string, now time.Time) (time.Time, error) {
	t, err := ParseDateTime(value)
	if err != nil {
		return time.Time{}, err
	}
	if !t.After(now) {
		return time.Time{}, ErrPastDate
	}
	return t, nil
}
