package alert

import (
	"errors"
	"strings"
)

var (
	ErrPhoneTooShort = errors.New("alert: phone number must have at least 10 digits")
	ErrPhoneTooLong  = errors.New("alert: phone number must have at most 15 digits")
	ErrPhoneInvalid  = errors.New("alert: phone number contains invalid characters")
)

// NormalizePhone validates a user-entered recipient number and converts it to
// E.164-ish form: digits only, leading "+". Separators commonly pasted from
// contact apps are tolerated; anything else is rejected before persistence.
func NormalizePhone(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "+")

	var digits strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits.WriteRune(r)
		case r == ' ' || r == '-' || r == '(' || r == ')' || r == '.':
			// separator, drop
		default:
			return "", ErrPhoneInvalid
		}
	}

	n := digits.Len()
	if n < 10 {
		return "", ErrPhoneTooShort
	}
	if n > 15 {
		return "", ErrPhoneTooLong
	}
	return "+" + digits.String(), nil
}
