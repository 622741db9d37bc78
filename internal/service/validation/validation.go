package validation

import (
	"fmt"
	"regexp"
	"strconv"

	"lane_wars/domain"
)

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)

func ValidateEmail(email string) bool {
	return len(email) <= 255 && emailPattern.MatchString(email)
}

func ValidatePassword(password string) bool {
	return len(password) > 0 && len(password) <= 72
}

// ParseID converts a path id to a positive int64.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid id %q", domain.ErrValidation, raw)
	}
	return id, nil
}
