package checkout

import (
	"regexp"
	"strings"

	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/domain"
	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/i18n"
)

var (
	phoneRegex = regexp.MustCompile(`^\+[0-9]{1,4}[0-9]{6,14}$`)
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Validate checks required fields first, then the optional email, then the
// phone format. It returns the first *ValidationError found.
func Validate(info domain.CustomerInfo) error {
	switch {
	case blank(info.Customer):
		return &ValidationError{Field: "customer", Key: i18n.KeyFillRequired}
	case blank(info.Phone):
		return &ValidationError{Field: "phone", Key: i18n.KeyFillRequired}
	case blank(info.Address):
		return &ValidationError{Field: "address", Key: i18n.KeyFillRequired}
	}

	if !blank(info.Email) && !emailRegex.MatchString(info.Email) {
		return &ValidationError{Field: "email", Key: i18n.KeyInvalidEmail}
	}
	if !phoneRegex.MatchString(info.Phone) {
		return &ValidationError{Field: "phone", Key: i18n.KeyInvalidPhone}
	}
	return nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
