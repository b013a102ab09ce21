package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

// IsLuhn reports whether s is a valid card number. goluhn treats the
// empty string as a valid checksum, so it is rejected up front.
func IsLuhn(s string) bool {
	if s == "" {
		return false
	}
	return goluhn.Validate(s) == nil
}
