package utils

import (
	"regexp"
	"time"
)

var (
	aadhaarPattern = regexp.MustCompile(`^\d{12}$`)
	mobilePattern  = regexp.MustCompile(`^\d{10}$`)
)

// dobLayout is the accepted date-of-birth format
const dobLayout = "2006-01-02"

// ValidateAadhaar reports whether s is a well-formed 12-digit Aadhaar number
func ValidateAadhaar(s string) bool {
	return aadhaarPattern.MatchString(s)
}

// ValidateMobile reports whether s is a well-formed 10-digit mobile number
func ValidateMobile(s string) bool {
	return mobilePattern.MatchString(s)
}

// ParseDOB parses a YYYY-MM-DD date-of-birth string
func ParseDOB(s string) (time.Time, error) {
	return time.Parse(dobLayout, s)
}
