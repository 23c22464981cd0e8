package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateAadhaar(t *testing.T) {
	testCases := []struct {
		name    string
		aadhaar string
		want    bool
	}{
		{"valid 12 digits", "123456789012", true},
		{"too short", "12345678901", false},
		{"too long", "1234567890123", false},
		{"letters", "12345678901a", false},
		{"spaces", "1234 5678 9012", false},
		{"empty", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ValidateAadhaar(tc.aadhaar))
		})
	}
}

func TestValidateMobile(t *testing.T) {
	testCases := []struct {
		name   string
		mobile string
		want   bool
	}{
		{"valid 10 digits", "9876543210", true},
		{"too short", "987654321", false},
		{"too long", "98765432100", false},
		{"with country code", "+919876543210", false},
		{"letters", "98765abc10", false},
		{"empty", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ValidateMobile(tc.mobile))
		})
	}
}

func TestParseDOB(t *testing.T) {
	dob, err := ParseDOB("1990-04-12")

	assert.NoError(t, err)
	assert.Equal(t, time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC), dob)
}

func TestParseDOB_WrongFormat(t *testing.T) {
	_, err := ParseDOB("12-04-1990")
	assert.Error(t, err)

	_, err = ParseDOB("1990/04/12")
	assert.Error(t, err)

	_, err = ParseDOB("")
	assert.Error(t, err)
}
