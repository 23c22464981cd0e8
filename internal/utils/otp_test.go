package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOTP_Length(t *testing.T) {
	code, err := GenerateOTP()

	require.NoError(t, err)
	assert.Len(t, code, OTPLength)
	for _, r := range code {
		assert.True(t, r >= '0' && r <= '9', "OTP must be numeric, got %q", code)
	}
}

func TestGenerateOTP_ZeroPadding(t *testing.T) {
	// Small values must come out zero padded to the full length
	for i := 0; i < 100; i++ {
		code, err := GenerateOTP()
		require.NoError(t, err)
		require.Len(t, code, OTPLength)
	}
}

func TestGenerateOTP_Varies(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code, err := GenerateOTP()
		require.NoError(t, err)
		seen[code] = true
	}

	// 50 draws from a million-value space collapsing to one code would
	// mean a broken source
	assert.Greater(t, len(seen), 1)
}
