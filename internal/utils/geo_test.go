package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeGeotag(t *testing.T) {
	hash := EncodeGeotag(12.9716, 77.5946)

	assert.Len(t, hash, GeohashPrecision)

	lat, lon := DecodeGeotag(hash)
	assert.InDelta(t, 12.9716, lat, 0.001)
	assert.InDelta(t, 77.5946, lon, 0.001)
}

func TestValidCoordinates(t *testing.T) {
	assert.True(t, ValidCoordinates(12.9716, 77.5946))
	assert.True(t, ValidCoordinates(-90, -180))
	assert.True(t, ValidCoordinates(90, 180))
	assert.True(t, ValidCoordinates(0, 0))

	assert.False(t, ValidCoordinates(90.1, 0))
	assert.False(t, ValidCoordinates(-90.1, 0))
	assert.False(t, ValidCoordinates(0, 180.1))
	assert.False(t, ValidCoordinates(0, -180.1))
}
