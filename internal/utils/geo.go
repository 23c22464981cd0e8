package utils

import (
	"github.com/mmcloughlin/geohash"
)

// GeohashPrecision is the number of geohash characters stored for a report
// geotag. 8 characters resolve to roughly a city block.
const GeohashPrecision = 8

// EncodeGeotag converts report coordinates to a geohash string
func EncodeGeotag(latitude, longitude float64) string {
	return geohash.EncodeWithPrecision(latitude, longitude, GeohashPrecision)
}

// DecodeGeotag converts a geohash string back to coordinates
func DecodeGeotag(hash string) (latitude, longitude float64) {
	return geohash.Decode(hash)
}

// ValidCoordinates reports whether latitude/longitude form a real point
func ValidCoordinates(latitude, longitude float64) bool {
	return latitude >= -90 && latitude <= 90 && longitude >= -180 && longitude <= 180
}
