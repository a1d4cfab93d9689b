package pluscodes

import (
	"fmt"

	"github.com/mmcloughlin/geohash"
)

// ToGeohash returns the geohash of a full code's center, at chars
// characters of geohash precision.
func ToGeohash(code string, chars uint) (string, error) {
	area, err := Decode(code)
	if err != nil {
		return "", err
	}
	return geohash.EncodeWithPrecision(area.LatitudeCenter(), area.LongitudeCenter(), chars), nil
}

// FromGeohash encodes the center of a geohash cell as a code of codeLength
// digits.
func FromGeohash(hash string, codeLength int) (string, error) {
	if err := geohash.Validate(hash); err != nil {
		return "", fmt.Errorf("pluscodes: %w", err)
	}
	lat, lon := geohash.DecodeCenter(hash)
	return EncodeWithLength(lat, lon, codeLength)
}
