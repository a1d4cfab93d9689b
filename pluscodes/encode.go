package pluscodes

import (
	"fmt"
	"math"
	"strings"
)

// Encode returns the standard 10-digit code for the location. Latitude is
// clipped to [-90,90] and longitude normalized into [-180,180).
func Encode(latitude, longitude float64) string {
	code, _ := EncodeWithLength(latitude, longitude, pairCodeLength)
	return code
}

// EncodeWithLength returns a code of codeLength significant digits for the
// location. codeLength must be at least 2 and, below 10, even; lengths
// above 10 append sub-grid digits and may be odd. Anything else returns
// ErrCodeLength.
func EncodeWithLength(latitude, longitude float64, codeLength int) (string, error) {
	if codeLength < 2 || (codeLength < pairCodeLength && codeLength%2 == 1) {
		return "", fmt.Errorf("%w: %d", ErrCodeLength, codeLength)
	}

	lat := clipLatitude(latitude)
	lon := normalizeLongitude(longitude)
	if lat == latitudeMax {
		// The pole sits on the upper edge of the grid; step south into
		// the last addressable cell at this precision.
		lat -= latitudePrecision(codeLength)
	}

	digits := make([]byte, 0, codeLength)

	// Positions within the current cell, in units of the next subdivision.
	latVal := (lat + latitudeMax) / encodingBase
	lonVal := (lon + longitudeMax) / encodingBase

	pairs := codeLength
	if pairs > pairCodeLength {
		pairs = pairCodeLength
	}
	for i := 0; i < pairs/2; i++ {
		latVal = snapNearInteger(latVal)
		lonVal = snapNearInteger(lonVal)
		latDigit := math.Min(math.Floor(latVal), encodingBase-1)
		lonDigit := math.Min(math.Floor(lonVal), encodingBase-1)
		digits = append(digits, alphabet[int(latDigit)], alphabet[int(lonDigit)])
		latVal = (latVal - latDigit) * encodingBase
		lonVal = (lonVal - lonDigit) * encodingBase
	}

	if codeLength > pairCodeLength {
		// Back to fractions of the final pair cell, then refine on the
		// 4x5 sub-grid one character per digit.
		latVal /= encodingBase
		lonVal /= encodingBase
		for i := pairCodeLength; i < codeLength; i++ {
			latVal = snapNearInteger(latVal * gridRows)
			lonVal = snapNearInteger(lonVal * gridColumns)
			row := math.Min(math.Floor(latVal), gridRows-1)
			col := math.Min(math.Floor(lonVal), gridColumns-1)
			digits = append(digits, alphabet[int(row)*gridColumns+int(col)])
			latVal -= row
			lonVal -= col
		}
	}

	if len(digits) >= separatorPosition {
		return string(digits[:separatorPosition]) + string(separator) + string(digits[separatorPosition:]), nil
	}
	return string(digits) +
		strings.Repeat(string(padding), separatorPosition-len(digits)) +
		string(separator), nil
}

// MustEncode is EncodeWithLength but panics on an invalid code length.
func MustEncode(latitude, longitude float64, codeLength int) string {
	code, err := EncodeWithLength(latitude, longitude, codeLength)
	if err != nil {
		panic(err)
	}
	return code
}
