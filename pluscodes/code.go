package pluscodes

import (
	"errors"
	"math"
)

// Format constants shared by all Open Location Code implementations. These
// are the wire contract: changing any of them breaks interoperability.
const (
	alphabet          = "23456789CFGHJMPQRVWX"
	separator         = '+'
	padding           = '0'
	separatorPosition = 8
	pairCodeLength    = 10

	encodingBase = 20
	latitudeMax  = 90
	longitudeMax = 180

	// Sub-grid dimensions for digits past the tenth.
	gridColumns = 4
	gridRows    = 5

	// snapEpsilon bounds how far a scaled coordinate may drift from an
	// integer cell boundary before it is treated as exactly on it.
	// Cross-implementation bit-exactness depends on this value.
	snapEpsilon = 1e-10

	// shortenGate is the fraction of a cell's size within which a
	// reference point qualifies a prefix for removal.
	shortenGate = 0.3
)

var (
	ErrCodeLength   = errors.New("pluscodes: invalid code length")
	ErrNotFullCode  = errors.New("pluscodes: not a valid full code")
	ErrNotShortCode = errors.New("pluscodes: not a valid short code")
	ErrPaddedCode   = errors.New("pluscodes: padded codes cannot be shortened")
)

func clipLatitude(latitude float64) float64 {
	return math.Min(latitudeMax, math.Max(-latitudeMax, latitude))
}

func normalizeLongitude(longitude float64) float64 {
	for longitude < -longitudeMax {
		longitude += 2 * longitudeMax
	}
	for longitude >= longitudeMax {
		longitude -= 2 * longitudeMax
	}
	return longitude
}

// latitudePrecision returns the height in degrees of a cell addressed by
// codeLength digits.
func latitudePrecision(codeLength int) float64 {
	if codeLength <= pairCodeLength {
		return math.Pow(encodingBase, math.Floor(float64(codeLength)/-2+2))
	}
	return math.Pow(encodingBase, -3) / math.Pow(gridRows, float64(codeLength-pairCodeLength))
}

// snapNearInteger rounds values within snapEpsilon of an integer to that
// integer, so a point sitting on a cell boundary is not assigned to the
// wrong cell by accumulated float error.
func snapNearInteger(v float64) float64 {
	r := math.Round(v)
	if math.Abs(v-r) < snapEpsilon {
		return r
	}
	return v
}
