package pluscodes

import (
	"fmt"
	"math"
	"strings"
)

// Shorten removes as many leading digits from a full code as the reference
// location allows, in tiers of eight, six and four characters. The
// reference must sit within a fraction of the removed prefix's cell size
// of the code's center for a tier to apply; otherwise the next tier is
// tried, and the code is returned unchanged when none qualifies. Padded
// codes cannot be shortened and return ErrPaddedCode.
func Shorten(code string, refLatitude, refLongitude float64) (string, error) {
	if !IsFull(code) {
		return "", fmt.Errorf("%w: %q", ErrNotFullCode, code)
	}
	if strings.ContainsRune(code, padding) {
		return "", fmt.Errorf("%w: %q", ErrPaddedCode, code)
	}
	area, err := Decode(code)
	if err != nil {
		return "", err
	}

	refLat := clipLatitude(refLatitude)
	refLon := normalizeLongitude(refLongitude)
	diff := math.Max(
		math.Abs(refLat-area.LatitudeCenter()),
		math.Abs(refLon-area.LongitudeCenter()),
	)

	code = strings.ToUpper(code)
	for _, removed := range []int{8, 6, 4} {
		if diff < latitudePrecision(removed)*shortenGate {
			return code[removed:], nil
		}
	}
	return code, nil
}

// MustShorten is Shorten but panics on invalid input.
func MustShorten(code string, refLatitude, refLongitude float64) string {
	short, err := Shorten(code, refLatitude, refLongitude)
	if err != nil {
		panic(err)
	}
	return short
}

// RecoverNearest resolves a short code against a reference location,
// returning the full code of the matching cell nearest the reference.
// Full codes pass through unchanged (uppercased); anything that is neither
// short nor full returns ErrNotShortCode.
func RecoverNearest(code string, refLatitude, refLongitude float64) (string, error) {
	if IsFull(code) {
		return strings.ToUpper(code), nil
	}
	if !IsShort(code) {
		return "", fmt.Errorf("%w: %q", ErrNotShortCode, code)
	}

	refLat := clipLatitude(refLatitude)
	refLon := normalizeLongitude(refLongitude)

	short := strings.ToUpper(code)
	prefixLen := separatorPosition - strings.IndexByte(short, separator)

	// Cell size of the omitted prefix, in degrees.
	resolution := math.Pow(encodingBase, float64(2-prefixLen/2))
	halfResolution := resolution / 2

	candidate := Encode(refLat, refLon)[:prefixLen] + short
	area, err := Decode(candidate)
	if err != nil {
		return "", err
	}

	latCenter := area.LatitudeCenter()
	lonCenter := area.LongitudeCenter()

	// Nudge each axis one cell toward the reference when the reference
	// sits more than half a cell away. Latitude stays inside the poles;
	// longitude relies on wraparound at encode time.
	if refLat+halfResolution < latCenter && latCenter-resolution >= -latitudeMax {
		latCenter -= resolution
	} else if refLat-halfResolution > latCenter && latCenter+resolution <= latitudeMax {
		latCenter += resolution
	}
	if refLon+halfResolution < lonCenter {
		lonCenter -= resolution
	} else if refLon-halfResolution > lonCenter {
		lonCenter += resolution
	}

	return EncodeWithLength(latCenter, lonCenter, len(candidate)-1)
}

// MustRecoverNearest is RecoverNearest but panics on invalid input.
func MustRecoverNearest(code string, refLatitude, refLongitude float64) string {
	full, err := RecoverNearest(code, refLatitude, refLongitude)
	if err != nil {
		panic(err)
	}
	return full
}
