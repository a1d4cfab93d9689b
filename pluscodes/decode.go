package pluscodes

import (
	"fmt"
	"strings"
)

// Decode returns the area a full code addresses. Short or otherwise
// invalid codes return ErrNotFullCode.
func Decode(code string) (CodeArea, error) {
	if !IsFull(code) {
		return CodeArea{}, fmt.Errorf("%w: %q", ErrNotFullCode, code)
	}
	digits := stripCode(code)

	var (
		south  float64 = -latitudeMax
		west   float64 = -longitudeMax
		height float64 = encodingBase * encodingBase
		width  float64 = encodingBase * encodingBase
	)
	for i := 0; i < len(digits); {
		if i < pairCodeLength {
			height /= encodingBase
			width /= encodingBase
			south += height * float64(strings.IndexByte(alphabet, digits[i]))
			west += width * float64(strings.IndexByte(alphabet, digits[i+1]))
			i += 2
		} else {
			height /= gridRows
			width /= gridColumns
			d := strings.IndexByte(alphabet, digits[i])
			south += height * float64(d/gridColumns)
			west += width * float64(d%gridColumns)
			i++
		}
	}
	return NewCodeArea(south, west, height, width), nil
}

// MustDecode is Decode but panics on anything that is not a full code.
func MustDecode(code string) CodeArea {
	area, err := Decode(code)
	if err != nil {
		panic(err)
	}
	return area
}

// stripCode uppercases a code and drops the separator and any padding,
// leaving only significant digits.
func stripCode(code string) string {
	code = strings.ToUpper(code)
	code = strings.ReplaceAll(code, string(separator), "")
	return strings.ReplaceAll(code, string(padding), "")
}
