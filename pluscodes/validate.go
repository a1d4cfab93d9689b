package pluscodes

import "strings"

// IsValid reports whether code is a well-formed full or short code.
// Malformed input returns false, never an error.
func IsValid(code string) bool {
	return validLength(code) &&
		validSeparator(code) &&
		validPadding(code) &&
		validCharacters(code)
}

// IsShort reports whether code is valid with leading digits omitted, so
// that a reference location is needed to resolve it.
func IsShort(code string) bool {
	return IsValid(code) && strings.IndexByte(code, separator) < separatorPosition
}

// IsFull reports whether code is valid and carries its complete coordinate
// prefix, starting at the coarsest grid cell.
func IsFull(code string) bool {
	return IsValid(code) && strings.IndexByte(code, separator) == separatorPosition
}

// validLength rejects empty codes and codes with a lone character after
// the separator, a malformed trailing fragment.
func validLength(code string) bool {
	if len(code) < 2 {
		return false
	}
	sep := strings.IndexByte(code, separator)
	return sep < 0 || len(code)-sep-1 != 1
}

func validSeparator(code string) bool {
	sep := strings.IndexByte(code, separator)
	if sep != strings.LastIndexByte(code, separator) {
		return false
	}
	return sep >= 0 && sep%2 == 0 && sep <= separatorPosition
}

// validPadding checks the padding run: it must not start the code, must be
// a single contiguous run of even length of at most six characters, and
// must sit immediately before a separator at position 8 that ends the code.
func validPadding(code string) bool {
	first := strings.IndexByte(code, padding)
	if first < 0 {
		return true
	}
	if first == 0 {
		return false
	}
	last := strings.LastIndexByte(code, padding)
	run := last - first + 1
	if strings.Count(code, string(padding)) != run {
		return false
	}
	if run%2 != 0 || run > separatorPosition-2 {
		return false
	}
	return last == len(code)-2 && code[last+1] == separator && last+1 == separatorPosition
}

func validCharacters(code string) bool {
	for _, r := range strings.ToUpper(code) {
		if r == separator || r == padding {
			continue
		}
		if !strings.ContainsRune(alphabet, r) {
			return false
		}
	}
	return true
}
