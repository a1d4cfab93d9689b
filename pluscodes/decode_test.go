package pluscodes

import (
	"errors"
	"math"
	"testing"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		code                     string
		south, west, north, east float64
	}{
		{"7FG49Q00+", 20.35, 2.75, 20.4, 2.8},
		{"7FG49QCJ+2V", 20.37, 2.782125, 20.370125, 2.78225},
		{"7FG49QCJ+2VX", 20.3701, 2.78221875, 20.370125, 2.78225},
		{"8FVC2222+22", 47.0, 8.0, 47.000125, 8.000125},
		{"6FH32222+222", 1.0, 1.0, 1.000025, 1.00003125},
		{"7FG40000+", 20.0, 2.0, 21.0, 3.0},
		{"62G20000+", 0.0, -180.0, 1.0, -179.0},
		{"7fg49q00+", 20.35, 2.75, 20.4, 2.8}, // case-insensitive
	}
	const tolerance = 1e-10
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			area, err := Decode(tt.code)
			if err != nil {
				t.Fatalf("Decode(%q) failed: %v", tt.code, err)
			}
			checks := []struct {
				name      string
				got, want float64
			}{
				{"south", area.SouthLatitude, tt.south},
				{"west", area.WestLongitude, tt.west},
				{"north", area.NorthLatitude(), tt.north},
				{"east", area.EastLongitude(), tt.east},
			}
			for _, c := range checks {
				if math.Abs(c.got-c.want) > tolerance {
					t.Errorf("Decode(%q) %s = %v, want %v", tt.code, c.name, c.got, c.want)
				}
			}
		})
	}
}

func TestDecode_NotFull(t *testing.T) {
	for _, code := range []string{"XJH4+HF", "+HF", "8FWC2345+G", "", "not a code"} {
		if _, err := Decode(code); !errors.Is(err, ErrNotFullCode) {
			t.Errorf("Decode(%q): got %v, want ErrNotFullCode", code, err)
		}
	}
}

func TestMustDecodePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustDecode on a short code did not panic")
		}
	}()
	MustDecode("XJH4+HF")
}
