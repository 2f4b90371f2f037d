package system

import (
	"math"
	"testing"
)

func TestWarningAlphas(t *testing.T) {
	cases := []struct {
		name        string
		progress    float64
		wantFill    uint8
		wantOutline uint8
	}{
		{"start", 0, 25, 255},
		{"quarter", 0.25, 18, 191},
		{"half", 0.5, 12, 127},
		{"end", 1, 0, 0},
		{"past_end", 1.7, 0, 0},
		{"before_start", -0.5, 37, 255},
		{"far_before_start", -100, 255, 255},
		{"nan", math.NaN(), 0, 0},
		{"inf", math.Inf(1), 0, 0},
		{"neg_inf", math.Inf(-1), 255, 255},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			fill, outline := WarningAlphas(c.progress)
			if fill != c.wantFill || outline != c.wantOutline {
				t.Fatalf("WarningAlphas(%v) = (%d, %d), want (%d, %d)", c.progress, fill, outline, c.wantFill, c.wantOutline)
			}
		})
	}
}

func TestWarningAlphasNonIncreasing(t *testing.T) {
	prevFill, prevOutline := WarningAlphas(-0.2)
	for i := -19; i <= 140; i++ {
		fill, outline := WarningAlphas(float64(i) / 100)
		if fill > prevFill || outline > prevOutline {
			t.Fatalf("alpha increased at progress %.2f: fill %d->%d outline %d->%d", float64(i)/100, prevFill, fill, prevOutline, outline)
		}
		prevFill, prevOutline = fill, outline
	}
}
