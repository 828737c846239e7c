package utils

import (
	"math/big"
	"testing"

	"rsatoolkit/src/types"
)

func TestParseHexIntValid(t *testing.T) {
	v, err := ParseHexInt("E", "0x10001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := big.NewInt(65537); v.Cmp(want) != 0 {
		t.Fatalf("got %s, want %s", v, want)
	}

	if v, err := ParseHexInt("N", "0XFF"); err != nil || v.Cmp(big.NewInt(255)) != 0 {
		t.Fatalf("uppercase prefix: got %v, %v", v, err)
	}
}

func TestParseHexIntRejectsMalformed(t *testing.T) {
	cases := []string{"123", "0xAB ", "0x", "xyz", "-0x1", "0y1"}
	for _, c := range cases {
		if _, err := ParseHexInt("X", c); err == nil {
			t.Errorf("expected error for %q, got nil", c)
		} else if !types.IsValidation(err) {
			t.Errorf("expected ValidationError for %q, got %v", c, err)
		}
	}
}

func TestParseHexModulusRejectsZero(t *testing.T) {
	if _, err := ParseHexModulus("N", "0x0"); err == nil {
		t.Fatalf("expected error for N=0, got nil")
	}
}

func TestFormatHexLowercase(t *testing.T) {
	v, _ := new(big.Int).SetString("C1", 16)
	if got, want := FormatHex(v), "0xc1"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFormatHexLine(t *testing.T) {
	got := FormatHexLine(big.NewInt(13), big.NewInt(15))
	if want := "0xd 0xf"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
