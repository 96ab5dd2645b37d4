package tabular

import (
	"testing"

	"github.com/matzehuels/orbital/pkg/errors"
)

func TestUint128Shifts(t *testing.T) {
	one := U128(1)
	tests := []struct {
		name string
		got  Uint128
		want Uint128
	}{
		{"lsh 0", one.Lsh(0), one},
		{"lsh 63", one.Lsh(63), Uint128{Lo: 1 << 63}},
		{"lsh 64", one.Lsh(64), Uint128{Hi: 1}},
		{"lsh 127", one.Lsh(127), Uint128{Hi: 1 << 63}},
		{"lsh 128", one.Lsh(128), Uint128{}},
		{"lsh carries", U128(0xff00000000000000).Lsh(4), Uint128{Hi: 0xf, Lo: 0xf000000000000000}},
		{"rsh 64", Uint128{Hi: 5}.Rsh(64), U128(5)},
		{"rsh carries", Uint128{Hi: 0xf, Lo: 0}.Rsh(4), Uint128{Lo: 0xf000000000000000}},
		{"rsh 200", Uint128{Hi: 1, Lo: 1}.Rsh(200), Uint128{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %+v, want %+v", tt.got, tt.want)
			}
		})
	}
}

func TestUint128Bits(t *testing.T) {
	u := Uint128{Hi: 0xabc, Lo: 0xdef0000000000000}
	if got := u.Bits(60, 8); got != 0xcd {
		t.Errorf("Bits(60, 8) = %#x, want 0xcd", got)
	}
	if got := u.Bits(64, 64); got != 0xabc {
		t.Errorf("Bits(64, 64) = %#x, want 0xabc", got)
	}
}

func TestParseUint128(t *testing.T) {
	tests := []struct {
		in      string
		want    Uint128
		wantErr bool
	}{
		{"0", Uint128{}, false},
		{"18446744073709551615", Uint128{Lo: ^uint64(0)}, false},
		{"18446744073709551616", Uint128{Hi: 1}, false},
		{"340282366920938463463374607431768211455", Uint128{Hi: ^uint64(0), Lo: ^uint64(0)}, false},
		{"340282366920938463463374607431768211456", Uint128{}, true},
		{"", Uint128{}, true},
		{"-1", Uint128{}, true},
		{"+1", Uint128{}, true},
		{"0x10", Uint128{}, true},
		{"1.5", Uint128{}, true},
		{" 1", Uint128{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseUint128(tt.in)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeMalformedTable) {
					t.Errorf("ParseUint128(%q) error = %v, want MALFORMED_TABLE", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseUint128(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseUint128(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
			if s := got.String(); s != tt.in {
				t.Errorf("String() = %q, want %q", s, tt.in)
			}
		})
	}
}

func TestUint128BitLen(t *testing.T) {
	tests := []struct {
		in   Uint128
		want int
	}{
		{Uint128{}, 0},
		{U128(1), 1},
		{U128(^uint64(0)), 64},
		{Uint128{Hi: 1}, 65},
		{Uint128{Hi: 1 << 63}, 128},
	}
	for _, tt := range tests {
		if got := tt.in.BitLen(); got != tt.want {
			t.Errorf("BitLen(%+v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
