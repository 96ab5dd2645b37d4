package tabular

import (
	"math/big"
	"math/bits"
	"strconv"
	"strings"

	"github.com/matzehuels/orbital/pkg/errors"
)

// Uint128 is an unsigned 128-bit integer.
type Uint128 struct {
	Hi, Lo uint64
}

// U128 returns v as a Uint128.
func U128(v uint64) Uint128 { return Uint128{Lo: v} }

// IsZero reports whether u is zero.
func (u Uint128) IsZero() bool { return u.Hi == 0 && u.Lo == 0 }

// Or returns u | v.
func (u Uint128) Or(v Uint128) Uint128 { return Uint128{u.Hi | v.Hi, u.Lo | v.Lo} }

// Lsh returns u << n. Shifts of 128 or more yield zero.
func (u Uint128) Lsh(n uint) Uint128 {
	switch {
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{Hi: u.Lo << (n - 64)}
	case n == 0:
		return u
	}
	return Uint128{Hi: u.Hi<<n | u.Lo>>(64-n), Lo: u.Lo << n}
}

// Rsh returns u >> n. Shifts of 128 or more yield zero.
func (u Uint128) Rsh(n uint) Uint128 {
	switch {
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{Lo: u.Hi >> (n - 64)}
	case n == 0:
		return u
	}
	return Uint128{Hi: u.Hi >> n, Lo: u.Lo>>n | u.Hi<<(64-n)}
}

// Bits extracts width bits starting at offset. width must be at most 64.
func (u Uint128) Bits(offset, width uint) uint64 {
	return u.Rsh(offset).Lo & mask(width)
}

// BitLen returns the number of bits needed to represent u.
func (u Uint128) BitLen() int {
	if u.Hi != 0 {
		return 64 + bits.Len64(u.Hi)
	}
	return bits.Len64(u.Lo)
}

// Big returns u as a big.Int.
func (u Uint128) Big() *big.Int {
	b := new(big.Int).SetUint64(u.Hi)
	b.Lsh(b, 64)
	return b.Or(b, new(big.Int).SetUint64(u.Lo))
}

// String returns the decimal form of u.
func (u Uint128) String() string {
	if u.Hi == 0 {
		return strconv.FormatUint(u.Lo, 10)
	}
	return u.Big().String()
}

// ParseUint128 parses a non-negative decimal integer of at most 128 bits.
// Signs, whitespace and non-decimal prefixes are rejected.
func ParseUint128(s string) (Uint128, error) {
	if s == "" || strings.TrimLeft(s, "0123456789") != "" {
		return Uint128{}, errors.New(errors.ErrCodeMalformedTable, "packed value %q is not a decimal integer", s)
	}
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Uint128{}, errors.New(errors.ErrCodeMalformedTable, "packed value %q is not a decimal integer", s)
	}
	if b.BitLen() > 128 {
		return Uint128{}, errors.New(errors.ErrCodeMalformedTable, "packed value %q exceeds 128 bits", s)
	}
	lo := new(big.Int).And(b, new(big.Int).SetUint64(^uint64(0))).Uint64()
	hi := new(big.Int).Rsh(b, 64).Uint64()
	return Uint128{Hi: hi, Lo: lo}, nil
}

func mask(width uint) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}
	return 1<<width - 1
}
