package math

import (
	"crypto/rand"
	"math/big"
)

var (
	// ZERO as number "0"
	ZERO = NewInt(0)
	// ONE as number "1"
	ONE = NewInt(1)
	// TWO as number "2"
	TWO = NewInt(2)
)

// Int is an integer of arbitrary size. Instances are immutable; all
// operations return new values.
type Int struct {
	v *big.Int
}

// NewInt returns a new Int from an intrinsic int64
func NewInt(v int64) *Int {
	return &Int{v: big.NewInt(v)}
}

// NewIntFromString converts a string representation of an integer
func NewIntFromString(s string) *Int {
	v := new(big.Int)
	if err := v.UnmarshalText([]byte(s)); err != nil {
		panic(err)
	}
	return &Int{v}
}

// NewIntRnd creates a new random value between [0,j[
func NewIntRnd(j *Int) *Int {
	r, err := rand.Int(rand.Reader, j.v)
	if err != nil {
		panic(err)
	}
	return &Int{v: r}
}

// NewIntRndRange returns a random integer value within given range.
func NewIntRndRange(lower, upper *Int) *Int {
	return lower.Add(NewIntRnd(upper.Sub(lower).Add(ONE)))
}

// String converts an Int to a string representation.
func (i *Int) String() string {
	return i.v.String()
}

// Add two Ints
func (i *Int) Add(j *Int) *Int {
	return &Int{v: new(big.Int).Add(i.v, j.v)}
}

// Sub substracts two Ints
func (i *Int) Sub(j *Int) *Int {
	return &Int{v: new(big.Int).Sub(i.v, j.v)}
}

// Mul multiplies two Ints
func (i *Int) Mul(j *Int) *Int {
	return &Int{v: new(big.Int).Mul(i.v, j.v)}
}

// QuoRem returns the truncated quotient and remainder of two Ints.
// The results satisfy i = q*j + r with |r| < |j|.
func (i *Int) QuoRem(j *Int) (*Int, *Int) {
	q, r := new(big.Int).QuoRem(i.v, j.v, new(big.Int))
	return &Int{v: q}, &Int{v: r}
}

// Divides checks if j is an integer multiple of i.
func (i *Int) Divides(j *Int) bool {
	if i.v.Sign() == 0 {
		return j.v.Sign() == 0
	}
	r := new(big.Int).Rem(j.v, i.v)
	return r.Sign() == 0
}

// Sign returns the sign of an Int.
func (i *Int) Sign() int {
	return i.v.Sign()
}

// Cmp returns the comparision between two Ints.
func (i *Int) Cmp(j *Int) int {
	return i.v.Cmp(j.v)
}

// Equals check if two Ints are equal.
func (i *Int) Equals(j *Int) bool {
	return i.v.Cmp(j.v) == 0
}

// GCD return the greatest common divisor of two Ints. The result is
// non-negative; GCD(0,j) is |j|.
func (i *Int) GCD(j *Int) *Int {
	if i.v.Sign() == 0 {
		return j.Abs()
	}
	if j.v.Sign() == 0 {
		return i.Abs()
	}
	return &Int{v: new(big.Int).GCD(nil, nil, new(big.Int).Abs(i.v), new(big.Int).Abs(j.v))}
}

// Abs returns the unsigned value of an Int.
func (i *Int) Abs() *Int {
	return &Int{v: new(big.Int).Abs(i.v)}
}

// Neg flips the sign of an Int.
func (i *Int) Neg() *Int {
	return &Int{v: new(big.Int).Neg(i.v)}
}

// Int64 returns the int64 value of an Int.
func (i *Int) Int64() int64 {
	return i.v.Int64()
}
