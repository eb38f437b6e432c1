// Package field implements the GF(p) and GF(p^2) arithmetic that the curve,
// ladder and isogeny packages build on, specialised at runtime to one of the
// four primes in sidh/params.
//
// Field elements are plain []uint64 slices (Elt, EltX2) whose length is
// fixed by params.Params.NWordsField at construction and never changes
// afterwards — the slice is allocated once by NewElt and reused in place,
// the same discipline the teacher's fixed-size [FP_WORDS]uint64 arrays
// enforce, adapted to a runtime-chosen word count since Go has no const
// generics over array length.
package field

import (
	"math/bits"

	"github.com/sidh-go/sidh/params"
)

// Elt is a field element in Montgomery domain, little-endian 64-bit words.
type Elt []uint64

// EltX2 is a double-width product, as produced by Mul and consumed by MontRdc.
type EltX2 []uint64

// Elt2 is a GF(p^2) element A + B*i.
type Elt2 struct {
	A, B Elt
}

// Field binds the arithmetic below to one prime's word width and constant
// tables. It holds no mutable state; every method takes its operands and
// writes its result into a caller-supplied destination, mirroring the
// teacher's fpAddRdc(z, x, y *Fp)-style signatures.
type Field struct {
	P *params.Params
}

// New returns the arithmetic for the given prime's parameters.
func New(p *params.Params) *Field {
	return &Field{P: p}
}

// NewElt returns a zeroed field element of this field's word width.
func (f *Field) NewElt() Elt {
	return make(Elt, f.P.NWordsField)
}

// NewEltX2 returns a zeroed double-width accumulator.
func (f *Field) NewEltX2() EltX2 {
	return make(EltX2, 2*f.P.NWordsField)
}

// NewElt2 returns a zeroed GF(p^2) element.
func (f *Field) NewElt2() Elt2 {
	return Elt2{A: f.NewElt(), B: f.NewElt()}
}

// One returns a copy of the Montgomery-domain representation of 1.
func (f *Field) One() Elt {
	z := f.NewElt()
	copy(z, f.P.MontOne)
	return z
}

// One2 returns the GF(p^2) element 1 + 0*i, in Montgomery domain.
func (f *Field) One2() Elt2 {
	return Elt2{A: f.One(), B: f.NewElt()}
}

func (f *Field) nwords() int { return f.P.NWordsField }

// AddRdc sets z = x + y (mod 2p). z may alias x or y.
func (f *Field) AddRdc(z, x, y Elt) {
	n := f.nwords()
	var carry uint64
	for i := 0; i < n; i++ {
		z[i], carry = bits.Add64(x[i], y[i], carry)
	}

	carry = 0
	for i := 0; i < n; i++ {
		z[i], carry = bits.Sub64(z[i], f.P.P2[i], carry)
	}

	mask := uint64(0) - carry
	carry = 0
	for i := 0; i < n; i++ {
		z[i], carry = bits.Add64(z[i], f.P.P2[i]&mask, carry)
	}
}

// SubRdc sets z = x - y (mod 2p). z may alias x or y.
func (f *Field) SubRdc(z, x, y Elt) {
	n := f.nwords()
	var borrow uint64
	for i := 0; i < n; i++ {
		z[i], borrow = bits.Sub64(x[i], y[i], borrow)
	}

	mask := uint64(0) - borrow
	borrow = 0
	for i := 0; i < n; i++ {
		z[i], borrow = bits.Add64(z[i], f.P.P2[i]&mask, borrow)
	}
}

// RdcP reduces x in [0, 2p) to the representative in [0, p).
func (f *Field) RdcP(x Elt) {
	n := f.nwords()
	var borrow uint64
	for i := 0; i < n; i++ {
		x[i], borrow = bits.Sub64(x[i], f.P.P[i], borrow)
	}

	mask := uint64(0) - borrow
	borrow = 0
	for i := 0; i < n; i++ {
		x[i], borrow = bits.Add64(x[i], f.P.P[i]&mask, borrow)
	}
}

// SwapCond conditionally swaps x and y in constant time: when mask's low bit
// is 1 every word is exchanged, otherwise neither operand changes. The
// implementation never branches on mask's value at the word level so it is
// safe to call with a secret-derived mask.
func SwapCond(x, y Elt, mask uint64) {
	m := uint64(0) - (mask & 1)
	for i := range x {
		t := m & (x[i] ^ y[i])
		x[i] ^= t
		y[i] ^= t
	}
}

// Mul sets z = x * y, without any modular reduction (schoolbook, result has
// 2*NWordsField words).
func (f *Field) Mul(z EltX2, x, y Elt) {
	n := f.nwords()
	var u, v, t uint64

	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			hi, lo := bits.Mul64(x[j], y[i-j])
			var c0, c1 uint64
			v, c0 = bits.Add64(lo, v, 0)
			u, c1 = bits.Add64(hi, u, c0)
			t += c1
		}
		z[i] = v
		v = u
		u = t
		t = 0
	}

	for i := n; i < 2*n-1; i++ {
		for j := i - n + 1; j < n; j++ {
			hi, lo := bits.Mul64(x[j], y[i-j])
			var c0, c1 uint64
			v, c0 = bits.Add64(lo, v, 0)
			u, c1 = bits.Add64(hi, u, c0)
			t += c1
		}
		z[i] = v
		v = u
		u = t
		t = 0
	}
	z[2*n-1] = v
}

// MontRdc sets z = x * R^-1 (mod 2p), where R = 2^(64*NWordsField). It
// consumes x. zeroWords is the number of all-zero low words of p+1 — for
// every supported prime p ≡ -1 (mod 2^(64*zeroWords)), which is what lets
// this reduction skip those columns entirely, exactly as the teacher's
// fpMontRdc skips p503's three known-zero low words, generalised here to a
// value read from the field's own parameters instead of a hardcoded count.
func (f *Field) MontRdc(z Elt, x EltX2) {
	n := f.nwords()
	zeroWords := f.zeroWordsPP1()

	var u, v, t uint64
	count := zeroWords

	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			if j < i-count+1 {
				hi, lo := bits.Mul64(z[j], f.P.PP1[i-j])
				var c0, c1 uint64
				v, c0 = bits.Add64(lo, v, 0)
				u, c1 = bits.Add64(hi, u, c0)
				t += c1
			}
		}
		var c0, c1 uint64
		v, c0 = bits.Add64(v, x[i], 0)
		u, c1 = bits.Add64(u, 0, c0)
		t += c1

		z[i] = v
		v = u
		u = t
		t = 0
	}

	for i := n; i < 2*n-1; i++ {
		if count > 0 {
			count--
		}
		for j := i - n + 1; j < n; j++ {
			if j < n-count {
				hi, lo := bits.Mul64(z[j], f.P.PP1[i-j])
				var c0, c1 uint64
				v, c0 = bits.Add64(lo, v, 0)
				u, c1 = bits.Add64(hi, u, c0)
				t += c1
			}
		}
		var c0, c1 uint64
		v, c0 = bits.Add64(v, x[i], 0)
		u, c1 = bits.Add64(u, 0, c0)
		t += c1

		z[i-n] = v
		v = u
		u = t
		t = 0
	}
	v, _ = bits.Add64(v, x[2*n-1], 0)
	z[n-1] = v
}

func (f *Field) zeroWordsPP1() int {
	cnt := 0
	for _, w := range f.P.PP1 {
		if w != 0 {
			break
		}
		cnt++
	}
	return cnt
}

// MulRdc sets dest = lhs * rhs (mod p), all operands in Montgomery domain.
func (f *Field) MulRdc(dest, lhs, rhs Elt) {
	ab := f.NewEltX2()
	f.Mul(ab, lhs, rhs)
	f.MontRdc(dest, ab)
}

// SqrRdc sets dest = x * x (mod p).
func (f *Field) SqrRdc(dest, x Elt) {
	f.MulRdc(dest, x, x)
}

// Pow sets dest = x^e (mod p) by square-and-multiply over e's bits,
// most-significant first. e is always a public, fixed-per-prime exponent
// (derived from the field's characteristic, e.g. p-2), never secret key material, so branching
// on its bits carries no secret-dependent-branch risk: every call for a
// given prime takes the identical sequence of squarings/multiplications.
func (f *Field) Pow(dest, x Elt, e []uint64) {
	acc := f.NewElt()
	copy(acc, f.P.MontOne)

	started := false
	nbits := 64 * len(e)
	for i := nbits - 1; i >= 0; i-- {
		word := e[i/64]
		bit := (word >> uint(i%64)) & 1
		if started {
			f.MulRdc(acc, acc, acc)
		}
		if bit == 1 {
			if !started {
				copy(acc, x)
				started = true
			} else {
				f.MulRdc(acc, acc, x)
			}
		}
	}
	copy(dest, acc)
}

// InvSqrtCandidate sets dest = x^((p-3)/4), the building block Inv2 (and,
// where p ≡ 3 mod 4, square-root extraction) is based on.
func (f *Field) InvSqrtCandidate(dest, x Elt) {
	e := f.pMinus3Over4()
	f.Pow(dest, x, e)
}

// pMinus3Over4 computes (p-3)/4 once per call from the field's own prime;
// it is a public constant derived from params.Params.P, not secret state.
func (f *Field) pMinus3Over4() []uint64 {
	n := f.nwords()
	tmp := make([]uint64, n)
	var borrow uint64
	tmp[0], borrow = bits.Sub64(f.P.P[0], 3, 0)
	for i := 1; i < n; i++ {
		tmp[i], borrow = bits.Sub64(f.P.P[i], 0, borrow)
	}
	// divide by 4: shift right 2 bits across the whole limb array.
	out := make([]uint64, n)
	for i := 0; i < n; i++ {
		out[i] = tmp[i] >> 2
		if i+1 < n {
			out[i] |= tmp[i+1] << 62
		}
	}
	return out
}

// SqrtCandidate sets dest = x^((p+1)/4) (mod p). Every SIDH prime this
// package supports is 3 mod 4, so this exponent recovers a real square root
// of x whenever x is itself a quadratic residue, the same way
// InvSqrtCandidate's (p-3)/4 exponent underlies Inv2; callers that don't
// already know x is a residue must verify dest*dest == x themselves.
func (f *Field) SqrtCandidate(dest, x Elt) {
	e := f.pPlus1Over4()
	f.Pow(dest, x, e)
}

// pPlus1Over4 computes (p+1)/4 once per call from the field's own prime.
func (f *Field) pPlus1Over4() []uint64 {
	n := f.nwords()
	tmp := make([]uint64, n)
	var carry uint64
	tmp[0], carry = bits.Add64(f.P.P[0], 1, 0)
	for i := 1; i < n; i++ {
		tmp[i], carry = bits.Add64(f.P.P[i], 0, carry)
	}
	out := make([]uint64, n)
	for i := 0; i < n; i++ {
		out[i] = tmp[i] >> 2
		if i+1 < n {
			out[i] |= tmp[i+1] << 62
		}
	}
	return out
}

// InvReal sets dest = 1/x (mod p) for a plain GF(p) element, via Fermat's
// little theorem (x^(p-2)); unlike Inv2 this never needs the GF(p^2) norm
// trick since x has no imaginary part to begin with.
func (f *Field) InvReal(dest, x Elt) {
	e := f.pMinus2()
	f.Pow(dest, x, e)
}

// pMinus2 computes p-2 once per call from the field's own prime.
func (f *Field) pMinus2() []uint64 {
	n := f.nwords()
	out := make([]uint64, n)
	var borrow uint64
	out[0], borrow = bits.Sub64(f.P.P[0], 2, 0)
	for i := 1; i < n; i++ {
		out[i], borrow = bits.Sub64(f.P.P[i], 0, borrow)
	}
	return out
}

// Equal reports whether x and y denote the same residue mod p.
func (f *Field) Equal(x, y Elt) bool {
	diff := make(Elt, len(x))
	f.SubRdc(diff, x, y)
	return f.IsZero(diff)
}

// Equal2 reports whether x and y denote the same element of GF(p^2).
func (f *Field) Equal2(x, y *Elt2) bool {
	return f.Equal(x.A, y.A) && f.Equal(x.B, y.B)
}

// Add2 sets dest = lhs + rhs in GF(p^2).
func (f *Field) Add2(dest, lhs, rhs *Elt2) {
	f.AddRdc(dest.A, lhs.A, rhs.A)
	f.AddRdc(dest.B, lhs.B, rhs.B)
}

// Sub2 sets dest = lhs - rhs in GF(p^2).
func (f *Field) Sub2(dest, lhs, rhs *Elt2) {
	f.SubRdc(dest.A, lhs.A, rhs.A)
	f.SubRdc(dest.B, lhs.B, rhs.B)
}

func (f *Field) add2x2(z, x, y EltX2) {
	n := 2 * f.nwords()
	var carry uint64
	for i := 0; i < n; i++ {
		z[i], carry = bits.Add64(x[i], y[i], carry)
	}
}

func (f *Field) sub2x2(z, x, y EltX2) {
	n := f.nwords()
	var borrow uint64
	for i := 0; i < 2*n; i++ {
		z[i], borrow = bits.Sub64(x[i], y[i], borrow)
	}
	mask := uint64(0) - borrow
	borrow = 0
	for i := n; i < 2*n; i++ {
		z[i], borrow = bits.Add64(z[i], f.P.P[i-n]&mask, borrow)
	}
}

// Mul2 sets dest = lhs * rhs in GF(p^2), using the Karatsuba trick to trade
// one of the four base-field multiplications for two subtractions, exactly
// as the teacher's mul(dest, lhs, rhs *Fp2) does.
func (f *Field) Mul2(dest, lhs, rhs *Elt2) {
	a, b := lhs.A, lhs.B
	c, d := rhs.A, rhs.B

	ac := f.NewEltX2()
	bd := f.NewEltX2()
	f.Mul(ac, a, c)
	f.Mul(bd, b, d)

	bMinusA := f.NewElt()
	cMinusD := f.NewElt()
	f.SubRdc(bMinusA, b, a)
	f.SubRdc(cMinusD, c, d)

	adPlusBc := f.NewEltX2()
	f.Mul(adPlusBc, bMinusA, cMinusD)
	f.add2x2(adPlusBc, adPlusBc, ac)
	f.add2x2(adPlusBc, adPlusBc, bd)
	f.MontRdc(dest.B, adPlusBc)

	acMinusBd := f.NewEltX2()
	f.sub2x2(acMinusBd, ac, bd)
	f.MontRdc(dest.A, acMinusBd)
}

// Sqr2 sets dest = x * x in GF(p^2).
func (f *Field) Sqr2(dest, x *Elt2) {
	a, b := x.A, x.B

	a2 := f.NewElt()
	aPlusB := f.NewElt()
	aMinusB := f.NewElt()
	f.AddRdc(a2, a, a)
	f.AddRdc(aPlusB, a, b)
	f.SubRdc(aMinusB, a, b)

	a2MinB2 := f.NewEltX2()
	ab2 := f.NewEltX2()
	f.Mul(a2MinB2, aPlusB, aMinusB)
	f.Mul(ab2, a2, b)

	f.MontRdc(dest.A, a2MinB2)
	f.MontRdc(dest.B, ab2)
}

// Inv2 sets dest = 1/x in GF(p^2), via
//
//	1/(a+bi) = (a-bi) / (a^2+b^2).
func (f *Field) Inv2(dest, x *Elt2) {
	a, b := x.A, x.B

	asq := f.NewEltX2()
	bsq := f.NewEltX2()
	f.Mul(asq, a, a)
	f.Mul(bsq, b, b)
	f.add2x2(asq, asq, bsq)

	a2PlusB2 := f.NewElt()
	f.MontRdc(a2PlusB2, asq)

	inv := f.NewElt()
	f.MulRdc(inv, a2PlusB2, a2PlusB2)
	f.InvSqrtCandidate(inv, inv)
	f.MulRdc(inv, inv, inv)
	f.MulRdc(inv, inv, a2PlusB2)

	ac := f.NewEltX2()
	f.Mul(ac, a, inv)
	f.MontRdc(dest.A, ac)

	minusB := f.NewElt()
	f.SubRdc(minusB, f.NewElt(), b)
	minusBC := f.NewEltX2()
	f.Mul(minusBC, minusB, inv)
	f.MontRdc(dest.B, minusBC)
}

// CondSwap2 conditionally swaps (xA, zA) with (xB, zB) in GF(p^2) in
// constant time, the building block the Montgomery ladders use to swap
// their two running points based on a secret key bit.
func CondSwap2(xA, zA, xB, zB *Elt2, mask uint64) {
	SwapCond(xA.A, xB.A, mask)
	SwapCond(xA.B, xB.B, mask)
	SwapCond(zA.A, zB.A, mask)
	SwapCond(zA.B, zB.B, mask)
}

// FromMontDomain sets dest = x * R^-1 (mod p), converting x out of Montgomery
// domain into its plain integer representative.
func (f *Field) FromMontDomain(dest, x Elt) {
	n := f.nwords()
	wide := f.NewEltX2()
	copy(wide[:n], x)
	f.MontRdc(dest, wide)
	f.RdcP(dest)
}

// ToMontDomain sets dest = x * R (mod p), converting a plain integer x into
// Montgomery domain using the field's precomputed R^2 constant.
func (f *Field) ToMontDomain(dest, x Elt) {
	r2 := Elt(f.P.MontR2)
	f.MulRdc(dest, x, r2)
}

// IsZero reports whether x is the zero element (after a full reduction to
// [0, p)). It does not run in constant time; it is only ever used on public
// curve coefficients, never on secret scalars.
func (f *Field) IsZero(x Elt) bool {
	tmp := make(Elt, len(x))
	copy(tmp, x)
	f.RdcP(tmp)
	for _, w := range tmp {
		if w != 0 {
			return false
		}
	}
	return true
}
