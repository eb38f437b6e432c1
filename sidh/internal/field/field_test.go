package field_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sidh-go/sidh/internal/field"
	"github.com/sidh-go/sidh/params"
)

func eq(a, b []uint64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// sampleElt2 returns a GF(p^2) element from the prime's public generator
// table — real field data already in Montgomery domain, rather than a
// hand-rolled test fixture.
func sampleElt2(p *params.Params) field.Elt2 {
	n := p.NWordsField
	a := make(field.Elt, n)
	b := make(field.Elt, n)
	copy(a, p.AGen[0:n])
	copy(b, p.AGen[n:2*n])
	return field.Elt2{A: a, B: b}
}

func TestAddSubRdcRoundTrip(t *testing.T) {
	for _, p := range params.All {
		p := p
		t.Run(p.Name, func(t *testing.T) {
			f := field.New(p)
			a := f.One()
			two := f.NewElt()
			f.AddRdc(two, a, a)

			sum := f.NewElt()
			f.AddRdc(sum, a, two)

			back := f.NewElt()
			f.SubRdc(back, sum, two)

			diff := f.NewElt()
			f.SubRdc(diff, back, a)
			assert.True(t, f.IsZero(diff), "%s: (a+b)-b should equal a", p.Name)
		})
	}
}

func TestRdcPBringsElementBelowP(t *testing.T) {
	for _, p := range params.All {
		p := p
		t.Run(p.Name, func(t *testing.T) {
			f := field.New(p)
			x := f.NewElt()
			f.AddRdc(x, f.P.P2, f.One())
			f.RdcP(x)

			var less bool
			for i := len(x) - 1; i >= 0; i-- {
				if x[i] != p.P[i] {
					less = x[i] < p.P[i]
					break
				}
			}
			assert.True(t, less, "%s: reduced element is not below p", p.Name)
		})
	}
}

func TestMontDomainRoundTrip(t *testing.T) {
	for _, p := range params.All {
		p := p
		t.Run(p.Name, func(t *testing.T) {
			f := field.New(p)
			plain := f.NewElt()
			plain[0] = 12345

			mont := f.NewElt()
			f.ToMontDomain(mont, plain)

			back := f.NewElt()
			f.FromMontDomain(back, mont)

			require.True(t, eq(back, plain), "%s: Montgomery round trip changed the value", p.Name)
		})
	}
}

func TestInv2IsMultiplicativeInverse(t *testing.T) {
	for _, p := range params.All {
		p := p
		t.Run(p.Name, func(t *testing.T) {
			f := field.New(p)
			x := sampleElt2(p)

			inv := f.NewElt2()
			f.Inv2(&inv, &x)

			prod := f.NewElt2()
			f.Mul2(&prod, &x, &inv)

			one := f.One2()
			diffA := f.NewElt()
			f.SubRdc(diffA, prod.A, one.A)

			assert.True(t, f.IsZero(diffA), "%s: x*inv(x) real part should be 1", p.Name)
			assert.True(t, f.IsZero(prod.B), "%s: x*inv(x) imaginary part should be 0", p.Name)
		})
	}
}

func TestAdd2SubtractsBackToOperand(t *testing.T) {
	for _, p := range params.All {
		p := p
		t.Run(p.Name, func(t *testing.T) {
			f := field.New(p)
			x := sampleElt2(p)
			y := f.One2()

			sum := f.NewElt2()
			f.Add2(&sum, &x, &y)

			back := f.NewElt2()
			f.Sub2(&back, &sum, &y)

			diffA := f.NewElt()
			diffB := f.NewElt()
			f.SubRdc(diffA, back.A, x.A)
			f.SubRdc(diffB, back.B, x.B)
			assert.True(t, f.IsZero(diffA))
			assert.True(t, f.IsZero(diffB))
		})
	}
}

func TestSqr2MatchesMul2BySelf(t *testing.T) {
	for _, p := range params.All {
		p := p
		t.Run(p.Name, func(t *testing.T) {
			f := field.New(p)
			x := sampleElt2(p)

			sq := f.NewElt2()
			f.Sqr2(&sq, &x)

			mul := f.NewElt2()
			f.Mul2(&mul, &x, &x)

			diffA := f.NewElt()
			diffB := f.NewElt()
			f.SubRdc(diffA, sq.A, mul.A)
			f.SubRdc(diffB, sq.B, mul.B)
			assert.True(t, f.IsZero(diffA))
			assert.True(t, f.IsZero(diffB))
		})
	}
}

func TestInvRealIsMultiplicativeInverse(t *testing.T) {
	for _, p := range params.All {
		p := p
		t.Run(p.Name, func(t *testing.T) {
			f := field.New(p)
			x := sampleElt2(p).A

			inv := f.NewElt()
			f.InvReal(inv, x)

			prod := f.NewElt()
			f.MulRdc(prod, x, inv)

			diff := f.NewElt()
			f.SubRdc(diff, prod, f.One())
			assert.True(t, f.IsZero(diff), "%s: x*InvReal(x) should be 1", p.Name)
		})
	}
}

func TestSqrtCandidateRecoversSquare(t *testing.T) {
	for _, p := range params.All {
		p := p
		t.Run(p.Name, func(t *testing.T) {
			f := field.New(p)
			x := sampleElt2(p).A

			square := f.NewElt()
			f.SqrRdc(square, x)

			root := f.NewElt()
			f.SqrtCandidate(root, square)

			back := f.NewElt()
			f.SqrRdc(back, root)

			diff := f.NewElt()
			f.SubRdc(diff, back, square)
			assert.True(t, f.IsZero(diff), "%s: SqrtCandidate(x^2)^2 should equal x^2", p.Name)
		})
	}
}

func TestEqualAndEqual2(t *testing.T) {
	for _, p := range params.All {
		p := p
		t.Run(p.Name, func(t *testing.T) {
			f := field.New(p)
			x := sampleElt2(p)
			y := sampleElt2(p)

			assert.True(t, f.Equal(x.A, y.A), "%s: Equal should hold for identical values", p.Name)
			assert.True(t, f.Equal2(&x, &y), "%s: Equal2 should hold for identical values", p.Name)

			other := f.One2()
			assert.False(t, f.Equal2(&x, &other), "%s: Equal2 should not hold for a distinct generator vs. 1", p.Name)
		})
	}
}

func TestCondSwap2(t *testing.T) {
	for _, p := range params.All {
		p := p
		t.Run(p.Name, func(t *testing.T) {
			f := field.New(p)
			a := sampleElt2(p)
			b := f.One2()

			aCopy := field.Elt2{A: append(field.Elt{}, a.A...), B: append(field.Elt{}, a.B...)}
			bCopy := field.Elt2{A: append(field.Elt{}, b.A...), B: append(field.Elt{}, b.B...)}

			field.CondSwap2(&a, &field.Elt2{}, &b, &field.Elt2{}, 0)
			assert.True(t, eq(a.A, aCopy.A), "%s: mask=0 must not swap", p.Name)

			field.CondSwap2(&a, &field.Elt2{}, &b, &field.Elt2{}, 1)
			assert.True(t, eq(a.A, bCopy.A), "%s: mask=1 must swap", p.Name)
			assert.True(t, eq(b.A, aCopy.A), "%s: mask=1 must swap", p.Name)
		})
	}
}
