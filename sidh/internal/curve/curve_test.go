package curve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sidh-go/sidh/internal/curve"
	"github.com/sidh-go/sidh/internal/field"
	"github.com/sidh-go/sidh/params"
)

// startCurve builds E0: y^2 = x^3 + x (A24plus=2, A24minus=-2, C24=4), the
// standard SIDH starting curve, independently of the sidh package's own copy
// of this construction — exercised here purely as curve.Params test data.
func startCurve(f *field.Field) curve.Params {
	two := field.Elt2{A: f.NewElt(), B: f.NewElt()}
	copy(two.A, f.P.MontOne)
	f.AddRdc(two.A, two.A, two.A)

	minusTwo := field.Elt2{A: f.NewElt(), B: f.NewElt()}
	f.SubRdc(minusTwo.A, f.NewElt(), two.A)

	four := field.Elt2{A: f.NewElt(), B: f.NewElt()}
	f.AddRdc(four.A, two.A, two.A)

	return curve.Params{A24plus: two, A24minus: minusTwo, C24: four}
}

func basePoint(f *field.Field, p *params.Params) curve.ProjPoint {
	n := p.NWordsField
	a := make(field.Elt, n)
	b := make(field.Elt, n)
	copy(a, p.AGen[0:n])
	copy(b, p.AGen[n:2*n])
	return curve.ProjPoint{X: field.Elt2{A: a, B: b}, Z: field.Elt2{A: f.One(), B: f.NewElt()}}
}

func TestXDBLeMatchesRepeatedXDBL(t *testing.T) {
	for _, p := range params.All {
		p := p
		t.Run(p.Name, func(t *testing.T) {
			f := field.New(p)
			c := curve.New(f)
			cp := startCurve(f)
			base := basePoint(f, p)

			viaLoop := c.XDBL(&cp, c.XDBL(&cp, base))
			viaExp := c.XDBLe(&cp, base, 2)

			diffXA := f.NewElt()
			diffXB := f.NewElt()
			f.SubRdc(diffXA, viaLoop.X.A, viaExp.X.A)
			f.SubRdc(diffXB, viaLoop.X.B, viaExp.X.B)
			assert.True(t, f.IsZero(diffXA), "%s: XDBLe(2) should match XDBL twice", p.Name)
			assert.True(t, f.IsZero(diffXB), "%s: XDBLe(2) should match XDBL twice", p.Name)
		})
	}
}

func TestXTPLeMatchesRepeatedXTPL(t *testing.T) {
	for _, p := range params.All {
		p := p
		t.Run(p.Name, func(t *testing.T) {
			f := field.New(p)
			c := curve.New(f)
			cp := startCurve(f)
			base := basePoint(f, p)

			viaLoop := c.XTPL(&cp, c.XTPL(&cp, base))
			viaExp := c.XTPLe(&cp, base, 2)

			diffXA := f.NewElt()
			diffXB := f.NewElt()
			f.SubRdc(diffXA, viaLoop.X.A, viaExp.X.A)
			f.SubRdc(diffXB, viaLoop.X.B, viaExp.X.B)
			assert.True(t, f.IsZero(diffXA), "%s: XTPLe(2) should match XTPL twice", p.Name)
			assert.True(t, f.IsZero(diffXB), "%s: XTPLe(2) should match XTPL twice", p.Name)
		})
	}
}

func TestInv3WayProducesCorrectInverses(t *testing.T) {
	for _, p := range params.All {
		p := p
		t.Run(p.Name, func(t *testing.T) {
			f := field.New(p)
			c := curve.New(f)

			n := p.NWordsField
			mk := func(off int) field.Elt2 {
				a := make(field.Elt, n)
				b := make(field.Elt, n)
				copy(a, p.BGen[off:off+n])
				copy(b, p.BGen[off+n:off+2*n])
				return field.Elt2{A: a, B: b}
			}
			z0, z1, z2 := mk(0), mk(2*n), mk(4*n)
			orig := []field.Elt2{mk(0), mk(2 * n), mk(4 * n)}

			c.Inv3Way(&z0, &z1, &z2)
			inv := []field.Elt2{z0, z1, z2}

			for i := range orig {
				prod := f.NewElt2()
				f.Mul2(&prod, &orig[i], &inv[i])
				one := f.One2()
				diffA := f.NewElt()
				f.SubRdc(diffA, prod.A, one.A)
				assert.True(t, f.IsZero(diffA), "%s: Inv3Way inverse %d is wrong", p.Name, i)
				assert.True(t, f.IsZero(prod.B), "%s: Inv3Way inverse %d is wrong", p.Name, i)
			}
		})
	}
}

// TestLiftYRecoversPointOnCurve checks that curve.LiftY's y satisfies the
// defining Montgomery equation C*y^2 = x^3+A*x^2+C*x for a real basis-point
// x, reconstructing A and C from cp's A24plus/A24minus/C24 independently of
// curve.go's own unexported rawAC so the test doesn't just restate the
// implementation.
func TestLiftYRecoversPointOnCurve(t *testing.T) {
	for _, p := range params.All {
		p := p
		t.Run(p.Name, func(t *testing.T) {
			f := field.New(p)
			c := curve.New(f)
			cp := startCurve(f)
			x := basePoint(f, p).X

			y, ok := c.LiftY(&cp, &x)
			assert.True(t, ok, "%s: LiftY should find a root for a real basis point", p.Name)

			one := f.One2()
			two := f.NewElt2()
			f.Add2(&two, &one, &one)
			a := f.NewElt2()
			f.Add2(&a, &cp.A24plus, &cp.A24minus)
			invTwo := f.NewElt2()
			f.Inv2(&invTwo, &two)
			f.Mul2(&a, &a, &invTwo)

			four := f.NewElt2()
			f.Add2(&four, &two, &two)
			invFour := f.NewElt2()
			f.Inv2(&invFour, &four)
			cAff := f.NewElt2()
			f.Mul2(&cAff, &cp.C24, &invFour)

			x2 := f.NewElt2()
			f.Sqr2(&x2, &x)
			x3 := f.NewElt2()
			f.Mul2(&x3, &x2, &x)
			ax2 := f.NewElt2()
			f.Mul2(&ax2, &a, &x2)
			cx := f.NewElt2()
			f.Mul2(&cx, &cAff, &x)
			rhs := f.NewElt2()
			f.Add2(&rhs, &x3, &ax2)
			f.Add2(&rhs, &rhs, &cx)

			lhs := f.NewElt2()
			f.Sqr2(&lhs, &y)
			f.Mul2(&lhs, &lhs, &cAff)

			diff := f.NewElt2()
			f.Sub2(&diff, &lhs, &rhs)
			assert.True(t, f.IsZero(diff.A) && f.IsZero(diff.B), "%s: LiftY's y does not satisfy the curve equation", p.Name)
		})
	}
}

func TestJInvariantDoesNotPanic(t *testing.T) {
	for _, p := range params.All {
		p := p
		t.Run(p.Name, func(t *testing.T) {
			f := field.New(p)
			c := curve.New(f)
			cp := startCurve(f)

			j := f.NewElt2()
			assert.NotPanics(t, func() { c.JInvariant(&cp, &j) })
		})
	}
}
