// Package isogeny implements the degree-2, -3 and -4 isogeny primitives the
// strategy walker composes into a full 2^eA- or 3^eB-degree walk: computing
// a kernel's codomain curve (Get*Isog) and pushing an arbitrary point
// through that isogeny (Eval*Isog).
//
// The call shape — a constructor that captures the kernel generator and
// returns a value used both to rebuild the codomain curve and to evaluate
// further points — mirrors NewIsogeny4/NewIsogeny3's GenerateCurve/
// EvaluatePoint pair in _teacher_src/sike.go, generalised into free
// functions operating on curve.Params/curve.ProjPoint since the strategy
// walker (internal/strategy) needs to interleave isogeny computation with
// its own deferred-point stack rather than delegate that bookkeeping to a
// stateful object.
package isogeny

import (
	"github.com/sidh-go/sidh/internal/curve"
	"github.com/sidh-go/sidh/internal/field"
)

// Isogeny binds the primitives below to one field.
type Isogeny struct {
	F *field.Field
}

// New returns the isogeny primitives over the given field.
func New(f *field.Field) *Isogeny {
	return &Isogeny{F: f}
}

func (g *Isogeny) e2() field.Elt2 { return g.F.NewElt2() }

// Get2Isog computes the codomain curve of the 2-isogeny whose kernel is
// generated by the 2-torsion point kx (an x-only point with kx.Z=1).
func (g *Isogeny) Get2Isog(kx field.Elt2) curve.Params {
	f := g.F
	var cp curve.Params
	cp.A24plus = g.e2()
	cp.A24minus = g.e2()
	cp.C24 = g.e2()

	one := f.One2()
	f.Sqr2(&cp.A24plus, &kx)
	f.Sub2(&cp.C24, &one, &cp.A24plus)
	copy(cp.A24minus.A, cp.A24plus.A)
	copy(cp.A24minus.B, cp.A24plus.B)
	return cp
}

// Eval2Isog pushes the point p through the 2-isogeny with kernel point kx.
func (g *Isogeny) Eval2Isog(kx field.Elt2, p curve.ProjPoint) curve.ProjPoint {
	f := g.F
	var q curve.ProjPoint
	q.X = g.e2()
	q.Z = g.e2()

	t0 := g.e2()
	t1 := g.e2()
	t2 := g.e2()

	f.Add2(&t0, &kx, &p.X)
	f.Add2(&t1, &kx, &p.Z)
	f.Mul2(&t2, &t0, &p.Z)
	f.Mul2(&t0, &t1, &p.X)
	f.Sub2(&q.X, &t0, &t2)
	f.Mul2(&q.X, &q.X, &p.X)
	f.Add2(&q.Z, &t0, &t2)
	f.Mul2(&q.Z, &q.Z, &p.Z)
	return q
}

// Get3Isog computes the codomain curve of the 3-isogeny with kernel point kx
// (affine, kx.Z=1), along with the two constants (k1, k2) Eval3Isog needs to
// push points through the same isogeny.
type Iso3 struct {
	K1, K2 field.Elt2
}

func (g *Isogeny) Get3Isog(kx curve.ProjPoint) (curve.Params, Iso3) {
	f := g.F
	var cp curve.Params
	var iso Iso3

	t0 := g.e2()
	t1 := g.e2()
	t2 := g.e2()
	t3 := g.e2()
	t4 := g.e2()

	f.Sub2(&t0, &kx.X, &kx.Z)
	f.Sqr2(&t2, &t0)
	f.Add2(&t1, &kx.X, &kx.Z)
	f.Sqr2(&t3, &t1)
	f.Add2(&t4, &t0, &t1)
	f.Add2(&t4, &t4, &t4)
	f.Sub2(&t4, &t3, &t4)

	iso.K1 = t1
	iso.K2 = t0

	cp.A24plus = g.e2()
	cp.A24minus = g.e2()
	cp.C24 = g.e2()

	f.Add2(&cp.A24plus, &t2, &t4)
	f.Add2(&cp.A24minus, &t3, &t4)
	f.Add2(&cp.C24, &t2, &t3)
	return cp, iso
}

// Eval3Isog pushes the point p through the 3-isogeny described by iso.
func (g *Isogeny) Eval3Isog(iso Iso3, p curve.ProjPoint) curve.ProjPoint {
	f := g.F
	var q curve.ProjPoint
	q.X = g.e2()
	q.Z = g.e2()

	t0 := g.e2()
	t1 := g.e2()
	t2 := g.e2()

	f.Add2(&t0, &p.X, &p.Z)
	f.Sub2(&t1, &p.X, &p.Z)
	f.Mul2(&t0, &t0, &iso.K2)
	f.Mul2(&t1, &t1, &iso.K1)
	f.Add2(&t2, &t0, &t1)
	f.Sub2(&t0, &t1, &t0)
	f.Sqr2(&t2, &t2)
	f.Sqr2(&t0, &t0)
	f.Mul2(&q.X, &p.X, &t2)
	f.Mul2(&q.Z, &p.Z, &t0)
	return q
}

// Get4Isog computes the codomain curve of the 4-isogeny with kernel point kx
// (x-only), along with the four constants Eval4Isog needs.
type Iso4 struct {
	K1, K2, K3 field.Elt2
}

func (g *Isogeny) Get4Isog(kx curve.ProjPoint) (curve.Params, Iso4) {
	f := g.F
	var cp curve.Params
	var iso Iso4

	iso.K2 = g.e2()
	iso.K3 = g.e2()
	f.Sub2(&iso.K2, &kx.X, &kx.Z)
	f.Add2(&iso.K3, &kx.X, &kx.Z)

	t0 := g.e2()
	t1 := g.e2()
	f.Sqr2(&t0, &kx.Z)
	iso.K1 = t0

	cp.A24plus = g.e2()
	cp.A24minus = g.e2()
	cp.C24 = g.e2()

	f.Sqr2(&t1, &kx.X)
	f.Add2(&cp.C24, &t0, &t0)
	f.Sqr2(&cp.C24, &cp.C24)

	f.Add2(&cp.A24plus, &t0, &t1)
	f.Add2(&cp.A24plus, &cp.A24plus, &cp.A24plus)
	f.Sub2(&cp.A24plus, &cp.A24plus, &cp.C24)
	f.Sqr2(&cp.A24plus, &cp.A24plus)

	f.Sub2(&cp.A24minus, &t1, &t0)
	f.Sqr2(&cp.A24minus, &cp.A24minus)
	f.Mul2(&cp.A24minus, &cp.A24minus, &cp.C24)

	return cp, iso
}

// Eval4Isog pushes the point p through the 4-isogeny described by iso.
func (g *Isogeny) Eval4Isog(iso Iso4, p curve.ProjPoint) curve.ProjPoint {
	f := g.F
	var q curve.ProjPoint
	q.X = g.e2()
	q.Z = g.e2()

	t0 := g.e2()
	t1 := g.e2()
	t2 := g.e2()

	f.Add2(&t0, &p.X, &p.Z)
	f.Sub2(&t1, &p.X, &p.Z)
	f.Mul2(&q.X, &t0, &iso.K2)
	f.Mul2(&q.Z, &t1, &iso.K3)
	f.Mul2(&t0, &t0, &t1)
	f.Mul2(&t0, &t0, &iso.K1)
	f.Add2(&t2, &q.X, &q.Z)
	f.Sub2(&q.Z, &q.X, &q.Z)
	f.Sqr2(&t2, &t2)
	f.Sqr2(&q.Z, &q.Z)
	f.Add2(&q.X, &t2, &t0)
	f.Sub2(&t2, &q.Z, &t0)
	f.Mul2(&q.X, &q.X, &t2)
	f.Mul2(&q.Z, &q.Z, &t2)
	return q
}
