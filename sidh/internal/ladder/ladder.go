// Package ladder implements the x-only and 3-point Montgomery ladders used
// to compute secret scalar multiples of the public basis points, the
// Okeya-Sakurai y-coordinate recovery that turns a ladder's x-only output
// into a full point, and the full-point addition that builds the isogeny
// kernel generator R = P + k*Q.
//
// LadderBob is the classic per-bit ladder (one conditional swap, one xDBL
// and one xADD per bit, plus one final swap), walking every bit of the scalar. LadderAlice walks
// the same ladder over the curve's precomputed 2*Q_A point instead of Q_A
// itself, and stops one bit short of bit 0, since Alice's kernel-generator
// assembly (kernelA in sidh.go) folds that bottom bit into a full-point
// addition afterwards rather than into the ladder. Ladder3Pt is the generic
// 3-point ladder shared by both parties at secret-agreement time, walking
// every bit like LadderBob but over two base points plus their difference
// at once. All three are grounded on LADDERM_for_Bob, LADDERM_for_Alice and
// LADDER3PT's call sites in
// _examples/original_source/PQCCrypto-SIDH_Mladder/src/sidh.c, and their
// constant-time conditional swap is field.CondSwap2, the same primitive
// _teacher_src/arith.go's condSwap implements for a single fixed prime.
package ladder

import (
	"github.com/sidh-go/sidh/internal/curve"
	"github.com/sidh-go/sidh/internal/field"
)

// Ladder binds the ladder algorithms to one field/curve pair.
type Ladder struct {
	F *field.Field
	C *curve.Curve
}

// New returns the ladder algorithms over the given field and curve
// arithmetic, which must share the same field.Field instance.
func New(f *field.Field, c *curve.Curve) *Ladder {
	return &Ladder{F: f, C: c}
}

// bit returns bit i (0-indexed, LSB first) of a little-endian byte scalar.
func bit(scalar []byte, i int) uint64 {
	return uint64((scalar[i/8] >> uint(i%8)) & 1)
}

// LadderBob computes the pair (r0, r1) = (x(kP), x((k+1)P)) given the base
// point xP on curve cp, walking scalar k from its top bit (bits-1) down to
// bit 0 and maintaining the two-point (x0, x1) ladder invariant x1-x0=P: at
// each step it conditionally swaps (x0,x1) based on the current bit, doubles
// x0 and adds x1 via the public difference xP, then swaps back. Returning
// both running points (rather than collapsing to a single x(kP), as a
// ladder that only needs the final x-coordinate would) is what lets
// RecoverYBob/RecoverY3Pt recover kP's full point afterwards: the
// Okeya-Sakurai formula needs two consecutive multiples of a point whose own
// affine (x,y) is already known, which is exactly r0 and r1 here since their
// difference is the caller's xP.
func (l *Ladder) LadderBob(cp *curve.Params, xp field.Elt2, scalar []byte, bits int) (r0, r1 curve.ProjPoint) {
	f := l.F
	x0 := curve.ProjPoint{X: field.Elt2{A: f.One(), B: f.NewElt()}, Z: f.NewElt2()}
	x1 := curve.ProjPoint{X: xp, Z: field.Elt2{A: f.One(), B: f.NewElt()}}
	diff := curve.ProjPoint{X: xp, Z: field.Elt2{A: f.One(), B: f.NewElt()}}

	var prevBit uint64
	for i := bits - 1; i >= 0; i-- {
		b := bit(scalar, i)
		swap := b ^ prevBit
		field.CondSwap2(&x0.X, &x0.Z, &x1.X, &x1.Z, swap)

		sum := l.C.XADD(x0, x1, diff)
		dbl := l.C.XDBL(cp, x0)
		x0 = dbl
		x1 = sum
		prevBit = b
	}
	field.CondSwap2(&x0.X, &x0.Z, &x1.X, &x1.Z, prevBit)
	return x0, x1
}

// LadderAlice is LadderBob's counterpart for Alice's precomputed-doubling
// key-generation path. Its caller (kernelA in sidh.go) passes the curve's
// precomputed 2*Q_A point (params.DBLQA/YPA, loaded via loadDoubleQA) as xp,
// along with Alice's full secret scalar exactly as LADDERM_for_Alice's
// call site in the original source does -- the ladder body below then walks
// bits down to bit 1 and never reads bit 0, which is what makes its result
// x(K'*(2*Q_A)) for K'=floor(k/2) rather than x(k*Q_A): Alice's kernel
// generator needs the scalar's bottom bit folded in afterwards via a
// full-point addition (PlusAlice) instead of laddered over, since that bit
// picks between adding P_A or P_A+Q_A, not a multiple of Q_A.
func (l *Ladder) LadderAlice(cp *curve.Params, xp field.Elt2, scalar []byte, bits int) (r0, r1 curve.ProjPoint) {
	f := l.F
	x0 := curve.ProjPoint{X: field.Elt2{A: f.One(), B: f.NewElt()}, Z: f.NewElt2()}
	x1 := curve.ProjPoint{X: xp, Z: field.Elt2{A: f.One(), B: f.NewElt()}}
	diff := curve.ProjPoint{X: xp, Z: field.Elt2{A: f.One(), B: f.NewElt()}}

	var prevBit uint64
	for i := bits - 1; i >= 1; i-- {
		b := bit(scalar, i)
		swap := b ^ prevBit
		field.CondSwap2(&x0.X, &x0.Z, &x1.X, &x1.Z, swap)

		sum := l.C.XADD(x0, x1, diff)
		dbl := l.C.XDBL(cp, x0)
		x0 = dbl
		x1 = sum
		prevBit = b
	}
	field.CondSwap2(&x0.X, &x0.Z, &x1.X, &x1.Z, prevBit)
	return x0, x1
}

// Ladder3Pt computes x(P + kQ) given the base points xP, xQ and their
// difference xPQ = x(P-Q), walking scalar k from bit 0 upward. This is the
// ladder both Alice and Bob use at secret-agreement time to fold the
// partner's public basis into a single scalar multiplication, grounded on
// LADDER3PT's call sites in sidh.c.
func (l *Ladder) Ladder3Pt(cp *curve.Params, xp, xq, xpq field.Elt2, scalar []byte, bits int) curve.ProjPoint {
	f := l.F
	r0 := curve.ProjPoint{X: xq, Z: field.Elt2{A: f.One(), B: f.NewElt()}}
	r1 := curve.ProjPoint{X: xp, Z: field.Elt2{A: f.One(), B: f.NewElt()}}
	r2 := curve.ProjPoint{X: xpq, Z: field.Elt2{A: f.One(), B: f.NewElt()}}

	for i := 0; i < bits; i++ {
		b := bit(scalar, i)

		// Invariant r2 = r1 - r0. When b==1 the swap moves r1 into r2's
		// slot, so the addition below sets r1 = r1 + r0; when b==0 it sets
		// r2 = r2 - r0. The selection is the constant-time swap, not an if.
		field.CondSwap2(&r1.X, &r1.Z, &r2.X, &r2.Z, b)
		r2 = l.C.XADD(r0, r2, r1)
		r0 = l.C.XDBL(cp, r0)
		field.CondSwap2(&r1.X, &r1.Z, &r2.X, &r2.Z, b)
	}
	return r1
}

// RecoverY3Pt recovers the full point whose x-coordinate is r0 (including
// its y-coordinate), given r0 = x(kP) and r1 = x((k+1)P) as LadderBob and
// LadderAlice return them, plus the affine coordinates (xp, yp) of the
// ladder's base point P. This is the Okeya-Sakurai trick: the y-coordinate is
// recoverable from one known affine point and two consecutive ladder-step
// x-coordinates, without the ladder itself ever having carried a
// y-coordinate. 2*A, needed below, is simply cp.A24plus+cp.A24minus, since
// A24plus=(A+2C) and A24minus=(A-2C) sum to 2A regardless of C.
func (l *Ladder) RecoverY3Pt(cp *curve.Params, xp, yp field.Elt2, r0, r1 curve.ProjPoint) curve.FullPoint {
	f := l.F

	twoA := f.NewElt2()
	f.Add2(&twoA, &cp.A24plus, &cp.A24minus)

	v1 := f.NewElt2()
	v2 := f.NewElt2()
	v3 := f.NewElt2()
	v4 := f.NewElt2()

	f.Mul2(&v1, &xp, &r0.Z)
	f.Add2(&v2, &r0.X, &v1)
	f.Sub2(&v3, &r0.X, &v1)
	f.Sqr2(&v3, &v3)
	f.Mul2(&v3, &v3, &r1.X)
	f.Mul2(&v1, &twoA, &r0.Z)
	f.Add2(&v2, &v2, &v1)
	f.Mul2(&v4, &xp, &r0.X)
	f.Add2(&v4, &v4, &r0.Z)
	f.Mul2(&v2, &v2, &v4)
	f.Mul2(&v1, &v1, &r0.Z)
	f.Sub2(&v2, &v2, &v1)
	f.Mul2(&v2, &v2, &r1.Z)
	f.Sub2(&v2, &v2, &v3)
	f.Mul2(&v3, &yp, &r0.Z)
	f.Add2(&v3, &v3, &v3)
	f.Mul2(&v3, &v3, &r1.Z) // 2*yp*Z0*Z1

	out := curve.FullPoint{X: f.NewElt2(), Y: v2, Z: f.NewElt2()}
	f.Mul2(&out.X, &r0.X, &v3)
	f.Mul2(&out.Z, &r0.Z, &v3)
	return out
}

// PlusAlice builds the isogeny kernel generator R = P + k*Q for Alice's
// 2^eA-torsion walk, by full-point addition of the two recovered points,
// grounded on plus_for_Alice's call site in sidh.c. The addition itself
// lives in internal/curve (XADDFull) since it is pure curve arithmetic, not
// ladder bookkeeping.
func (l *Ladder) PlusAlice(p, q curve.FullPoint) curve.FullPoint {
	return l.C.XADDFull(p, q)
}

// PlusBob builds the isogeny kernel generator for Bob's 3^eB-torsion walk,
// grounded on plus_for_Bob's call site in sidh.c.
func (l *Ladder) PlusBob(p, q curve.FullPoint) curve.FullPoint {
	return l.C.XADDFull(p, q)
}

// RecoverYAlice recovers the full point at r0 for Alice's own secret
// ladder (r0 = x(kQ) from LadderAlice's output, r1 = x((k+1)Q) i.e. the
// ladder's companion running point, with (xq, yq) the affine base point Q),
// matching spec's RecoverY_for_Alice —
// the same Okeya-Sakurai formula RecoverY3Pt implements, named separately
// per call site as spec.md does.
func (l *Ladder) RecoverYAlice(cp *curve.Params, xq, yq field.Elt2, r0, r1 curve.ProjPoint) curve.FullPoint {
	return l.RecoverY3Pt(cp, xq, yq, r0, r1)
}

// RecoverYBob is RecoverYAlice's counterpart for Bob's own secret ladder,
// matching spec's RecoverY_for_Bob.
func (l *Ladder) RecoverYBob(cp *curve.Params, xq, yq field.Elt2, r0, r1 curve.ProjPoint) curve.FullPoint {
	return l.RecoverY3Pt(cp, xq, yq, r0, r1)
}
