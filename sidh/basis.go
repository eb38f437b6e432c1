package sidh

import (
	"github.com/sidh-go/sidh/internal/curve"
	"github.com/sidh-go/sidh/internal/field"
	"github.com/sidh-go/sidh/params"
)

// eltFromWords copies n words starting at offset off out of src into a
// freshly allocated field.Elt, converting into Montgomery domain happens at
// the call site via field.Field.ToMontDomain where the source table isn't
// already Montgomery-encoded. The per-prime constant tables transcribed
// into sidh/params are stored exactly as the reference C tables declare
// them, already in Montgomery domain, so no conversion is needed here.
func eltFromWords(src []uint64, off, n int) field.Elt {
	e := make(field.Elt, n)
	copy(e, src[off:off+n])
	return e
}

// elt2Triple splits a packed array of 6*n words into three GF(p^2) elements
// (A0,B0, A1,B1, A2,B2), the layout params.Params.AGen/BGen use to pack a
// generator, its image under the dual isogeny, and their difference.
func elt2Triple(src []uint64, n int) (p0, p1, p2 field.Elt2) {
	p0 = field.Elt2{A: eltFromWords(src, 0*n, n), B: eltFromWords(src, 1*n, n)}
	p1 = field.Elt2{A: eltFromWords(src, 2*n, n), B: eltFromWords(src, 3*n, n)}
	p2 = field.Elt2{A: eltFromWords(src, 4*n, n), B: eltFromWords(src, 5*n, n)}
	return
}

// elt2Single splits a packed array of 2*n words into one GF(p^2) element.
func elt2Single(src []uint64, n int) field.Elt2 {
	return field.Elt2{A: eltFromWords(src, 0, n), B: eltFromWords(src, n, n)}
}

// elt2Pair splits a packed array of 4*n words into an (X, Y) affine GF(p^2)
// full point, the layout params.Params.PplusQA uses: X then Y, each its own
// GF(p^2) element, not the (X, Z) projective shape the name once suggested.
func elt2Pair(src []uint64, n int) (x, y field.Elt2) {
	x = elt2Single(src[0:2*n], n)
	y = elt2Single(src[2*n:4*n], n)
	return
}

// realPair splits a packed array of 2*n words into an (x, y) affine point
// whose coordinates are plain GF(p) values embedded in GF(p^2) with a zero
// imaginary part -- the layout params.Params.P3val uses, matching the
// original source's P3/DBL_QA arrays, which are declared as 2*NWORDS_FIELD
// real (not complex) words and sliced in half by pointer arithmetic rather
// than packed as a single Fp2 element.
func realPair(f *field.Field, src []uint64, n int) (x, y field.Elt2) {
	x = field.Elt2{A: eltFromWords(src, 0, n), B: f.NewElt()}
	y = field.Elt2{A: eltFromWords(src, n, n), B: f.NewElt()}
	return
}

// basisA holds Alice's three public basis points (generator P, Q and their
// difference P-Q), decoded once per Params value.
type basisA struct {
	P, Q, PQ field.Elt2
}

// basisB is the same shape for Bob.
type basisB struct {
	P, Q, PQ field.Elt2
}

func loadBasisA(p *params.Params) basisA {
	n := p.NWordsField
	bp, bq, bpq := elt2Triple(p.AGen, n)
	return basisA{P: bp, Q: bq, PQ: bpq}
}

func loadBasisB(p *params.Params) basisB {
	n := p.NWordsField
	bp, bq, bpq := elt2Triple(p.BGen, n)
	return basisB{P: bp, Q: bq, PQ: bpq}
}

// loadDoubleQA decodes the curve's precomputed 2*Q_A affine point from
// params.DBLQA (x) and params.YPA (y), the anchor LadderAlice/RecoverYAlice
// use for Alice's precomputed-doubling key-generation path.
func loadDoubleQA(f *field.Field, p *params.Params) curve.FullPoint {
	n := p.NWordsField
	return curve.FullPoint{
		X: elt2Single(p.DBLQA, n),
		Y: elt2Single(p.YPA, n),
		Z: f.One2(),
	}
}

// loadPplusQA decodes P_A+Q_A, the affine full point params.PplusQA packs,
// used as the bit0==1 addend when reassembling Alice's kernel generator.
func loadPplusQA(f *field.Field, p *params.Params) curve.FullPoint {
	n := p.NWordsField
	x, y := elt2Pair(p.PplusQA, n)
	return curve.FullPoint{X: x, Y: y, Z: f.One2()}
}

// loadP3 decodes Bob's own base point P3 from params.P3val, stored as a
// real (not GF(p^2)) affine pair per the original source's array layout.
func loadP3(f *field.Field, p *params.Params) curve.FullPoint {
	n := p.NWordsField
	x, y := realPair(f, p.P3val, n)
	return curve.FullPoint{X: x, Y: y, Z: f.One2()}
}
