// Package strategy walks the optimal-strategy isogeny tree: given a
// strategy table (params.Params.StratAlice or StratBob) it alternates
// partial scalar-multiplications with isogeny evaluations so that the full
// 2^eA- or 3^eB-degree isogeny is computed in the fewest point operations,
// deferring not-yet-needed intermediate points on a stack exactly the way
// traverseTreePublicKeyA/B and traverseTreeSharedKeyA/B do in
// _teacher_src/sike.go. The teacher's points/indices slices (grown with
// append, shrunk by re-slicing) are replaced here with a fixed-capacity
// stack, allocated once at the start of each WalkAlice4Isogeny/
// WalkBob3Isogeny call at the prime's own MaxAlice/MaxBob bound and never
// grown after that.
package strategy

import (
	"github.com/sidh-go/sidh/internal/curve"
	"github.com/sidh-go/sidh/internal/field"
	"github.com/sidh-go/sidh/internal/isogeny"
	"github.com/sidh-go/sidh/params"
)

// deferredPoint is one entry on the walk's stack: a point together with the
// isogeny-tree index it was deferred at.
type deferredPoint struct {
	pt  curve.ProjPoint
	idx int
}

// stack is a fixed-capacity LIFO of deferredPoints, sized once at
// construction to the walk's known maximum depth.
type stack struct {
	items []deferredPoint
}

func newStack(capacity int) *stack {
	return &stack{items: make([]deferredPoint, 0, capacity)}
}

func (s *stack) push(p curve.ProjPoint, idx int) {
	if len(s.items) == cap(s.items) {
		panic("strategy: stack overflow, walk exceeded its prime's MaxAlice/MaxBob bound")
	}
	s.items = append(s.items, deferredPoint{pt: p, idx: idx})
}

func (s *stack) pop() (curve.ProjPoint, int) {
	n := len(s.items)
	top := s.items[n-1]
	s.items = s.items[:n-1]
	return top.pt, top.idx
}

// Walker binds the strategy traversal to one field/curve/isogeny triple and
// a prime's parameters.
type Walker struct {
	F *field.Field
	C *curve.Curve
	G *isogeny.Isogeny
	P *params.Params
}

// New returns the strategy walker for the given field, curve arithmetic,
// isogeny primitives and prime parameters, which must all be built over the
// same prime.
func New(f *field.Field, c *curve.Curve, g *isogeny.Isogeny, p *params.Params) *Walker {
	return &Walker{F: f, C: c, G: g, P: p}
}

// WalkAlice4Isogeny walks the 2-power isogeny tree for Alice using strat
// (params.Params.StratAlice). cp is the starting curve, xr the x-only
// kernel-generator point (of order 2^eA, already corrected for an odd eA by
// the caller). images, when non-nil, are extra points (Bob's public basis)
// to be pushed through every isogeny in the walk alongside the kernel
// point — exactly the phiP/phiQ/phiR parameters of
// traverseTreePublicKeyA in the teacher. When images is nil only the
// codomain curve is produced (the traverseTreeSharedKeyA case).
func (w *Walker) WalkAlice4Isogeny(cp curve.Params, xr curve.ProjPoint, strat []int, images []curve.ProjPoint) (curve.Params, curve.ProjPoint, []curve.ProjPoint) {
	st := newStack(w.P.MaxAlice)
	var i, sidx int

	stratSz := len(strat)
	for j := 1; j <= stratSz; j++ {
		for i <= stratSz-j {
			st.push(xr, i)
			k := strat[sidx]
			sidx++
			xr = w.C.XDBLe(&cp, xr, 2*k)
			i += k
		}

		cpNew, iso4 := w.G.Get4Isog(xr)
		cp = cpNew
		for idx := range st.items {
			st.items[idx].pt = w.G.Eval4Isog(iso4, st.items[idx].pt)
		}
		for k := range images {
			images[k] = w.G.Eval4Isog(iso4, images[k])
		}

		var poppedIdx int
		xr, poppedIdx = st.pop()
		i = poppedIdx
	}

	// Final 4-isogeny, with xr now of order 4.
	cpNew, iso4 := w.G.Get4Isog(xr)
	cp = cpNew
	for k := range images {
		images[k] = w.G.Eval4Isog(iso4, images[k])
	}
	return cp, xr, images
}

// WalkBob3Isogeny walks the 3-power isogeny tree for Bob using strat
// (params.Params.StratBob), symmetric to WalkAlice4Isogeny but using
// 3-isogenies and tripling.
func (w *Walker) WalkBob3Isogeny(cp curve.Params, xr curve.ProjPoint, strat []int, images []curve.ProjPoint) (curve.Params, curve.ProjPoint, []curve.ProjPoint) {
	st := newStack(w.P.MaxBob)
	var i, sidx int

	stratSz := len(strat)
	for j := 1; j <= stratSz; j++ {
		for i <= stratSz-j {
			st.push(xr, i)
			k := strat[sidx]
			sidx++
			xr = w.C.XTPLe(&cp, xr, k)
			i += k
		}

		cpNew, iso3 := w.G.Get3Isog(xr)
		cp = cpNew
		for idx := range st.items {
			st.items[idx].pt = w.G.Eval3Isog(iso3, st.items[idx].pt)
		}
		for k := range images {
			images[k] = w.G.Eval3Isog(iso3, images[k])
		}

		var poppedIdx int
		xr, poppedIdx = st.pop()
		i = poppedIdx
	}

	// Final 3-isogeny, with xr now of order 3.
	cpNew, iso3 := w.G.Get3Isog(xr)
	cp = cpNew
	for k := range images {
		images[k] = w.G.Eval3Isog(iso3, images[k])
	}
	return cp, xr, images
}
