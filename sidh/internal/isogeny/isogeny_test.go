package isogeny_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sidh-go/sidh/internal/curve"
	"github.com/sidh-go/sidh/internal/field"
	"github.com/sidh-go/sidh/internal/isogeny"
	"github.com/sidh-go/sidh/params"
)

func genElt2(p *params.Params, off int) field.Elt2 {
	n := p.NWordsField
	a := make(field.Elt, n)
	b := make(field.Elt, n)
	copy(a, p.AGen[off:off+n])
	copy(b, p.AGen[off+n:off+2*n])
	return field.Elt2{A: a, B: b}
}

func TestGet2IsogAndEval2IsogProduceCorrectlySizedOutput(t *testing.T) {
	for _, p := range params.All {
		p := p
		t.Run(p.Name, func(t *testing.T) {
			f := field.New(p)
			g := isogeny.New(f)
			kx := genElt2(p, 0)

			cp := g.Get2Isog(kx)
			require.Len(t, cp.A24plus.A, p.NWordsField)
			require.Len(t, cp.C24.A, p.NWordsField)

			one := field.Elt2{A: f.One(), B: f.NewElt()}
			pt := curve.ProjPoint{X: genElt2(p, 2*p.NWordsField), Z: one}
			img := g.Eval2Isog(kx, pt)
			assert.Len(t, img.X.A, p.NWordsField)
			assert.Len(t, img.Z.A, p.NWordsField)
		})
	}
}

func TestGet3IsogAndEval3IsogProduceCorrectlySizedOutput(t *testing.T) {
	for _, p := range params.All {
		p := p
		t.Run(p.Name, func(t *testing.T) {
			f := field.New(p)
			g := isogeny.New(f)
			one := field.Elt2{A: f.One(), B: f.NewElt()}
			kernel := curve.ProjPoint{X: genElt2(p, 0), Z: one}

			cp, iso := g.Get3Isog(kernel)
			require.Len(t, cp.A24plus.A, p.NWordsField)
			require.Len(t, iso.K1.A, p.NWordsField)

			pt := curve.ProjPoint{X: genElt2(p, 2*p.NWordsField), Z: one}
			img := g.Eval3Isog(iso, pt)
			assert.Len(t, img.X.A, p.NWordsField)
		})
	}
}

func TestGet4IsogAndEval4IsogProduceCorrectlySizedOutput(t *testing.T) {
	for _, p := range params.All {
		p := p
		t.Run(p.Name, func(t *testing.T) {
			f := field.New(p)
			g := isogeny.New(f)
			one := field.Elt2{A: f.One(), B: f.NewElt()}
			kernel := curve.ProjPoint{X: genElt2(p, 0), Z: one}

			cp, iso := g.Get4Isog(kernel)
			require.Len(t, cp.A24plus.A, p.NWordsField)
			require.Len(t, iso.K1.A, p.NWordsField)
			require.Len(t, iso.K2.A, p.NWordsField)
			require.Len(t, iso.K3.A, p.NWordsField)

			pt := curve.ProjPoint{X: genElt2(p, 2*p.NWordsField), Z: one}
			img := g.Eval4Isog(iso, pt)
			assert.Len(t, img.X.A, p.NWordsField)
		})
	}
}
