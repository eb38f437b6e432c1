package params_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sidh-go/sidh/params"
)

func TestAllListsFourPrimes(t *testing.T) {
	require.Len(t, params.All, 4)
	names := map[string]bool{}
	for _, p := range params.All {
		names[p.Name] = true
	}
	for _, want := range []string{"P434", "P503", "P610", "P751"} {
		assert.True(t, names[want], "missing %s", want)
	}
}

func TestFieldWidthsMatchTableLengths(t *testing.T) {
	for _, p := range params.All {
		p := p
		t.Run(p.Name, func(t *testing.T) {
			assert.Len(t, p.P, p.NWordsField)
			assert.Len(t, p.P2, p.NWordsField)
			assert.Len(t, p.PP1, p.NWordsField)
			assert.Len(t, p.MontOne, p.NWordsField)
			assert.Len(t, p.MontR2, p.NWordsField)
			assert.Len(t, p.AGen, 6*p.NWordsField)
			assert.Len(t, p.BGen, 6*p.NWordsField)
			assert.Equal(t, len(p.StratAlice)+1, p.MaxAlice)
			assert.Equal(t, len(p.StratBob)+1, p.MaxBob)
		})
	}
}

func TestOnlyP610HasOddEAlice(t *testing.T) {
	for _, p := range params.All {
		odd := p.EAlice%2 == 1
		if p.Name == "P610" {
			assert.True(t, odd, "P610 is expected to have an odd 2-adic exponent")
		} else {
			assert.False(t, odd, "%s is expected to have an even 2-adic exponent", p.Name)
		}
	}
}
