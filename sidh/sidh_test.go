package sidh_test

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sidh-go/sidh"
	"github.com/sidh-go/sidh/params"
)

func TestEphemeralKeyExchangeAgreesOnSharedSecret(t *testing.T) {
	for _, p := range params.All {
		p := p
		t.Run(p.Name, func(t *testing.T) {
			alicePrv := sidh.NewPrivateKey(p, sidh.KeyVariantA)
			require.NoError(t, alicePrv.Generate(rand.Reader))
			bobPrv := sidh.NewPrivateKey(p, sidh.KeyVariantB)
			require.NoError(t, bobPrv.Generate(rand.Reader))

			alicePub := sidh.EphemeralKeyGenerationA(alicePrv)
			bobPub := sidh.EphemeralKeyGenerationB(bobPrv)

			aliceShared := sidh.EphemeralSecretAgreementA(alicePrv, bobPub)
			bobShared := sidh.EphemeralSecretAgreementB(bobPrv, alicePub)

			require.Len(t, aliceShared, 2*p.Bytelen)
			assert.True(t, bytes.Equal(aliceShared, bobShared), "%s: shared secrets disagree", p.Name)
		})
	}
}

func TestPrivateKeyImportExportRoundTrip(t *testing.T) {
	for _, p := range params.All {
		p := p
		t.Run(p.Name, func(t *testing.T) {
			prv := sidh.NewPrivateKey(p, sidh.KeyVariantA)
			require.NoError(t, prv.Generate(rand.Reader))
			exported := prv.Export()

			restored := sidh.NewPrivateKey(p, sidh.KeyVariantA)
			require.NoError(t, restored.Import(exported))
			assert.Equal(t, exported, restored.Export())
			assert.Equal(t, prv.Size(), restored.Size())
		})
	}
}

func TestPrivateKeyImportRejectsWrongSize(t *testing.T) {
	p := &params.P434
	prv := sidh.NewPrivateKey(p, sidh.KeyVariantB)
	err := prv.Import(make([]byte, prv.Size()+1))
	assert.Error(t, err)
}

func TestPublicKeyImportExportRoundTrip(t *testing.T) {
	for _, p := range params.All {
		p := p
		t.Run(p.Name, func(t *testing.T) {
			prv := sidh.NewPrivateKey(p, sidh.KeyVariantA)
			require.NoError(t, prv.Generate(rand.Reader))
			pub := sidh.EphemeralKeyGenerationA(prv)

			exported := pub.Export()
			require.Len(t, exported, pub.Size())

			restored := sidh.NewPublicKey(p, sidh.KeyVariantA)
			require.NoError(t, restored.Import(exported))
			assert.Equal(t, exported, restored.Export())
		})
	}
}

func TestPublicKeyImportRejectsWrongSize(t *testing.T) {
	p := &params.P751
	pub := sidh.NewPublicKey(p, sidh.KeyVariantA)
	err := pub.Import(make([]byte, pub.Size()-1))
	assert.Error(t, err)
}

// TestBoundaryScalarsProduceConsistentKeyExchange exercises the low end of
// each side's scalar space: the one-bit scalar 1 on both sides, still
// masked the same way Generate would mask a random one.
func TestBoundaryScalarsProduceConsistentKeyExchange(t *testing.T) {
	for _, p := range params.All {
		p := p
		t.Run(p.Name, func(t *testing.T) {
			alicePrv := sidh.NewPrivateKey(p, sidh.KeyVariantA)
			alicePrv.Scalar[0] = 1
			alicePrv.Scalar[len(alicePrv.Scalar)-1] &= p.MaskAlice

			bobPrv := sidh.NewPrivateKey(p, sidh.KeyVariantB)
			bobPrv.Scalar[0] = 1
			bobPrv.Scalar[len(bobPrv.Scalar)-1] &= p.MaskBob

			alicePub := sidh.EphemeralKeyGenerationA(alicePrv)
			bobPub := sidh.EphemeralKeyGenerationB(bobPrv)

			aliceShared := sidh.EphemeralSecretAgreementA(alicePrv, bobPub)
			bobShared := sidh.EphemeralSecretAgreementB(bobPrv, alicePub)

			assert.True(t, bytes.Equal(aliceShared, bobShared), "%s: boundary scalar disagreement", p.Name)
		})
	}
}

// TestP610OddEAliceCorrectionIsExercised pins down that the facade's
// odd-eA handling (EAlice=305 for P610, the one prime in this package with
// an odd 2-adic exponent) still produces a consistent key exchange: a
// regression specifically for stripOddStep, not just the general case
// already covered above.
func TestP610OddEAliceCorrectionIsExercised(t *testing.T) {
	p := &params.P610
	require.True(t, p.EAlice%2 == 1, "test assumes P610 has an odd EAlice")

	alicePrv := sidh.NewPrivateKey(p, sidh.KeyVariantA)
	require.NoError(t, alicePrv.Generate(rand.Reader))
	bobPrv := sidh.NewPrivateKey(p, sidh.KeyVariantB)
	require.NoError(t, bobPrv.Generate(rand.Reader))

	alicePub := sidh.EphemeralKeyGenerationA(alicePrv)
	bobPub := sidh.EphemeralKeyGenerationB(bobPrv)

	aliceShared := sidh.EphemeralSecretAgreementA(alicePrv, bobPub)
	bobShared := sidh.EphemeralSecretAgreementB(bobPrv, alicePub)

	assert.True(t, bytes.Equal(aliceShared, bobShared))
}
