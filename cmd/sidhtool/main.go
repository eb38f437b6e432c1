// Command sidhtool exercises an ephemeral SIDH key exchange end to end over
// every supported prime and reports pass/fail for each, in the simple
// log.Fatal-on-error style app.go uses for its own startup checks.
package main

import (
	"bytes"
	"crypto/rand"
	"errors"
	"log"

	"github.com/sidh-go/sidh"
	"github.com/sidh-go/sidh/params"
)

func main() {
	for _, p := range params.All {
		if err := roundTrip(p); err != nil {
			log.Fatalf("%s: %v", p.Name, err)
		}
		log.Printf("%s: key exchange ok", p.Name)
	}
}

func roundTrip(p *params.Params) error {
	alicePrv := sidh.NewPrivateKey(p, sidh.KeyVariantA)
	if err := alicePrv.Generate(rand.Reader); err != nil {
		return err
	}
	bobPrv := sidh.NewPrivateKey(p, sidh.KeyVariantB)
	if err := bobPrv.Generate(rand.Reader); err != nil {
		return err
	}

	alicePub := sidh.EphemeralKeyGenerationA(alicePrv)
	bobPub := sidh.EphemeralKeyGenerationB(bobPrv)

	aliceShared := sidh.EphemeralSecretAgreementA(alicePrv, bobPub)
	bobShared := sidh.EphemeralSecretAgreementB(bobPrv, alicePub)

	if !bytes.Equal(aliceShared, bobShared) {
		return errors.New("shared secrets disagree")
	}
	return nil
}
