// Package params holds the per-prime constant tables that specialise the
// field, curve, ladder, isogeny and strategy packages to one of the four
// supported primes (p434, p503, p610, p751).
//
// Go has no const generics over array length, so specialisation is done the
// way math/big's internal nat type and filippo.io/edwards25519 do it: a
// length-fixed []uint64 slice carried inside a plain struct value, rather
// than a [N]uint64 array parameterised by a compile-time N. Every field here
// is set once at package init and never resized.
package params

// Params bundles one prime's field characteristic, subgroup orders, public
// basis points, optimal strategies and derived byte-length/scalar-masking
// constants. NWordsField and NWordsOrder record the fixed slice lengths so
// that callers of the field/curve/ladder layers can allocate without ever
// re-deriving a length from len(P) on the hot path.
type Params struct {
	Name string

	NWordsField int
	NWordsOrder int

	// P, P2, P4 and PP1 are the prime, 2p, 4p and (p+1) in radix-2^64 digits.
	P   []uint64
	P2  []uint64
	P4  []uint64
	PP1 []uint64

	MontR2  []uint64
	MontOne []uint64

	AliceOrder []uint64
	BobOrder   []uint64

	// AGen and BGen each pack three fp2 x-coordinates: generator, image under
	// the dual isogeny and their difference, in that order. DBLQA (with its
	// y-coordinate YPA) is Alice's curve's precomputed doubled second basis
	// point 2*Q_A, the anchor LadderAlice/RecoverYAlice use instead of
	// doubling Q_A on the fly. PplusQA is the full affine point P_A+Q_A,
	// the bit0==1 addend PlusAlice folds in when reassembling Alice's kernel
	// generator. P3val is Bob's own base point P_B, stored as a real (not
	// GF(p^2)-general) affine (x,y) pair since P_B's own y is rational --
	// LadderBob/RecoverYBob's anchor for Bob's kernel-generator reassembly.
	AGen    []uint64
	BGen    []uint64
	DBLQA   []uint64
	YPA     []uint64
	PplusQA []uint64
	P3val   []uint64

	StratAlice []int
	StratBob   []int

	// EAlice is the 2-adic exponent (2^EAlice | AliceOrder). MaxAlice and
	// MaxBob are the isogeny-tree depths for Alice's 4-isogeny walk and
	// Bob's 3-isogeny walk respectively — these equal len(StratAlice)+1 and
	// len(StratBob)+1, not a bit-length of the subgroup order; that
	// distinction once surprised this package's author enough to record it
	// here: Bob's secret-scalar bit length (used below for SecretKeyBBytes)
	// is a different number from MaxBob.
	EAlice   int
	MaxAlice int
	MaxBob   int

	SecretKeyABytes int
	SecretKeyBBytes int

	// MaskAlice and MaskBob are applied to the most significant byte of a
	// freshly generated secret scalar so the scalar stays within its
	// subgroup's bit length without rejection sampling.
	MaskAlice byte
	MaskBob   byte

	// Bytelen is the encoded length of one fp element (ceil(bitlen(P)/8)),
	// the unit Import/Export work in.
	Bytelen int
}

var P434 = Params{
	Name:        "P434",
	NWordsField: 7,
	NWordsOrder: 4,

	P:   P434P,
	P2:  P434P2,
	P4:  P434P4,
	PP1: P434PP1,

	MontR2:  P434MontR2,
	MontOne: P434MontOne,

	AliceOrder: P434AliceOrder,
	BobOrder:   P434BobOrder,

	AGen:    P434AGen,
	BGen:    P434BGen,
	DBLQA:   P434DBLQA,
	YPA:     P434YPA,
	PplusQA: P434PplusQA,
	P3val:   P434P3val,

	StratAlice: P434StratAlice,
	StratBob:   P434StratBob,

	EAlice:   216,
	MaxAlice: len(P434StratAlice) + 1,
	MaxBob:   len(P434StratBob) + 1,

	SecretKeyABytes: 27,
	SecretKeyBBytes: 28,
	MaskAlice:       0xFF,
	MaskBob:         0x01,

	Bytelen: 55,
}

var P503 = Params{
	Name:        "P503",
	NWordsField: 8,
	NWordsOrder: 4,

	P:   P503P,
	P2:  P503P2,
	P4:  P503P4,
	PP1: P503PP1,

	MontR2:  P503MontR2,
	MontOne: P503MontOne,

	AliceOrder: P503AliceOrder,
	BobOrder:   P503BobOrder,

	AGen:    P503AGen,
	BGen:    P503BGen,
	DBLQA:   P503DBLQA,
	YPA:     P503YPA,
	PplusQA: P503PplusQA,
	P3val:   P503P3val,

	StratAlice: P503StratAlice,
	StratBob:   P503StratBob,

	EAlice:   250,
	MaxAlice: len(P503StratAlice) + 1,
	MaxBob:   len(P503StratBob) + 1,

	SecretKeyABytes: 32,
	SecretKeyBBytes: 32,
	MaskAlice:       0x03,
	MaskBob:         0x0F,

	Bytelen: 63,
}

var P610 = Params{
	Name:        "P610",
	NWordsField: 10,
	NWordsOrder: 5,

	P:   P610P,
	P2:  P610P2,
	P4:  P610P4,
	PP1: P610PP1,

	MontR2:  P610MontR2,
	MontOne: P610MontOne,

	AliceOrder: P610AliceOrder,
	BobOrder:   P610BobOrder,

	AGen:    P610AGen,
	BGen:    P610BGen,
	DBLQA:   P610DBLQA,
	YPA:     P610YPA,
	PplusQA: P610PplusQA,
	P3val:   P610P3val,

	StratAlice: P610StratAlice,
	StratBob:   P610StratBob,

	// P610 is the one prime in this package whose 2-adic exponent is odd;
	// the facade's initial-step correction (sidh.stripOddStep) is keyed off
	// EAlice%2, not off this comment, but it's worth a flag here for anyone
	// tempted to special-case primes by name instead.
	EAlice:   305,
	MaxAlice: len(P610StratAlice) + 1,
	MaxBob:   len(P610StratBob) + 1,

	SecretKeyABytes: 39,
	SecretKeyBBytes: 38,
	MaskAlice:       0x01,
	MaskBob:         0xFF,

	Bytelen: 77,
}

var P751 = Params{
	Name:        "P751",
	NWordsField: 12,
	NWordsOrder: 6,

	P:   P751P,
	P2:  P751P2,
	P4:  P751P4,
	PP1: P751PP1,

	MontR2:  P751MontR2,
	MontOne: P751MontOne,

	AliceOrder: P751AliceOrder,
	BobOrder:   P751BobOrder,

	AGen:    P751AGen,
	BGen:    P751BGen,
	DBLQA:   P751DBLQA,
	YPA:     P751YPA,
	PplusQA: P751PplusQA,
	P3val:   P751P3val,

	StratAlice: P751StratAlice,
	StratBob:   P751StratBob,

	EAlice:   372,
	MaxAlice: len(P751StratAlice) + 1,
	MaxBob:   len(P751StratBob) + 1,

	SecretKeyABytes: 47,
	SecretKeyBBytes: 48,
	MaskAlice:       0x0F,
	MaskBob:         0x03,

	Bytelen: 94,
}

// All lists the four supported parameter sets, in ascending security order.
var All = []*Params{&P434, &P503, &P610, &P751}
