// Code transcribed from the NIST PQC SIDH/SIKE reference constant tables
// (P434.c, P503.c, P610.c, P751.c) for each of the four supported primes.
package params

func words(lit ...uint64) []uint64 { return lit }

// ---- P434 ----
var P434P = words(
	0xffffffffffffffff, 0xffffffffffffffff, 0xffffffffffffffff, 0xfdc1767ae2ffffff, 0x7bc65c783158aea3, 0x6cfc5fd681c52056,
	0x0002341f27177344,
)
var P434P2 = words(
	0xfffffffffffffffe, 0xffffffffffffffff, 0xffffffffffffffff, 0xfb82ecf5c5ffffff, 0xf78cb8f062b15d47, 0xd9f8bfad038a40ac,
	0x0004683e4e2ee688,
)
var P434P4 = words(
	0xfffffffffffffffc, 0xffffffffffffffff, 0xffffffffffffffff, 0xf705d9eb8bffffff, 0xef1971e0c562ba8f, 0xb3f17f5a07148159,
	0x0008d07c9c5dcd11,
)
var P434PP1 = words(
	0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0xfdc1767ae3000000, 0x7bc65c783158aea3, 0x6cfc5fd681c52056,
	0x0002341f27177344,
)
var P434AliceOrder = words(
	0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0x0000000001000000,
)
var P434BobOrder = words(
	0x58aea3fdc1767ae3, 0xc520567bc65c7831, 0x1773446cfc5fd681, 0x0000000002341f27,
)
var P434AGen = words(
	0x6e18d3a63313a738, 0x1dcc496dd6dde298, 0xa35f3f7dafbe2b43, 0xc6b9a5cc670071eb, 0x2ea3db085283675a, 0x0fdfe173a0297f36,
	0x0002200804eb824d, 0xb999e9e259f7bfa8, 0x2584d67d0c2eeaa9, 0x80ab07d4e9625724, 0x781da616a7a76e54, 0x9be449736374f491,
	0x8c6f86e8b0c4d74a, 0x0001c1d4812cbd98, 0x257dbd53095fd263, 0xbbb3c7a7b4edb1d4, 0xa817b7fddd5bb8da, 0xf5de963b242b7ab3,
	0x7f51b5362fc94cb6, 0xe7d2496b526dff16, 0x0001e962cf69118c, 0xed9dc89467fb039d, 0x17c71e114b5803d0, 0x816c3379be9647bf,
	0xb07f441a15434b64, 0xcc65c1804af4cbd1, 0xf06bf5f074032c77, 0x0001a251f94cf02c, 0xa26194ab4bd1a16f, 0xcfcd9f7f04d5ab10,
	0x1bb4a7c04c37482c, 0x71dee733632da36d, 0x7335784b5ecf957f, 0x66ae2381533a7f09, 0x000232bffe6fa42f, 0x60acbe5d899cfa6a,
	0x82ac55a556e5a22f, 0x437d8c2ac83fdc6b, 0x620a8da602543ede, 0xd19aba8092a1e8c2, 0xaff1aa61981c95d3, 0x0001a7232b0c035e,
)
var P434BGen = words(
	0xe172658571249ba8, 0x9d8f52cb15829da0, 0xe3a7c7f9f0e3f832, 0x8b825dd0b9410d30, 0xf42f815734752eda, 0xcb35dd9160997586,
	0x00018b3aaaad0f79, 0xcf0b435c40c1375d, 0x58ac8a63992b36ef, 0x416d0b3dfb0c1df5, 0xb257e9cfe8985f15, 0xa493d98a7a1d6df2,
	0x6d6781a5b3fde61f, 0x000179ac0d886a3f, 0xe172658571249ba8, 0x9d8f52cb15829da0, 0xe3a7c7f9f0e3f832, 0x8b825dd0b9410d30,
	0xf42f815734752eda, 0xcb35dd9160997586, 0x00018b3aaaad0f79, 0x30f4bca3bf3ec8a2, 0xa753759c66d4c910, 0xbe92f4c204f3e20a,
	0x4b698caafa67a0ea, 0xd73282edb73b40b1, 0xff94de30cdc73a36, 0x0000ba73198f0904, 0x9f7367022efdf650, 0xa8c21c687a91d6bc,
	0xddb909c497c4bfed, 0x66fd362a30232ebf, 0x84ac5026408590e1, 0x5378004cb74da4ed, 0x00008aa46b9e55b2, 0x0000000000000000,
	0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000,
)
var P434DBLQA = words(
	0x6448cb5bd976250e, 0x3092cf8c8803d8b4, 0x2542331c81c2c2f8, 0x0c086e30db24aa32, 0xd1b7f3e5532ee315, 0x226067da42cd56db,
	0x0001dea86eb48d8a, 0x414795f6a70d543e, 0xdc7d2e0b9229a814, 0x679cd711c5b2ac8e, 0xcc92a943030f0d18, 0xc2bb3cda074e0076,
	0x19332e71dc423ba4, 0x0001c95a2fc045dd,
)
var P434YPA = words(
	0x9b989be60cff0d15, 0x8b80a32171813f53, 0xf4f067606a56228e, 0x48f8237e159577b0, 0x42529574b9e74156, 0xd8d26313f4aa9f9c,
	0x0001279ac6bc876c, 0x9597544cbe9d88df, 0x13801f440df32748, 0xe4ecaff9c15d0ceb, 0x7867d92eb045a646, 0x02399062ba8c64ef,
	0xe9258c0bdf8bbff7, 0x0001ce4bbf872205,
)
var P434PplusQA = words(
	0xa26194ab4bd1a16f, 0xcfcd9f7f04d5ab10, 0x1bb4a7c04c37482c, 0x71dee733632da36d, 0x7335784b5ecf957f, 0x66ae2381533a7f09,
	0x000232bffe6fa42f, 0x9f5341a276630595, 0x7d53aa5aa91a5dd0, 0xbc8273d537c02394, 0x9bb6e8d4e0abc121, 0xaa2ba1f79eb6c5e1,
	0xbd0ab574e9a88a82, 0x00008cfbfc0b6fe5, 0xda1e960ae3e5c4e8, 0x6effc0350686260f, 0x0bd6eaccf62467b5, 0x65939cfb1161e478,
	0x5d0ed5901e82ddcb, 0xda8be7ee6d455d94, 0x00019017b8ce77b2, 0xd30ece1ea3e19f40, 0x3abb724e9467b8fd, 0xc34cec4a1f9f85d4,
	0xe0b40f984e683dc0, 0x684c9b19b4180b6e, 0x7314c90c41f2842e, 0x0000e0745aab36b4,
)
var P434P3val = words(
	0x214c34bb192f67a0, 0x0dd49d3d02115d30, 0x0700652c1a7b66ed, 0x1f856b48f4ff0024, 0xfbde6f4e6a705221, 0xb951a3d6c93d87b8,
	0x0000ae8adb818ed6, 0x51d889fe197209c1, 0x191bcd9dbe4fe0ef, 0x447818cf5e54dd8a, 0x3f42710e8562a583, 0x647bdbb01c66dcb5,
	0xf402d36c15ea12e1, 0x0000a1e1d287c14c,
)
var P434MontR2 = words(
	0x28e55b65dcd69b30, 0xacec7367768798c2, 0xab27973f8311688d, 0x175cc6af8d6c7c0b, 0xabcd92bf2dde347e, 0x69e16a61c7686d9a,
	0x000025a89bcdd12a,
)
var P434MontOne = words(
	0x000000000000742c, 0x0000000000000000, 0x0000000000000000, 0xb90ff404fc000000, 0xd801a4fb559facd4, 0xe93254545f77410c,
	0x0000eceea7bd2eda,
)
var P434StratAlice = []int{
	48, 28, 16, 8, 4, 2, 1, 1, 2, 1, 1, 4, 2, 1, 1, 2,
	1, 1, 8, 4, 2, 1, 1, 2, 1, 1, 4, 2, 1, 1, 2, 1,
	1, 13, 7, 4, 2, 1, 1, 2, 1, 1, 3, 2, 1, 1, 1, 1,
	5, 4, 2, 1, 1, 2, 1, 1, 2, 1, 1, 1, 21, 12, 7, 4,
	2, 1, 1, 2, 1, 1, 3, 2, 1, 1, 1, 1, 5, 3, 2, 1,
	1, 1, 1, 2, 1, 1, 1, 9, 5, 3, 2, 1, 1, 1, 1, 2,
	1, 1, 1, 4, 2, 1, 1, 1, 2, 1, 1,
}
var P434StratBob = []int{
	66, 33, 17, 9, 5, 3, 2, 1, 1, 1, 1, 2, 1, 1, 1, 4,
	2, 1, 1, 1, 2, 1, 1, 8, 4, 2, 1, 1, 1, 2, 1, 1,
	4, 2, 1, 1, 2, 1, 1, 16, 8, 4, 2, 1, 1, 1, 2, 1,
	1, 4, 2, 1, 1, 2, 1, 1, 8, 4, 2, 1, 1, 2, 1, 1,
	4, 2, 1, 1, 2, 1, 1, 32, 16, 8, 4, 3, 1, 1, 1, 1,
	2, 1, 1, 4, 2, 1, 1, 2, 1, 1, 8, 4, 2, 1, 1, 2,
	1, 1, 4, 2, 1, 1, 2, 1, 1, 16, 8, 4, 2, 1, 1, 2,
	1, 1, 4, 2, 1, 1, 2, 1, 1, 8, 4, 2, 1, 1, 2, 1,
	1, 4, 2, 1, 1, 2, 1, 1,
}

// ---- P503 ----
var P503P = words(
	0xffffffffffffffff, 0xffffffffffffffff, 0xffffffffffffffff, 0xabffffffffffffff, 0x13085bda2211e7a0, 0x1b9bf6c87b7e7daf,
	0x6045c6bdda77a4d0, 0x004066f541811e1e,
)
var P503P2 = words(
	0xfffffffffffffffe, 0xffffffffffffffff, 0xffffffffffffffff, 0x57ffffffffffffff, 0x2610b7b44423cf41, 0x3737ed90f6fcfb5e,
	0xc08b8d7bb4ef49a0, 0x0080cdea83023c3c,
)
var P503P4 = words(
	0xfffffffffffffffc, 0xffffffffffffffff, 0xffffffffffffffff, 0xafffffffffffffff, 0x4c216f6888479e82, 0x6e6fdb21edf9f6bc,
	0x81171af769de9340, 0x01019bd506047879,
)
var P503PP1 = words(
	0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0xac00000000000000, 0x13085bda2211e7a0, 0x1b9bf6c87b7e7daf,
	0x6045c6bdda77a4d0, 0x004066f541811e1e,
)
var P503AliceOrder = words(
	0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0x0400000000000000,
)
var P503BobOrder = words(
	0xc216f6888479e82b, 0xe6fdb21edf9f6bc4, 0x1171af769de93406, 0x1019bd5060478798,
)
var P503AGen = words(
	0x3353b596d45a95a6, 0xdf7e0a94a39b96c0, 0x715dc90a72a3223f, 0xcb73f56e5ad9430f, 0xe4b5da591aee475d, 0x322f1ce730413bd7,
	0x4eea4028d168dad2, 0x000b254087875ffa, 0xac3985c5bb18d89d, 0x45f2445c680a1e40, 0xf59454b450fbab11, 0x95dc27d8152a0dae,
	0x42a4fd439715e500, 0xb958fba1cd4cc505, 0xc4e5ab2abb732fc5, 0x00268ed322f62aca, 0xdd27e5adf7f57ab4, 0x7c1379d2b09f0434,
	0x6e267408f1c8c89f, 0xc3bb383c07b60035, 0x9268c9183a95ecd5, 0x9327ec043e0f021f, 0xe63d2d907a9de5a5, 0x003110b6b4e0cd93,
	0x40b6bc5f5c2675e6, 0x62ad4b61eedc2c5c, 0xa1cca6b5091ef540, 0xc6273d4e1d8fc7fe, 0x266d8b99ee63a78f, 0x39604e6927906566,
	0xab8ba8f2c6a977f8, 0x000cd759ee7ab739, 0x1482ea2c7a8f5fa0, 0xb42c8b9c007e5fe5, 0xcfcff2625c69e7fd, 0x8334c3f384c268f5,
	0xd71e78e25fa4db2f, 0x64becfbe41708879, 0x00103ff021ef7bf9, 0x002695bb8221e83b, 0x0a08787e922a1030, 0x8d34581f64bce547,
	0x2fa5bed41306271a, 0xec24812abd206dcf, 0x978fa888c3cc6366, 0x2bff991cdb7ce058, 0xa0bccc1a447cf056, 0x002425429a072d82,
)
var P503BGen = words(
	0xb810321963cf561f, 0xaca612873fbc647f, 0xe5c29cb78215b634, 0xb277acabe764f907, 0x76dba8fccdff4721, 0x1b4e6541441eb543,
	0xdaab92e8b2dd0517, 0x001ecaa65407e4c9, 0xf7eee8d8d30365e6, 0x48f0af97691e0303, 0xa8ac75108bfda627, 0x07c0f65dcf8450f1,
	0xcd74e9ca0e92beca, 0x342e232149ca1dfa, 0x8e841ec6d7725de3, 0x002429a4e9a12cb0, 0xb810321963cf561f, 0xaca612873fbc647f,
	0xe5c29cb78215b634, 0xb277acabe764f907, 0x76dba8fccdff4721, 0x1b4e6541441eb543, 0xdaab92e8b2dd0517, 0x001ecaa65407e4c9,
	0x081117272cfc9a19, 0xb70f506896e1fcfc, 0x57538aef740259d8, 0xa43f09a2307baf0e, 0x45937210137f28d6, 0xe76dd3a731b45fb4,
	0xd1c1a7f7030546ec, 0x001c3d5057dff16d, 0x6e3def7c8a5a47d2, 0x12d9af90f92fc868, 0xce33d50fc931894b, 0x2927354e05ed037c,
	0x4864ad1d8b6e4e56, 0x2c6bb7e4cd4284dd, 0x50a30a93843ddc28, 0x0038195667c39958, 0x0000000000000000, 0x0000000000000000,
	0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000,
)
var P503DBLQA = words(
	0x273f6c464cb9ab1a, 0x83722dbae9836b36, 0x7236dd158d1a1bbf, 0xbe84ed2fd6fc9b11, 0xf4fac85bba91e9b4, 0x783d71c36f23ae76,
	0x6fc94cf24bda330a, 0x003929a6320c9596, 0x03e3209393cb32a2, 0x689964ccab348a84, 0x74471effced8819b, 0x661d7240b28e2790,
	0x71aae7baae2179ca, 0x5da64f579d150d5b, 0x17919259b69ea954, 0x00077328aa89bbc7,
)
var P503YPA = words(
	0xbc88bb85404378e5, 0x61071195bc44bf8f, 0xc92d13994ce9b8b3, 0x9ed615392dcf6ca2, 0xc4a95165fb25bfda, 0xeeea8545ebeaec62,
	0xac09c1c3e91b41fd, 0x000b43ac79a90a0c, 0xe8b38a79e90eaadb, 0x840b284661ccfc39, 0x06d5091432c311ad, 0x0dafbd9cd646033b,
	0x3faf77bc98339af0, 0x75f0c7a7aa5d03a3, 0xd188da98de124c6a, 0x002780b2b7b1c9cc,
)
var P503PplusQA = words(
	0x1482ea2c7a8f5fa0, 0xb42c8b9c007e5fe5, 0xcfcff2625c69e7fd, 0x8334c3f384c268f5, 0xd71e78e25fa4db2f, 0x64becfbe41708879,
	0x00103ff021ef7bf9, 0x002695bb8221e83b, 0xf5f787816dd5efcf, 0x72cba7e09b431ab8, 0xd05a412becf9d8e5, 0xbfdb7ed542df9230,
	0x7b78b3515e458439, 0xef9c5daba0019d56, 0xbf88faa395fab479, 0x001c41b2a779f09b, 0x4f151d6b2697df41, 0xf2286438aadddb71,
	0x62378cc5be23004f, 0x822807933e84ad42, 0x36db6c363e3d2500, 0x95941f4db77237b2, 0xfd917b6f231a9e7c, 0x001e1e9b5aa4f411,
	0xb3d457620c43d607, 0x96c95df412038dbe, 0xf4e14d69d3ef397c, 0x03ff63724a560957, 0xbde046fe40105145, 0x05762a00b1b2c71f,
	0x97e2dfed61620d74, 0x00001c4742befd3c,
)
var P503P3val = words(
	0x4256c520fb388820, 0x744fd7c3baaf0a13, 0x4b6a2dddb12cbcb8, 0xe46826e27f427df8, 0xfe4a663cd505a61b, 0xd6b3a1baf025c695,
	0x7c3bb62b8fcc00bd, 0x003afdde4a35746c, 0x440192590061240e, 0x60c942451ec3e20d, 0x2195638e3b7632ca, 0xba84ac322aa59d16,
	0x3751cbf97048e02d, 0x6a583e4c816eac44, 0x7a984d4f477762c1, 0x0027b5ab2e503d63,
)
var P503MontR2 = words(
	0x5289a0cf641d011f, 0x9b88257189fed2b9, 0xa3b365d58dc8f17a, 0x5bc57ab6eff168ec, 0x9e51998bd84d4423, 0xbf8999cbac3b5695,
	0x46e9127bce14cdb6, 0x003f6cfce8b81771,
)
var P503MontOne = words(
	0x00000000000003f9, 0x0000000000000000, 0x0000000000000000, 0xb400000000000000, 0x63cb1a6ea6ded2b4, 0x51689d8d667eb37d,
	0x8acd77c71ab24142, 0x0026fbaec60f5953,
)
var P503StratAlice = []int{
	61, 32, 16, 8, 4, 2, 1, 1, 2, 1, 1, 4, 2, 1, 1, 2,
	1, 1, 8, 4, 2, 1, 1, 2, 1, 1, 4, 2, 1, 1, 2, 1,
	1, 16, 8, 4, 2, 1, 1, 2, 1, 1, 4, 2, 1, 1, 2, 1,
	1, 8, 4, 2, 1, 1, 2, 1, 1, 4, 2, 1, 1, 2, 1, 1,
	29, 16, 8, 4, 2, 1, 1, 2, 1, 1, 4, 2, 1, 1, 2, 1,
	1, 8, 4, 2, 1, 1, 2, 1, 1, 4, 2, 1, 1, 2, 1, 1,
	13, 8, 4, 2, 1, 1, 2, 1, 1, 4, 2, 1, 1, 2, 1, 1,
	5, 4, 2, 1, 1, 2, 1, 1, 2, 1, 1, 1,
}
var P503StratBob = []int{
	71, 38, 21, 13, 8, 4, 2, 1, 1, 2, 1, 1, 4, 2, 1, 1,
	2, 1, 1, 5, 4, 2, 1, 1, 2, 1, 1, 2, 1, 1, 1, 9,
	5, 3, 2, 1, 1, 1, 1, 2, 1, 1, 1, 4, 2, 1, 1, 1,
	2, 1, 1, 17, 9, 5, 3, 2, 1, 1, 1, 1, 2, 1, 1, 1,
	4, 2, 1, 1, 1, 2, 1, 1, 8, 4, 2, 1, 1, 1, 2, 1,
	1, 4, 2, 1, 1, 2, 1, 1, 33, 17, 9, 5, 3, 2, 1, 1,
	1, 1, 2, 1, 1, 1, 4, 2, 1, 1, 1, 2, 1, 1, 8, 4,
	2, 1, 1, 1, 2, 1, 1, 4, 2, 1, 1, 2, 1, 1, 16, 8,
	4, 2, 1, 1, 1, 2, 1, 1, 4, 2, 1, 1, 2, 1, 1, 8,
	4, 2, 1, 1, 2, 1, 1, 4, 2, 1, 1, 2, 1, 1,
}

// ---- P610 ----
var P610P = words(
	0xffffffffffffffff, 0xffffffffffffffff, 0xffffffffffffffff, 0xffffffffffffffff, 0x6e01ffffffffffff, 0xb1784de8aa5ab02e,
	0x9ae7bf45048ff9ab, 0xb255b2fa10c4252a, 0x819010c251e7d88c, 0x000000027bf6a768,
)
var P610P2 = words(
	0xfffffffffffffffe, 0xffffffffffffffff, 0xffffffffffffffff, 0xffffffffffffffff, 0xdc03ffffffffffff, 0x62f09bd154b5605c,
	0x35cf7e8a091ff357, 0x64ab65f421884a55, 0x03202184a3cfb119, 0x00000004f7ed4ed1,
)
var P610P4 = words(
	0xfffffffffffffffc, 0xffffffffffffffff, 0xffffffffffffffff, 0xffffffffffffffff, 0xb807ffffffffffff, 0xc5e137a2a96ac0b9,
	0x6b9efd14123fe6ae, 0xc956cbe8431094aa, 0x06404309479f6232, 0x00000009efda9da2,
)
var P610PP1 = words(
	0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0x6e02000000000000, 0xb1784de8aa5ab02e,
	0x9ae7bf45048ff9ab, 0xb255b2fa10c4252a, 0x819010c251e7d88c, 0x000000027bf6a768,
)
var P610AliceOrder = words(
	0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0x0002000000000000,
)
var P610BobOrder = words(
	0x26f4552d58173701, 0xdfa28247fcd5d8bc, 0xd97d086212954d73, 0x086128f3ec46592a, 0x00013dfb53b440c8,
)
var P610AGen = words(
	0x31c8af7ffc0de9fa, 0x8a8ad55d2ac8a709, 0x95a4dc49b64e5b2c, 0xf08c77aae90abe83, 0x675e4ff97c95845d, 0xf8a22591248401f0,
	0x73f573a4ff34a84a, 0x37d18a6c3d989158, 0x0ee73973862a3e95, 0x000000024084fccb, 0x4b8c9ced6def0b8b, 0x652c800d926ab992,
	0x3dfa6d6b8fd37d80, 0xa30c578cd98efd79, 0x9fc067e58ccbd32e, 0x2b0599aeaf150fdb, 0xba321b31886f3292, 0xe0011f56247547a1,
	0x28ca0747910bfae2, 0x00000000fc020a14, 0x2728178178deafbd, 0xd377c4656dbc71f0, 0x968642007b807932, 0xb8b04b1039062a21,
	0xf824771b468a977c, 0x260f1c50354f46ab, 0x78a3d37cdbbd4dc5, 0x1fb1bac6851ba175, 0x0a73444f1cac4a10, 0x00000000f3a5c2bb,
	0x4f828b752e825bb4, 0x82cea210ac766c69, 0x8b1bbc87dad8bedd, 0x9bfc5b9ce215b423, 0xf7e1bcc0c541177c, 0x7727e3a0f1a1af24,
	0xfbcfe4177d2b0221, 0xbb15bdcc160d902a, 0x3fe1467b4a911446, 0x00000001a495cb35, 0x38687702d78d1a93, 0x58c09fd23b1e1b56,
	0xc54917327d5c0fab, 0x0b6d55b7be801a3c, 0xeb3ae21c8b93e9e9, 0xecb45ad6d24ff76a, 0x850645b4f39ec5f2, 0xe6f78202586c9b3a,
	0x2923209a250f7f66, 0x0000000026fb150f, 0x5ac7b27f9096f718, 0x487ddd2820132c83, 0x6b21ac48569e12d8, 0x57b54e5a827d1cd9,
	0xdb7c4beb143e4130, 0xb6781ca1da245ead, 0xcc09878a2a6d7c45, 0x980726c5232c75e5, 0x50d3a7350792c35f, 0x0000000172b595db,
)
var P610BGen = words(
	0xd4a2cf040bc56f2c, 0x58f1d1d2b190ede7, 0x2229f10d3bc7ba47, 0x769ab0f0edd86aa4, 0x097f1214b80d8463, 0x9b23774d13ed3eee,
	0x9a182e846daa95c6, 0x343741369b273442, 0x61fb37462569d4bb, 0x00000001815ef8b9, 0xf380ca27c26bf32e, 0xd594c3ea0698d298,
	0x21d388e632d1ca2e, 0xdd1e0b34330e0ab0, 0xea7b89cad59ca8c2, 0x28c129bfc584bec1, 0x48d1e802fc7418cf, 0x11f3a548c5dffdf7,
	0xdb0e9af98d314f67, 0x0000000219918d2b, 0xd4a2cf040bc56f2c, 0x58f1d1d2b190ede7, 0x2229f10d3bc7ba47, 0x769ab0f0edd86aa4,
	0x097f1214b80d8463, 0x9b23774d13ed3eee, 0x9a182e846daa95c6, 0x343741369b273442, 0x61fb37462569d4bb, 0x00000001815ef8b9,
	0x0c7f35d83d940cd1, 0x2a6b3c15f9672d67, 0xde2c7719cd2e35d1, 0x22e1f4cbccf1f54f, 0x838676352a63573d, 0x88b72428e4d5f16c,
	0x5215d742081be0dc, 0xa0620db14ae42733, 0xa68175c8c4b68925, 0x0000000062651a3c, 0x4f62205a5dafb369, 0xa2b75d5bc06c691f,
	0x6b82c9b893d51c38, 0x2c2467d7ab7daa2c, 0x8a8d5ac13c2c5add, 0xbc3aec544f8953f5, 0xbc43c1be1b1dc069, 0xb8cda0908aebcd84,
	0xa213356db0fbfcff, 0x000000015f063030, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000,
	0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000,
)
var P610DBLQA = words(
	0x02c9e52fa31b9b76, 0xef4088ad3e54c6dd, 0xc18e7055d2cff348, 0x24b3268c87d5f690, 0xdd80d94ade7b0a93, 0x5ee075b1e9a6c6bd,
	0x27f68f76241404bd, 0x2b267148416a9627, 0x27270dafd0dd30ff, 0x00000000d8b7e841, 0xb84b1e242a63879e, 0xd3a74c3d2770fa06,
	0x49df32c277de73a3, 0xca452cb04eba1741, 0x0e36ec74b21763cf, 0xee808c414124f7b3, 0xcdbc7c4c7fa2f565, 0x6ec6a04436a3b6dd,
	0x655153fcac56e490, 0x00000001c8ae36cc,
)
var P610YPA = words(
	0x3ca84837d69d8728, 0xb2bdfe3304cb7401, 0x8c840937950ad3e9, 0xce8094a539aa6c49, 0xf0802aae490f29a0, 0x5458a8e61bb9d01f,
	0x3592a73de4758511, 0x7dea75b85a60f316, 0xf835eeac9b12cc1d, 0x000000011c4e0162, 0x087a90900552b058, 0xf34899fe9411dc6a,
	0x03807cf5b95b0168, 0xc986baf1e3ffded4, 0x1d10eac33aa0781a, 0xd9569230f9a2d512, 0xf8295f6189dbaaf3, 0x26b44d4cecb1a5e8,
	0x9ca4ce754143daa4, 0x00000000af517dfc,
)
var P610PplusQA = words(
	0x3ae8bb4f4de5e21a, 0x3c646dfde429c031, 0x9dc5916c37a21fc4, 0x1754faf5d9dc1ba3, 0x53f7022de9e07850, 0x97ac6836c73d072e,
	0x26e37b2502a716d7, 0x3e643c9018eca8e5, 0xc796641a6ee9017f, 0x000000012e6a48ec, 0x6bff31eccb1e2092, 0xd916e73e07769500,
	0xedf799cc675ee22b, 0x0b3c36ed05b36434, 0x629758b74e92643e, 0x3e35456235455243, 0x87624a13997758c7, 0xfde1837097e7d59b,
	0x6eeffed35309078b, 0x00000000b12d2a52, 0xeabb251c79a581c9, 0x1ddadde7d0c4adbf, 0x3979ea0e826c6034, 0xefeb3adf3ea1a68c,
	0x0174c6cd565164f3, 0x971a26fbfb9544bc, 0x83ce13424dc2d699, 0xaeb453e747a11622, 0x23dcc826e38ff746, 0x00000000d2346570,
	0x2ec71192464d8b22, 0x3fd75abed41d8c72, 0x2e206d4f17f372db, 0xd91f67a83c6616ec, 0x0268b00035db0c31, 0xccb96bd0238db8cf,
	0x71cc72e3696eb8e7, 0x83599d21e5430d78, 0x55416a92cdf519d0, 0x00000001c23f7a19,
)
var P610P3val = words(
	0x203596cf0245b227, 0xfe7d4cb978f11517, 0xec79574e9d7dd13a, 0xd24627b69d4dff63, 0x85b4d3b2b5426bbf, 0xff0237c357683fca,
	0x2c3e0fe7792534b1, 0x8b68db1afc3f9cde, 0x5afd2b5021786921, 0x000000016cff1918, 0xdfe1caff47350ffb, 0x7f6641b5806dbd07,
	0xd558ce2b43292c47, 0x28eb4a4147c77bd6, 0x143218eb29f5fb6c, 0x5f457bd167a2260f, 0x26d9639e9dd4a15d, 0xec9dfa3764433777,
	0x9d8c59e2d257cacf, 0x00000001d2d65779,
)
var P610MontR2 = words(
	0xe75f5d201a197727, 0xe0b85963b627392e, 0x6bc1707818de493d, 0xdc7f419940d1a0c5, 0x7358030979ede54a, 0x84f4bebdeed75a5c,
	0x7ecca66e13427b47, 0xc5bb4e65280080b3, 0x7019950f516da19a, 0x000000008e290ff3,
)
var P610MontOne = words(
	0x00000000670cc8e6, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0x9a34000000000000, 0x4d99c2bd28717a3f,
	0x0a4a1839a323d41c, 0xd2b62215d06ad1e2, 0x1369026e862caf3d, 0x000000010894e964,
)
var P610StratAlice = []int{
	67, 37, 21, 12, 7, 4, 2, 1, 1, 2, 1, 1, 3, 2, 1, 1,
	1, 1, 5, 3, 2, 1, 1, 1, 1, 2, 1, 1, 1, 9, 5, 3,
	2, 1, 1, 1, 1, 2, 1, 1, 1, 4, 2, 1, 1, 1, 2, 1,
	1, 16, 9, 5, 3, 2, 1, 1, 1, 1, 2, 1, 1, 1, 4, 2,
	1, 1, 1, 2, 1, 1, 8, 4, 2, 1, 1, 2, 1, 1, 4, 2,
	1, 1, 2, 1, 1, 33, 16, 8, 5, 2, 1, 1, 1, 2, 1, 1,
	1, 4, 2, 1, 1, 2, 1, 1, 8, 4, 2, 1, 1, 2, 1, 1,
	4, 2, 1, 1, 2, 1, 1, 16, 8, 4, 2, 1, 1, 1, 2, 1,
	1, 4, 2, 1, 1, 2, 1, 1, 8, 4, 2, 1, 1, 2, 1, 1,
	4, 2, 1, 1, 2, 1, 1,
}
var P610StratBob = []int{
	86, 48, 27, 15, 8, 4, 2, 1, 1, 2, 1, 1, 4, 2, 1, 1,
	2, 1, 1, 7, 4, 2, 1, 1, 2, 1, 1, 3, 2, 1, 1, 1,
	1, 12, 7, 4, 2, 1, 1, 2, 1, 1, 3, 2, 1, 1, 1, 1,
	5, 3, 2, 1, 1, 1, 1, 2, 1, 1, 1, 21, 12, 7, 4, 2,
	1, 1, 2, 1, 1, 3, 2, 1, 1, 1, 1, 5, 3, 2, 1, 1,
	1, 1, 2, 1, 1, 1, 9, 5, 3, 2, 1, 1, 1, 1, 2, 1,
	1, 1, 4, 2, 1, 1, 1, 2, 1, 1, 38, 21, 12, 7, 4, 2,
	1, 1, 2, 1, 1, 3, 2, 1, 1, 1, 1, 5, 3, 2, 1, 1,
	1, 1, 2, 1, 1, 1, 9, 5, 3, 2, 1, 1, 1, 1, 2, 1,
	1, 1, 4, 2, 1, 1, 1, 2, 1, 1, 17, 9, 5, 3, 2, 1,
	1, 1, 1, 2, 1, 1, 1, 4, 2, 1, 1, 1, 2, 1, 1, 8,
	4, 2, 1, 1, 1, 2, 1, 1, 4, 2, 1, 1, 2, 1, 1,
}

// ---- P751 ----
var P751P = words(
	0xffffffffffffffff, 0xffffffffffffffff, 0xffffffffffffffff, 0xffffffffffffffff, 0xffffffffffffffff, 0xeeafffffffffffff,
	0xe3ec968549f878a8, 0xda959b1a13f7cc76, 0x084e9867d6ebe876, 0x8562b5045cb25748, 0x0e12909f97badc66, 0x00006fe5d541f71c,
)
var P751P2 = words(
	0xfffffffffffffffe, 0xffffffffffffffff, 0xffffffffffffffff, 0xffffffffffffffff, 0xffffffffffffffff, 0xdd5fffffffffffff,
	0xc7d92d0a93f0f151, 0xb52b363427ef98ed, 0x109d30cfadd7d0ed, 0x0ac56a08b964ae90, 0x1c25213f2f75b8cd, 0x0000dfcbaa83ee38,
)
var P751P4 = words(
	0xfffffffffffffffc, 0xffffffffffffffff, 0xffffffffffffffff, 0xffffffffffffffff, 0xffffffffffffffff, 0xbabfffffffffffff,
	0x8fb25a1527e1e2a3, 0x6a566c684fdf31db, 0x213a619f5bafa1db, 0x158ad41172c95d20, 0x384a427e5eeb719a, 0x0001bf975507dc70,
)
var P751PP1 = words(
	0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0xeeb0000000000000,
	0xe3ec968549f878a8, 0xda959b1a13f7cc76, 0x084e9867d6ebe876, 0x8562b5045cb25748, 0x0e12909f97badc66, 0x00006fe5d541f71c,
)
var P751AliceOrder = words(
	0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0x0010000000000000,
)
var P751BobOrder = words(
	0xc968549f878a8eeb, 0x59b1a13f7cc76e3e, 0xe9867d6ebe876da9, 0x2b5045cb25748084, 0x2909f97badc66856, 0x06fe5d541f71c0e1,
)
var P751AGen = words(
	0x2584350e0c33c304, 0x51e9c29e234dc61e, 0xc6e65a7bf90acc05, 0xb1333e2e19b3a930, 0xa4f7ca2f7f66909f, 0xe01e9e6f6704bf9e,
	0xe2345d48c0219d6d, 0x70f37ad9933fc182, 0x7b9d4d5870cfaca3, 0x3b8daf20190d460d, 0x0b02d6ff9aafa0c7, 0x000015a435d19526,
	0xe85e3f2b4eddaf22, 0x4824edca0a253cb2, 0x65c70852876c50a0, 0x0917389f0d88b919, 0x93fbe011efa068e5, 0x72703759a4651388,
	0xa266a6aee1213ee0, 0xc496abc50e388b6e, 0x564cb9fe0ebd72b5, 0x88b483157d3badc8, 0x0326d337a76b5317, 0x0000440f6f4f2d5a,
	0xcdd55d2646a1de32, 0xaa056cdd8b80e53e, 0xaa87189b3a885c53, 0x9f6d9809057564a1, 0xc59794a13e1d38b8, 0x97f8ed39f3fa7de5,
	0xfc0caf68c8b95129, 0x393f28b240a42ffe, 0xcd99b2f9792def96, 0xf1036825cbf416b9, 0x877b835f0533f2ae, 0x00000cdffe238e18,
	0xac4ef1b17010b136, 0xec411e1b5ad8a667, 0x7737372edb66a1af, 0x43593eced672cf87, 0x1e418547c7b8a975, 0x8cc78dcb18bd469a,
	0x6c9fb93fd2ef8496, 0x8a4ac42666ab8545, 0x8a973b8387c15f1d, 0xc1657503d4bb4ada, 0x22f49e4311d7bbf0, 0x00001299b8fda94c,
	0xc04b8957d3a4748f, 0xf3fb80f19063629f, 0x595434555d4ebe94, 0x8e1fef11bfd1e0da, 0xe31e3377248c0bb4, 0x9a05deff75ea51ba,
	0x398686fbb343398a, 0x20331307b470da54, 0x964fa62ad10005c5, 0x9ea5cc4d64e5d9ee, 0xc84675cf9b96060f, 0x00001deccb78cfac,
	0x6b20ff684759ddc2, 0xd50eb91730deafbf, 0xaa5ca048e2daf488, 0xe29708e28654fc18, 0x542928ad1f445359, 0xa311b83d79e73ff6,
	0x850b7f5926826b22, 0x2d46731863bdb99d, 0x467a80cd8320b69d, 0xc046b12f05bfd513, 0x35d9b2ff794bdb40, 0x0000633276495b85,
)
var P751BGen = words(
	0x110f4508c6634ccb, 0x31910bc05e296f4c, 0xed17ab0d6c029ea6, 0x9c863ab6172b9974, 0x5c15236cdb216f99, 0xdc025064818ec7d7,
	0xc2180f387487ebf0, 0x946b1d0f025cbc3b, 0x5ae34395a520cb46, 0xb52034f98a879f2c, 0x3d2fae10a22ab7c7, 0x0000174cd090da3d,
	0xc3c6a839776171f2, 0x5883afb529c8e50a, 0x0de1622bbd192925, 0x064cce86b1826a21, 0x441af1abe9f6568e, 0x3f29eec0bc6f962d,
	0xa7845a0127159975, 0x109dcd6d92b0c3f2, 0x462438cd0100ee2e, 0xfb7869f2b1df80eb, 0x563b0c55f0eedc53, 0x00001958c37d4721,
	0x110f4508c6634ccb, 0x31910bc05e296f4c, 0xed17ab0d6c029ea6, 0x9c863ab6172b9974, 0x5c15236cdb216f99, 0xdc025064818ec7d7,
	0xc2180f387487ebf0, 0x946b1d0f025cbc3b, 0x5ae34395a520cb46, 0xb52034f98a879f2c, 0x3d2fae10a22ab7c7, 0x0000174cd090da3d,
	0x3c3957c6889e8e0d, 0xa77c504ad6371af5, 0xf21e9dd442e6d6da, 0xf9b331794e7d95de, 0xbbe50e541609a971, 0xaf86113f439069d2,
	0x3c683c8422e2df33, 0xc9f7cdac81470884, 0xc22a5f9ad5eafa48, 0x89ea4b11aad2d65c, 0xb7d78449a6cc0012, 0x0000568d11c4affa,
	0x31bb0964dfbdc34f, 0xfdc65cf4959ab106, 0xa3071e4b8b04d8ff, 0x9b68cfce270de486, 0x2339e590896e0095, 0xfc753508ad83e33e,
	0x73a274e4a6908387, 0x88d1b207bbe8e2dc, 0x0a6d0583233dc71f, 0xcf7f2ecc609de5be, 0xb8af0669fbd1cf01, 0x00001f3ef25dd512,
	0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000,
	0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000,
)
var P751DBLQA = words(
	0xac2b2d74f883dfe4, 0xda9b5d82caa27d78, 0xf8656ebc40d57f4c, 0x5e1cd5bdbf041897, 0x1a30c6a718d110c8, 0x3c8def0dc70d6806,
	0x91ab2c2c9282d88c, 0x8b6aedd25d129720, 0xaa92dd198282d20d, 0x0976b9255cb297eb, 0xf6d8ab5c106ebe7a, 0x00000c5fb17b0515,
	0xd5592babbcc2584e, 0x0e0547c84cd5e0c1, 0xfbe528cb2d17b51b, 0x2168cc83a03036bc, 0x46149ea13591e9e3, 0xff230f71abe6a6e0,
	0xd4a9a33beebb78fa, 0x63627d7cdda2d559, 0x601fcfc408949785, 0xcde4532f5618bcf6, 0xbc83162a741e1d9b, 0x00006f443172fd95,
)
var P751YPA = words(
	0xcf298a24ab4eecc8, 0x426be362d17b58e1, 0xdec9e4ab0c0813e4, 0xbb213d92b1a23dec, 0x73f9337ebf1afb1e, 0x22a428421e3f369d,
	0x4c504fba8d4c1f41, 0x97c03c026b64e556, 0x94524150e5242247, 0x08f397d005b7d0f3, 0x2eeefb40c2d1d40f, 0x000049ffa7880cc0,
	0xc735ae6a6d9ab879, 0x4431fcf02097bf97, 0xcd6c8982e0b17062, 0xd38791b330dbf671, 0xbbe57bf59a8d9150, 0x58f968f33f45a7d8,
	0x903068b77ec83b26, 0x7dadadd772211f21, 0x2a8dea498d8a12bb, 0x0ae73b6ae3e7657f, 0x11695a4a18565fcd, 0x0000303fe0d52cdb,
)
var P751PplusQA = words(
	0x0a7e27390cd89ed0, 0xf359eb3682d601b3, 0x7d893292e008d357, 0xca8297ede777799d, 0xaf494679324a5427, 0xc30a8772971b92b1,
	0x291a6a8f56c222be, 0xd0d7f09ad8d323fa, 0xfa385cdcf0d0c4d5, 0x22c76490c77b6efb, 0x2466ad8bf91afd5d, 0x0000043e734531e6,
	0xd733e958cb9c582b, 0x19b03b0647850342, 0x31be64c55b229ccd, 0xe25b77d735d49cce, 0x6555570cab893df8, 0xa452b814fe47d118,
	0x8791843a4b61b101, 0xe761b1d5e99f89fe, 0x2b227b1d56a0931d, 0x6a279550bc1a989b, 0xdd9f4643c9ddd6df, 0x0000436657c7481e,
	0x18718a5b58de448d, 0x44678e528b714548, 0x3bac89684e17847f, 0xd03d5e8a7a093d5a, 0xcf07e039c76e6f3e, 0x5ae4a7f32526fa36,
	0x24d18348e9a45d10, 0x45d3164a37a0d0e6, 0xf221a442947e4bd7, 0x6bfbf5ae6db2c791, 0x1abb91ec57aeaac6, 0x00005432433db9ad,
	0x33293f2db350111f, 0xcedff7e53611ec93, 0x2d739b88b42a7c75, 0x4edb6b4121ae0dd0, 0x6b32ae397dd99f95, 0xd0ac8b36d0e24c89,
	0x23d6ae11a2b1c61a, 0x8a05380734cd9e89, 0xdcb14cd3c9f292f1, 0x3e24282abab56ebd, 0x69cc3fa3be707915, 0x00005dafe89bb9f2,
)
var P751P3val = words(
	0xf1a8c9ed7b96c4ab, 0x299429da5178486e, 0xef4926f20cd5c2f4, 0x683b2e2858b4716a, 0xdda2fbcc3cac3eeb, 0xec055f9f3a600460,
	0xd5a5a17a58c3848b, 0x4652d836f42eaed5, 0x2f2e71ed78b3a3b3, 0xa771c057180add1d, 0xc780a5d2d835f512, 0x0000114ea3b55ac1,
	0x2e1eb8ed8c1c8c94, 0x06cfe456b25dbe01, 0x1eb54c3e8010f57a, 0x4b222d95fc81619d, 0xf99ebd204d501496, 0x0c18348f9b629361,
	0xc29e9a16bede6f96, 0x3b39f30163dad41d, 0x807d3d1ecf2ac04e, 0xe088443f222a4988, 0x61b49a7524f1ea12, 0x000041bf31133104,
)
var P751MontR2 = words(
	0x233046449dad4058, 0xdb010161a696452a, 0x5e36941472e3fd8e, 0xf40bfe2082a2e706, 0x4932cca8904f8751, 0x1f735f1f1ee7fc81,
	0xa24f4d80c1048e18, 0xb56c383ccdb607c5, 0x441dd47b735f9c90, 0x5673ed2c6a6ac82a, 0x06c905261132294b, 0x000041ad830f1f35,
)
var P751MontOne = words(
	0x00000000000249ad, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0x8310000000000000,
	0x5527b1e4375c6c66, 0x697797bf3f4f24d0, 0xc89db7b2ac5c4e2e, 0x4ca4b439d2076956, 0x10f7926c7512c7e9, 0x00002d5b24bce5e2,
)
var P751StratAlice = []int{
	80, 48, 27, 15, 8, 4, 2, 1, 1, 2, 1, 1, 4, 2, 1, 1,
	2, 1, 1, 7, 4, 2, 1, 1, 2, 1, 1, 3, 2, 1, 1, 1,
	1, 12, 7, 4, 2, 1, 1, 2, 1, 1, 3, 2, 1, 1, 1, 1,
	5, 3, 2, 1, 1, 1, 1, 2, 1, 1, 1, 21, 12, 7, 4, 2,
	1, 1, 2, 1, 1, 3, 2, 1, 1, 1, 1, 5, 3, 2, 1, 1,
	1, 1, 2, 1, 1, 1, 9, 5, 3, 2, 1, 1, 1, 1, 2, 1,
	1, 1, 4, 2, 1, 1, 1, 2, 1, 1, 33, 20, 12, 7, 4, 2,
	1, 1, 2, 1, 1, 3, 2, 1, 1, 1, 1, 5, 3, 2, 1, 1,
	1, 1, 2, 1, 1, 1, 8, 5, 3, 2, 1, 1, 1, 1, 2, 1,
	1, 1, 4, 2, 1, 1, 2, 1, 1, 16, 8, 4, 2, 1, 1, 1,
	2, 1, 1, 4, 2, 1, 1, 2, 1, 1, 8, 4, 2, 1, 1, 2,
	1, 1, 4, 2, 1, 1, 2, 1, 1,
}
var P751StratBob = []int{
	112, 63, 32, 16, 8, 4, 2, 1, 1, 2, 1, 1, 4, 2, 1, 1,
	2, 1, 1, 8, 4, 2, 1, 1, 2, 1, 1, 4, 2, 1, 1, 2,
	1, 1, 16, 8, 4, 2, 1, 1, 2, 1, 1, 4, 2, 1, 1, 2,
	1, 1, 8, 4, 2, 1, 1, 2, 1, 1, 4, 2, 1, 1, 2, 1,
	1, 31, 16, 8, 4, 2, 1, 1, 2, 1, 1, 4, 2, 1, 1, 2,
	1, 1, 8, 4, 2, 1, 1, 2, 1, 1, 4, 2, 1, 1, 2, 1,
	1, 15, 8, 4, 2, 1, 1, 2, 1, 1, 4, 2, 1, 1, 2, 1,
	1, 7, 4, 2, 1, 1, 2, 1, 1, 3, 2, 1, 1, 1, 1, 49,
	31, 16, 8, 4, 2, 1, 1, 2, 1, 1, 4, 2, 1, 1, 2, 1,
	1, 8, 4, 2, 1, 1, 2, 1, 1, 4, 2, 1, 1, 2, 1, 1,
	15, 8, 4, 2, 1, 1, 2, 1, 1, 4, 2, 1, 1, 2, 1, 1,
	7, 4, 2, 1, 1, 2, 1, 1, 3, 2, 1, 1, 1, 1, 21, 12,
	8, 4, 2, 1, 1, 2, 1, 1, 4, 2, 1, 1, 2, 1, 1, 5,
	3, 2, 1, 1, 1, 1, 2, 1, 1, 1, 9, 5, 3, 2, 1, 1,
	1, 1, 2, 1, 1, 1, 4, 2, 1, 1, 1, 2, 1, 1,
}

