package zkp

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
)

// 1024-bit MODP group with a 160-bit prime-order subgroup, taken from
// RFC 5114 section 2.1. beta is a second generator of the same subgroup,
// produced once as alpha^r mod p for a discarded random r in [1, q).
const (
	hexP = `B10B8F96 A080E01D DE92DE5E AE5D54EC 52C99FBC FB06A3C6
	        9A6A9DCA 52D23B61 6073E286 75A23D18 9838EF1E 2EE652C0
	        13ECB4AE A9061123 24975C3C D49B83BF ACCBDD7D 90C4BD70
	        98488E9C 219A7372 4EFFD6FA E5644738 FAA31A4F F55BCCC0
	        A151AF5F 0DC8B4BD 45BF37DF 365C1A65 E68CFDA7 6D4DA708
	        DF1FB2BC 2E4A4371`

	hexQ = `F518AA87 81A8DF27 8ABA4E7D 64B7CB9D 49462353`

	hexAlpha = `A4D1CBD5 C3FD3412 6765A442 EFB99905 F8104DD2 58AC507F
	            D6406CFF 14266D31 266FEA1E 5C41564B 777E690F 5504F213
	            160217B4 B01B886A 5E91547F 9E2749F4 D7FBD7D3 B9A92EE1
	            909D0D22 63F80A76 A6A24C08 7A091F53 1DBF0A01 69B6A28A
	            D662A4D1 8E73AFA3 2D779D59 18D08BC8 858F4DCE F97C2A24
	            855E6EEB 22B3B2E5`

	hexBeta = `78763FB8 4F01DFBB A2081EE9 C93E5192 DFA25006 5E376BBF
	           B25295B3 DDB94C30 91CAF547 3335E1AD 35C90974 F9214458
	           9CE268AE 2F5D2C1D DD52AD0F 319D95DF 0B97C1A8 9B4D339B
	           85EF7F77 7DDBBDC8 89001866 03BF36EA A2EF0C6D 806B5C1C
	           8D069D52 A383D813 D88EEBB1 B7DB3544 3AEE91B7 9B0A0306
	           FFB1ECC1 0822793B`
)

// DefaultParams returns the process-wide group parameters. Prover and
// verifier must both run with this group; it is not negotiated on the wire.
func DefaultParams() *Params {
	return &Params{
		P:     mustParseHex(hexP),
		Q:     mustParseHex(hexQ),
		Alpha: mustParseHex(hexAlpha),
		Beta:  mustParseHex(hexBeta),
	}
}

func mustParseHex(s string) *big.Int {
	clean := strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' || r == '\n' {
			return -1
		}
		return r
	}, s)

	b, err := hex.DecodeString(clean)
	if err != nil {
		panic(fmt.Sprintf("zkp: bad group constant: %v", err))
	}
	return new(big.Int).SetBytes(b)
}
