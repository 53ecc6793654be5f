package swap

import (
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/binary"
)

// anchorDiscriminator derives the 8-byte discriminator the Anchor framework
// prepends to account and instruction data.
func anchorDiscriminator(name string) []byte {
	h := sha256.Sum256([]byte(name))
	return h[:8]
}

func putDiscriminator(dst []byte, v []byte, offset *int) {
	copy(dst[*offset:], v)
	*offset += 8
}
func getDiscriminator(src []byte, dst *[]byte, offset *int) {
	*dst = make([]byte, 8)
	copy(*dst, src[*offset:])
	*offset += 8
}

func putKey(dst []byte, src ed25519.PublicKey, offset *int) {
	copy(dst[*offset:], src)
	*offset += ed25519.PublicKeySize
}
func getKey(src []byte, dst *ed25519.PublicKey, offset *int) {
	*dst = make([]byte, ed25519.PublicKeySize)
	copy(*dst, src[*offset:])
	*offset += ed25519.PublicKeySize
}

func putHash(dst []byte, src []byte, offset *int) {
	copy(dst[*offset:], src)
	*offset += SecretHashSize
}
func getHash(src []byte, dst *[]byte, offset *int) {
	*dst = make([]byte, SecretHashSize)
	copy(*dst, src[*offset:])
	*offset += SecretHashSize
}

func putUint64(dst []byte, v uint64, offset *int) {
	binary.LittleEndian.PutUint64(dst[*offset:], v)
	*offset += 8
}
func getUint64(src []byte, dst *uint64, offset *int) {
	*dst = binary.LittleEndian.Uint64(src[*offset:])
	*offset += 8
}
