// Package jwpubcrypto derives the per-publication AES key schedule used by
// JWPUB's encrypted content store and decrypts its per-row blobs (spec
// §4.3).
//
// The derivation recipe is a format constant, not a secret: every JWPUB
// reader embeds it. See spec §1 Non-goals.
package jwpubcrypto

import (
	"bytes"
	"compress/flate"
	"compress/zlib"
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/jwsched/parser/internal/xerrors"
)

// maskB64 is the fixed XOR mask (spec §6 Embedded format constants),
// base64-encoded over UTF-8 hex text.
const maskB64 = "MTFjYmI1NTg3ZTMyODQ2ZDRjMjY3OTBjNjMzZGEyODlmNjZmZTU4NDJhM2E1ODVjZTFiYzNhMjk0YWY1YWRhNw=="

// mask is computed once at init from the embedded constant.
var mask []byte

func init() {
	decoded, err := base64.StdEncoding.DecodeString(maskB64)
	if err != nil {
		panic(fmt.Sprintf("jwpubcrypto: embedded mask constant is malformed: %v", err))
	}
	m, err := hex.DecodeString(string(decoded))
	if err != nil {
		panic(fmt.Sprintf("jwpubcrypto: embedded mask constant is not hex: %v", err))
	}
	mask = m
}

// PublicationIdentity is the row read from the JWPUB database's Publication
// relation (spec §4.3 step 1, §6).
type PublicationIdentity struct {
	MepsLanguageIndex int
	Symbol            string
	Year              int
	IssueTagNumber    int
}

// KeyMaterial is the derived AES-128 key and IV for one publication (spec §3).
type KeyMaterial struct {
	Key [16]byte
	IV  [16]byte
}

// Derive computes the KeyMaterial for a publication identity (spec §4.3
// steps 1-5).
func Derive(id PublicationIdentity) KeyMaterial {
	tag := fmt.Sprintf("%d_%s_%d_%d", id.MepsLanguageIndex, id.Symbol, id.Year, id.IssueTagNumber)

	h := sha256.Sum256([]byte(tag))

	x := make([]byte, len(h))
	for i := range x {
		x[i] = h[i] ^ mask[i%len(mask)]
	}

	hexX := hex.EncodeToString(x)
	keyHex, ivHex := hexX[:32], hexX[32:64]

	var km KeyMaterial
	keyBytes, _ := hex.DecodeString(keyHex)
	ivBytes, _ := hex.DecodeString(ivHex)
	copy(km.Key[:], keyBytes)
	copy(km.IV[:], ivBytes)
	return km
}

// DecryptInflate decrypts an AES-128-CBC/PKCS#7 blob and inflates the
// result as raw DEFLATE (no zlib wrapper), interpreting it as UTF-8 (spec
// §4.3). On failure it falls back to treating the original bytes as a
// zlib-wrapped deflate stream; the fallback's success is not evidence that
// decryption actually occurred (spec §9 Open Questions).
func DecryptInflate(km KeyMaterial, blob []byte) (string, error) {
	if text, ok := decryptAndInflate(km, blob); ok {
		return text, nil
	}
	if text, ok := zlibInflate(blob); ok {
		return text, nil
	}
	return "", xerrors.New(xerrors.DecryptionFailed, "AES decryption and inflation both failed, and the zlib fallback also failed")
}

func decryptAndInflate(km KeyMaterial, blob []byte) (string, bool) {
	if len(blob) == 0 || len(blob)%aes.BlockSize != 0 {
		return "", false
	}

	block, err := aes.NewCipher(km.Key[:])
	if err != nil {
		return "", false
	}

	decrypted := make([]byte, len(blob))
	cbc := cipher.NewCBCDecrypter(block, km.IV[:])
	cbc.CryptBlocks(decrypted, blob)

	unpadded, ok := pkcs7Unpad(decrypted, aes.BlockSize)
	if !ok {
		return "", false
	}

	inflated, err := rawInflate(unpadded)
	if err != nil {
		return "", false
	}
	return string(inflated), true
}

func rawInflate(data []byte) ([]byte, error) {
	fr := flate.NewReader(bytes.NewReader(data))
	defer fr.Close()
	return io.ReadAll(fr)
}

func zlibInflate(data []byte) (string, bool) {
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return "", false
	}
	defer zr.Close()

	out, err := io.ReadAll(zr)
	if err != nil {
		return "", false
	}
	return string(out), true
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, bool) {
	n := len(data)
	if n == 0 || n%blockSize != 0 {
		return nil, false
	}
	padLen := int(data[n-1])
	if padLen == 0 || padLen > blockSize || padLen > n {
		return nil, false
	}
	for _, b := range data[n-padLen:] {
		if int(b) != padLen {
			return nil, false
		}
	}
	return data[:n-padLen], true
}
