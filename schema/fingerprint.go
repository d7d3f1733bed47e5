package schema

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/roach88/substrate/internal/canonical"
)

// FingerprintDomain separates document fingerprints from any other hash
// computed over the same bytes.
const FingerprintDomain = "substrate/root/v1"

// Fingerprint hashes the canonical JSON form of a document. Two documents
// with equal content have equal fingerprints whatever file format they were
// read from. Sort both first to ignore the order of unordered collections.
func Fingerprint(root *Root) (string, error) {
	data, err := canonical.Marshal(root)
	if err != nil {
		return "", fmt.Errorf("fingerprint: %w", err)
	}
	return hashWithDomain(FingerprintDomain, data), nil
}

// hashWithDomain hashes domain, a NUL separator, then data.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}
