package layout

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// DomainLayout separates layout fingerprints from any other hash of the same bytes.
const DomainLayout = "rfn/layout/v1"

// hashWithDomain computes SHA256(domain || 0x00 || data) as lowercase hex.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// Fingerprint identifies the layout d describes. Descriptors of the same
// representation type agree regardless of the type arguments they were built with.
func (d Descriptor) Fingerprint() (string, error) {
	canonical, err := MarshalCanonical(d)
	if err != nil {
		return "", fmt.Errorf("layout fingerprint: %w", err)
	}
	return hashWithDomain(DomainLayout, canonical), nil
}

// MustFingerprint is Fingerprint for descriptors known to be well formed.
func (d Descriptor) MustFingerprint() string {
	fp, err := d.Fingerprint()
	if err != nil {
		panic(err)
	}
	return fp
}
