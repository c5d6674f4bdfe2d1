package people

import (
	"fmt"

	"github.com/spaolacci/murmur3"
	"github.com/ugorji/go/codec"
)

type fingerprintContent struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DateOfBirth string `json:"dateOfBirth"`
	Image       []byte `json:"image"`
}

// Fingerprint digests every field of p, so unlike Hash it changes when
// anything about the person changes, not just the id.
func Fingerprint(p *Person) (string, error) {
	if p == nil {
		return "", fmt.Errorf("cannot fingerprint a nil person")
	}
	h := murmur3.New128()
	handle := &codec.JsonHandle{}
	handle.Canonical = true
	enc := codec.NewEncoder(h, handle)
	content := fingerprintContent{
		ID:          p.id.String(),
		Name:        p.name,
		DateOfBirth: p.dateOfBirth.String(),
		Image:       p.image,
	}
	if err := enc.Encode(content); err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", h.Sum(nil)), nil
}
