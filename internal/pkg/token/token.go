package token

import (
	"crypto/rand"
	"encoding/base64"

	"nightpass/internal/pkg/errs"

	"github.com/google/uuid"
)

// Provider issues opaque, globally unique, unguessable strings. One token is
// stamped on every purchase unit and later rendered as the door QR code.
type Provider interface {
	IssueToken() (string, error)
}

const entropyBytes = 18

type RandomProvider struct{}

func NewRandomProvider() Provider {
	return &RandomProvider{}
}

// IssueToken combines a UUID with fresh random bytes. The UUID guarantees
// uniqueness, the random suffix keeps tokens unguessable even if the UUID
// generator is ever predictable.
func (p *RandomProvider) IssueToken() (string, error) {
	buf := make([]byte, entropyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errs.Wrap(err, "failed to read token entropy")
	}
	id := uuid.New()
	return id.String() + "." + base64.RawURLEncoding.EncodeToString(buf), nil
}
