package identity

import (
	"errors"

	"github.com/google/uuid"
)

var ErrMissingIdentity = errors.New("missing owner identity")

type Kind string

const (
	KindAuthenticated Kind = "authenticated"
	KindAnonymous     Kind = "anonymous"
)

// Owner is the identity a cart belongs to: exactly one of an authenticated
// user id or an anonymous session id. Modeling this as a tagged value keeps
// the user/session branching out of every engine operation.
type Owner struct {
	kind      Kind
	userID    uuid.UUID
	sessionID string
	email     string
}

func NewAuthenticated(userID uuid.UUID, email string) (Owner, error) {
	if userID == uuid.Nil {
		return Owner{}, ErrMissingIdentity
	}
	return Owner{kind: KindAuthenticated, userID: userID, email: email}, nil
}

func NewAnonymous(sessionID string) (Owner, error) {
	if sessionID == "" {
		return Owner{}, ErrMissingIdentity
	}
	return Owner{kind: KindAnonymous, sessionID: sessionID}, nil
}

func (o Owner) Kind() Kind { return o.kind }

func (o Owner) IsAuthenticated() bool { return o.kind == KindAuthenticated }

func (o Owner) IsZero() bool { return o.kind == "" }

// UserID returns the user id for authenticated owners, nil otherwise.
func (o Owner) UserID() *uuid.UUID {
	if o.kind != KindAuthenticated {
		return nil
	}
	id := o.userID
	return &id
}

// SessionID returns the session id for anonymous owners, empty otherwise.
func (o Owner) SessionID() string {
	if o.kind != KindAnonymous {
		return ""
	}
	return o.sessionID
}

// Email is only known for authenticated owners; anonymous visitors supply
// one at checkout.
func (o Owner) Email() string { return o.email }
