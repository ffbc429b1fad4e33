// Package session models whether the device holds a usable session.
package session

import "github.com/dmitrijs2005/heritagewatch/internal/client/models"

type Kind int

const (
	Unauthenticated Kind = iota
	Authenticated
)

func (k Kind) String() string {
	switch k {
	case Authenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}

// State is either Unauthenticated or Authenticated with a session record.
// The zero value is Unauthenticated.
type State struct {
	kind    Kind
	session models.Session
}

func Anonymous() State {
	return State{kind: Unauthenticated}
}

func LoggedIn(s models.Session) State {
	return State{kind: Authenticated, session: s}
}

func (s State) Kind() Kind {
	return s.kind
}

func (s State) IsAuthenticated() bool {
	return s.kind == Authenticated
}

// Session returns the record and true only in the Authenticated state.
func (s State) Session() (models.Session, bool) {
	if s.kind != Authenticated {
		return models.Session{}, false
	}
	return s.session, true
}
