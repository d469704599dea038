package domain

import (
	"time"

	"github.com/err0r500/go-ldp-server/constant"
)

// Session is the identity context of a request
type Session struct {
	Agent     string
	Delegatee string
	Created   time.Time
}

// NewSession creates a session for the given agent IRI
func NewSession(agent string) *Session {
	return &Session{Agent: agent, Created: time.Now().UTC()}
}

// AnonymousSession is the session of an unauthenticated request
func AnonymousSession() *Session {
	return NewSession(constant.GoldAnonymousAgent)
}

// ConstraintViolation names a violated LDP constraint and, when known, the
// offending triple.
type ConstraintViolation struct {
	Constraint string
	Triple     *Triple
}
