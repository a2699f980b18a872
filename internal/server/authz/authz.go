// Package authz is the authorization gate. It decides what an already
// resolved identity may do; it never re-derives identity from credentials.
package authz

import (
	"errors"

	"github.com/accountd-dev/accountd/internal/server/sessions"
)

// ErrForbidden indicates the caller is authenticated but lacks the role for
// the requested action.
var ErrForbidden = errors.New("forbidden")

// Action is a named operation subject to an authorization decision.
type Action string

const (
	// ActionListUsers is the privileged "list all users" operation.
	ActionListUsers Action = "users:list"

	// ActionViewSelf covers self-scoped reads like "view own profile".
	ActionViewSelf Action = "users:view_self"
)

// Authorize decides whether the identity may perform the action.
func Authorize(identity *sessions.Identity, action Action) error {
	if identity == nil {
		return sessions.ErrUnauthenticated
	}

	switch action {
	case ActionListUsers:
		if !identity.IsAdmin() {
			return ErrForbidden
		}
		return nil
	case ActionViewSelf:
		// Always scoped to the caller's own user id, so any authenticated
		// identity qualifies.
		return nil
	default:
		return ErrForbidden
	}
}
