package session

import "github.com/talentumplus/talentum/internal/client/models"

// Decision is the outcome of a guard check. When Allowed is false, Redirect
// names the view to send the user to instead.
type Decision struct {
	Allowed  bool
	Redirect string
}

// Guard gates views on session presence and, optionally, an exact role
// match. It is a pure predicate over the store; navigation is left to the
// caller.
type Guard struct {
	session *Store
}

func NewGuard(s *Store) *Guard {
	return &Guard{session: s}
}

// Check evaluates access for a view. requiredRole == "" means any
// authenticated user. An unauthenticated caller is sent to the login view;
// an authenticated caller with the wrong role is sent back to their own
// dashboard rather than an error view.
func (g *Guard) Check(requiredRole string) Decision {
	if !g.session.IsAuthenticated() {
		return Decision{Redirect: models.ViewLogin}
	}
	if requiredRole != "" && g.session.User().Rol != requiredRole {
		return Decision{Redirect: models.ViewDashboard}
	}
	return Decision{Allowed: true}
}
