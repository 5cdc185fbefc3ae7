package client

// RouteKind classifies a view by who may reach it.
type RouteKind int

const (
	// RoutePublic is reachable by anyone.
	RoutePublic RouteKind = iota
	// RouteGuestOnly is for login/register: reachable only without a session.
	RouteGuestOnly
	// RouteProtected requires a session.
	RouteProtected
)

// Decision is what the guard tells the caller to do with a navigation.
type Decision int

const (
	Allow Decision = iota
	RedirectToLogin
	RedirectToUsers
)

// Guard decides whether a view is reachable given the current session state.
// It only reads the token; it never mutates it.
type Guard struct {
	session *SessionStore
}

func NewGuard(session *SessionStore) *Guard {
	return &Guard{session: session}
}

func (g *Guard) Decide(kind RouteKind) Decision {
	authed := g.session.Token() != ""

	switch kind {
	case RouteGuestOnly:
		if authed {
			return RedirectToUsers
		}
		return Allow
	case RouteProtected:
		if !authed {
			return RedirectToLogin
		}
		return Allow
	default:
		return Allow
	}
}

// DecidePath resolves a navigation path, applying the catch-all policy to
// anything it does not recognize: authenticated users land on the list,
// everyone else on login.
func (g *Guard) DecidePath(path string) Decision {
	switch path {
	case "/login", "/register":
		return g.Decide(RouteGuestOnly)
	case "/usuarios":
		return g.Decide(RouteProtected)
	default:
		if g.session.Token() != "" {
			return RedirectToUsers
		}
		return RedirectToLogin
	}
}
