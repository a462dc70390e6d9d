package gateway

// Session carries the caller's credential. It is passed explicitly to New and
// never mutated by the gateway; a zero Session makes anonymous calls.
type Session struct {
	token string
}

// NewSession wraps an opaque bearer token. An empty token is anonymous.
func NewSession(token string) Session {
	return Session{token: token}
}

func (s Session) Token() string { return s.token }

// Authenticated reports whether calls will carry an Authorization header.
func (s Session) Authenticated() bool { return s.token != "" }
