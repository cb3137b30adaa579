// Package auth holds the credential check behind the login endpoint and the
// token check behind admin-only endpoints.
package auth

// RoleAdmin is the only role the application distinguishes.
const RoleAdmin = "admin"

// HeaderName is the request header carrying the admin token.
const HeaderName = "x-auth-token"

// Session is the client-side credential issued on a successful login.
type Session struct {
	Token string
	Role  string
}

// Authenticator verifies credentials and authorizes tokens. Handlers depend
// on this interface so a real identity provider can replace the static
// single-admin setup without touching handler logic.
type Authenticator interface {
	// Login returns a session for valid credentials, or false.
	Login(username, password string) (Session, bool)

	// Authorize reports whether the token grants admin rights.
	Authorize(token string) bool
}

// Static authenticates a single admin account against fixed credentials and
// issues the same fixed token to every successful login.
type Static struct {
	Username string
	Password string
	Token    string
}

// NewStatic creates an authenticator for the given admin credentials.
func NewStatic(username, password, token string) *Static {
	return &Static{Username: username, Password: password, Token: token}
}

// Login checks the submitted credentials against the configured pair.
func (s *Static) Login(username, password string) (Session, bool) {
	if username != s.Username || password != s.Password {
		return Session{}, false
	}
	return Session{Token: s.Token, Role: RoleAdmin}, true
}

// Authorize checks the token against the configured constant.
func (s *Static) Authorize(token string) bool {
	return token == s.Token
}
