// Package models defines the data the client fetches, submits and renders.
package models

import "time"

// Credentials are the login form inputs. Password is a byte slice so callers
// can wipe it once the attempt is over.
type Credentials struct {
	Username string
	Password []byte
}

// SignupProfile is the account payload posted by the signup screen.
// Age is already parsed; see forms.ParseSignup.
type SignupProfile struct {
	FirstName string
	LastName  string
	Username  string
	Password  string
	Age       int
	Gender    string
	Email     string
	Phone     string
}

// AuthSession is what a successful login yields. It only gates navigation to
// the home screen; the token is neither stored nor sent anywhere.
type AuthSession struct {
	UserID      int
	Username    string
	FirstName   string
	LastName    string
	AccessToken string
	// ExpiresAt is zero when the token carries no readable exp claim.
	ExpiresAt time.Time
}

// DisplayName prefers the person's name over the login name.
func (s *AuthSession) DisplayName() string {
	if s.FirstName == "" && s.LastName == "" {
		return s.Username
	}
	if s.LastName == "" {
		return s.FirstName
	}
	return s.FirstName + " " + s.LastName
}
