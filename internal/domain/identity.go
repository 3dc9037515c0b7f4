package domain

// GuestSenderID is the sender id recorded for anonymous channel posts.
// It exists only at the write boundary; the rest of the core works with Identity.
const GuestSenderID = "guest"

// Identity is the resolved caller identity: either an authenticated user id
// or anonymous. Credential verification happens upstream (JWT middleware);
// services receive an Identity and never inspect tokens themselves.
type Identity struct {
	userID        string
	authenticated bool
}

// Authenticated returns an identity for a verified user id.
func Authenticated(userID string) Identity {
	return Identity{userID: userID, authenticated: true}
}

// Anonymous is the identity of an unauthenticated caller.
var Anonymous = Identity{}

// IsAuthenticated reports whether the identity carries a verified user id.
func (i Identity) IsAuthenticated() bool { return i.authenticated }

// UserID returns the verified user id; ok is false for Anonymous.
func (i Identity) UserID() (string, bool) { return i.userID, i.authenticated }

// SenderID resolves the id recorded on outgoing messages:
// the user id when authenticated, GuestSenderID otherwise.
func (i Identity) SenderID() string {
	if i.authenticated {
		return i.userID
	}
	return GuestSenderID
}
