package domain

import "fmt"

// Access rules are two-axis: the channel's lock flag crossed with whether the
// caller is authenticated. They live here, in one place, so every endpoint
// enforces the identical policy.

// CanReadChannel reports whether identity may read the channel's messages.
// Reading is always permitted except for anonymous callers on locked channels.
func CanReadChannel(ch *Channel, identity Identity) error {
	if ch.IsLocked && !identity.IsAuthenticated() {
		return fmt.Errorf("login required to read locked channel %q: %w", ch.Name, ErrForbidden)
	}
	return nil
}

// CanWriteChannel reports whether identity may post to the channel.
// Guests may post to open channels; locked channels require authentication.
func CanWriteChannel(ch *Channel, identity Identity) error {
	if ch.IsLocked && !identity.IsAuthenticated() {
		return fmt.Errorf("login required to post to locked channel %q: %w", ch.Name, ErrForbidden)
	}
	return nil
}

// RequireAuthenticated gates direct-message access. DMs have no lock concept:
// any anonymous attempt fails before a single store call is made.
func RequireAuthenticated(identity Identity) error {
	if !identity.IsAuthenticated() {
		return fmt.Errorf("authentication required: %w", ErrUnauthorized)
	}
	return nil
}
