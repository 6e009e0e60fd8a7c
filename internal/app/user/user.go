/*
Package user contains the representation of a signed-in player as recovered from a
browser session.

An AuthInfo is created by the auth package once the identity provider and the game
profile service both accepted the browser's session cookie, and it is consumed by the
game flow to attribute leaderboard scores and likes to the account.
*/
package user

import "fmt"

// AuthInfo is a verified identity discovered in a browser cookie jar.
type AuthInfo struct {

	// UserID is the identity provider's unique identifier of the account.
	UserID string

	// Handle is the display name of the account in the game.
	Handle string

	// AuthCookie is the raw session cookie value, re-sent unchanged with game API calls.
	AuthCookie string
}

// String renders the identity the way menus show it. The cookie is never included.
func (a AuthInfo) String() string {
	return fmt.Sprintf("@%s", a.Handle)
}

// Unique returns candidates without later duplicates of the same UserID, keeping order.
func Unique(candidates []AuthInfo) []AuthInfo {
	seen := make(map[string]struct{}, len(candidates))
	out := make([]AuthInfo, 0, len(candidates))
	for _, c := range candidates {
		if _, dup := seen[c.UserID]; dup {
			continue
		}
		seen[c.UserID] = struct{}{}
		out = append(out, c)
	}
	return out
}
