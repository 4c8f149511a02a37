// Package navigation defines the stable path contract between the guard and
// the client. These logical paths are part of the public API; renaming one
// is a breaking change for every shipped client.
package navigation

import "strings"

const (
	// PathRoot is the landing screen shown before any decision settles.
	PathRoot = "/"
	// PathAuth is the entry screen of the auth area (sign in / sign up).
	PathAuth = "/auth"
	// PathCompleteProfile is the profile-completion flow. Redirects to it
	// carry the player id as the "playerId" query parameter.
	PathCompleteProfile = "/complete-profile"
	// PathHome is the canonical screen for a fully onboarded user.
	PathHome = "/home"
	// PathPasswordReset is the recovery flow entry, marked with from=recovery.
	PathPasswordReset = "/reset-password"

	// PlayerIDParam is the query parameter name for the completion redirect.
	PlayerIDParam = "playerId"
	// RecoveryMarker tags redirects that originate from a password recovery link.
	RecoveryMarker = "from=recovery"
)

// InAuthArea reports whether a path sits under the auth area. The password
// recovery flow counts: an unauthenticated user following a recovery link
// must not be bounced to the sign-in screen.
func InAuthArea(path string) bool {
	base := stripQuery(path)

	return base == PathAuth || strings.HasPrefix(base, PathAuth+"/") ||
		base == PathPasswordReset || strings.HasPrefix(base, PathPasswordReset+"/")
}

// InCompletionArea reports whether a path belongs to the profile-completion flow.
// Query parameters do not affect the answer.
func InCompletionArea(path string) bool {
	base := stripQuery(path)

	return base == PathCompleteProfile || strings.HasPrefix(base, PathCompleteProfile+"/")
}

func stripQuery(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		return path[:i]
	}

	return path
}

// IsLanding reports whether a path is the root/landing screen.
func IsLanding(path string) bool {
	return path == "" || path == PathRoot
}
