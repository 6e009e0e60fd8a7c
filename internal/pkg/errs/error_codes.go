/*
Package errs provides custom error types and application-level error code constants.

These error codes classify every failure the client can hit, so that callers can
decide whether to re-prompt, skip a candidate, or abort the current operation.
*/
package errs

// 1xxx: Input Errors (never fatal, always re-prompted)
const (
	// ErrInvalidSelection indicates that an account menu entry was not a number in range.
	ErrInvalidSelection = 1001

	// ErrInvalidInitials indicates that leaderboard initials were not exactly three characters.
	ErrInvalidInitials = 1002

	// ErrEmptyGuess indicates that the player submitted an empty guess.
	ErrEmptyGuess = 1003

	// ErrInputClosed indicates that standard input reached EOF while a prompt was waiting.
	ErrInputClosed = 1004
)

// 2xxx: Remote Service Errors
const (
	// ErrNetwork indicates a transport failure, a timeout, or an unreadable response body.
	ErrNetwork = 2001

	// ErrRemote indicates that the remote service answered with an error payload.
	ErrRemote = 2002

	// ErrUnexpectedResponse indicates that the remote body matched neither the success nor the error shape.
	ErrUnexpectedResponse = 2003

	// ErrInvalidRequest indicates that a request payload could not be encoded.
	ErrInvalidRequest = 2004
)

// 3xxx: Identity Errors
const (
	// ErrCookieStore indicates that the browser cookie stores could not be read at all.
	ErrCookieStore = 3001

	// ErrCookieEnvelope indicates that an auth cookie could not be decoded into a token list.
	ErrCookieEnvelope = 3002

	// ErrTokenExpired indicates that a bearer token carries an expiry in the past.
	ErrTokenExpired = 3003

	// ErrNotAuthenticated indicates that the identity provider did not report the authenticated role.
	ErrNotAuthenticated = 3004
)

// 4xxx: Local Storage Errors
const (
	// ErrSaveDirNotFound indicates that the host has no local data directory.
	ErrSaveDirNotFound = 4001

	// ErrSaveIO indicates that the save file could not be read, written, or removed.
	ErrSaveIO = 4002

	// ErrSaveCorrupt indicates that the save file content is not a valid session snapshot.
	ErrSaveCorrupt = 4003
)

// 5xxx: Internal Errors
const (
	// ErrUnknown represents an unclassified failure.
	ErrUnknown = 5000
)
