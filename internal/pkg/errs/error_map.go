/*
Package errs provides custom error types and application-level error code constants.

This file defines the map from error codes to their kind and user-facing message.
*/
package errs

// errorMap stores the template CustomError for every error code.
var errorMap = map[int]CustomError{
	// 1xxx: Input Errors
	ErrInvalidSelection: {Code: ErrInvalidSelection, Kind: KindInput, Message: "Please enter a number between 0 and %d."},
	ErrInvalidInitials:  {Code: ErrInvalidInitials, Kind: KindInput, Message: "Must be 3 characters!"},
	ErrEmptyGuess:       {Code: ErrEmptyGuess, Kind: KindInput, Message: "Please enter a guess."},
	ErrInputClosed:      {Code: ErrInputClosed, Kind: KindInput, Message: "Input closed."},

	// 2xxx: Remote Service Errors
	ErrNetwork:            {Code: ErrNetwork, Kind: KindNetwork, Message: "Could not reach %s."},
	ErrRemote:             {Code: ErrRemote, Kind: KindProtocol, Message: "%s"},
	ErrUnexpectedResponse: {Code: ErrUnexpectedResponse, Kind: KindProtocol, Message: "Unexpected response from %s."},
	ErrInvalidRequest:     {Code: ErrInvalidRequest, Kind: KindProtocol, Message: "Could not encode request."},

	// 3xxx: Identity Errors
	ErrCookieStore:      {Code: ErrCookieStore, Kind: KindIO, Message: "Could not read browser cookies."},
	ErrCookieEnvelope:   {Code: ErrCookieEnvelope, Kind: KindParse, Message: "Malformed auth cookie."},
	ErrTokenExpired:     {Code: ErrTokenExpired, Kind: KindParse, Message: "Auth token has expired."},
	ErrNotAuthenticated: {Code: ErrNotAuthenticated, Kind: KindProtocol, Message: "Account role %q is not authenticated."},

	// 4xxx: Local Storage Errors
	ErrSaveDirNotFound: {Code: ErrSaveDirNotFound, Kind: KindIO, Message: "Could not find data local directory!"},
	ErrSaveIO:          {Code: ErrSaveIO, Kind: KindIO, Message: "Could not access save file %s."},
	ErrSaveCorrupt:     {Code: ErrSaveCorrupt, Kind: KindParse, Message: "Save file %s is corrupt."},

	// 5xxx: Internal Errors
	ErrUnknown: {Code: ErrUnknown, Kind: KindUnknown, Message: "Something went wrong."},
}
