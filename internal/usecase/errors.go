package usecase

import "errors"

// Service error taxonomy. All terminal and user-visible; the HTTP
// adaptor maps each kind to a status code.
var (
	// ErrEmailExists - register with an already registered email (409)
	ErrEmailExists = errors.New("email already exists")

	// ErrNoUser - no user record for the given email (400)
	ErrNoUser = errors.New("no user found")

	// ErrOTPExpired - code matched but its expiry window has passed (400)
	ErrOTPExpired = errors.New("otp code has expired")

	// ErrWrongOTP - no OTP row matches (user, code) exactly (401)
	ErrWrongOTP = errors.New("wrong credentials")

	// ErrUnauthorized - bad/missing API key, or a
	// disallowed API-key lifecycle transition (401). Deliberately a
	// single kind so the response never leaks which check failed.
	ErrUnauthorized = errors.New("unauthorized to perform this action")

	// ErrNoFiles - the user owns zero files (404)
	ErrNoFiles = errors.New("no images found")

	// ErrStorageUnavailable - the object storage upload failed (503)
	ErrStorageUnavailable = errors.New("object storage unavailable")
)
