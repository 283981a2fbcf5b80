package authenticating

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidInviteCode  = errors.New("invalid invite code")
	ErrUserAlreadyExists  = errors.New("username already taken")
	ErrMissingCredentials = errors.New("username and password are required")
	ErrInvalidToken       = errors.New("invalid token")
)
