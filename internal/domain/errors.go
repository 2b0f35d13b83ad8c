package domain

import "errors"

var (
	ErrAPIKeyMissing     = errors.New("no ERCx API key configured")
	ErrUnknownNetwork    = errors.New("unknown network")
	ErrUnknownTestLevel  = errors.New("unknown test level")
	ErrUnknownPermission = errors.New("unknown permission")
	ErrInvalidListID     = errors.New("token list id is not a valid UUID")
	ErrSecretNotFound    = errors.New("secret not found")
)
