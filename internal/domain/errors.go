package domain

import "errors"

// A rejected parse is not an error: report.Parse returns nil for it.
var (
	ErrStoreUnavailable      = errors.New("store unavailable")
	ErrNotifierFailure       = errors.New("notifier failure")
	ErrCredentialUnavailable = errors.New("notifier credential not yet available")
)
