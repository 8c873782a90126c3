package domain

import "errors"

var (
	// ErrAgentNotFound means the requested persona is not in the catalog.
	ErrAgentNotFound = errors.New("agent not found")

	// ErrRunFailed means the provider reported the run as failed.
	ErrRunFailed = errors.New("assistant run failed")

	// ErrContactNotFound means a CRM lookup matched no contact.
	ErrContactNotFound = errors.New("contact not found")
)
