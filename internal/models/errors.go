package models

import (
	"errors"
	"fmt"
)

// Remote inference errors
var (
	ErrRateLimited       = errors.New("inference API rate limited")
	ErrQuotaExceeded     = errors.New("inference API quota exceeded")
	ErrMalformedResponse = errors.New("malformed inference response")
)

// History errors
var (
	ErrHistoryNotFound = errors.New("history entry not found")
)

// RemoteError covers any non-2xx upstream status that is not a rate
// limit (429) or quota rejection (403).
type RemoteError struct {
	Status int
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("inference API error (status %d)", e.Status)
}
