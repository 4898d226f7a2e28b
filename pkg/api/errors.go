package api

import (
	"errors"
	"fmt"
	"strings"
)

// NetworkError means no response was received at all
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("no connection: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// HTTPError carries a non-2xx status and a best-effort message extracted
// from the response body
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("HTTP error, status %d", e.Status)
}

// ConflictKind classifies server-reported booking conflicts
type ConflictKind int

const (
	ConflictNone ConflictKind = iota
	ConflictSlotTaken
	ConflictPastDate
)

// conflictRule maps free-text server phrases to a stable conflict kind.
// The backend reports conflicts as human-readable messages, not codes, so
// the client pattern-matches. The phrase table is data: the production
// backend answers in Russian, the dev stub in English.
type conflictRule struct {
	Kind    ConflictKind
	Phrases []string
}

var conflictRules = []conflictRule{
	{Kind: ConflictSlotTaken, Phrases: []string{"уже занята", "already taken", "already booked"}},
	{Kind: ConflictPastDate, Phrases: []string{"прошлом", "in the past"}},
}

// Classify inspects an error and reports which known conflict, if any,
// the server described
func Classify(err error) ConflictKind {
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		return ConflictNone
	}
	msg := strings.ToLower(httpErr.Message)
	for _, rule := range conflictRules {
		for _, phrase := range rule.Phrases {
			if strings.Contains(msg, phrase) {
				return rule.Kind
			}
		}
	}
	return ConflictNone
}

// IsNetworkError reports whether err is a transport failure
func IsNetworkError(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr)
}
