// Package common contains shared constants and sentinel errors used across
// HeritageWatch components.
package common

// APIKeyHeaderName carries the project API key on every request to the
// remote service.
const APIKeyHeaderName = "X-API-Key"

// AuthenticationHeaderName carries the session id on authenticated requests.
const AuthenticationHeaderName = "X-Authentication"

// Report object statuses. Deleted reports are kept by the service and must be
// filtered out by clients.
const (
	ObjectStatusActive  = "active"
	ObjectStatusDeleted = "deleted"
)
