// Package client contains the client's view of the remote service.
//
// # Overview
//
// The package provides:
//  1. The Client interface: sessions, report list/create/delete, presigned
//     photo uploads, the photo feed and caption translations.
//  2. HTTPClient, the HTTP+JSON implementation. Every call carries the API
//     key header; authenticated calls also carry the session id in the
//     X-Authentication header.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) that opens
//     the SQLite file and applies the embedded goose migrations.
//
// # Error Handling
//
// A response body with a non-empty "error" field is returned as *RemoteError
// regardless of the HTTP status. 401/403 responses match ErrUnauthorized,
// transport failures and 5xx responses match ErrUnavailable; use errors.Is.
// ErrLocalDataNotAvailable is used by callers that need a stored session and
// find none.
package client
