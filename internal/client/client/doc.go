// Package client contains the transport side of the postboard client.
//
// # Overview
//
//  1. Client, the API contract: login, posts, comments, users, the file
//     upload and the comments report.
//  2. HTTPClient, its HTTP/JSON implementation. Every request is sent to
//     baseURL+path; an authTransport adds "Authorization: Bearer <token>"
//     whenever the TokenSource has a token. JSON requests carry
//     "Content-Type: application/json"; the multipart upload opts out and
//     sets its own boundary.
//  3. InitDatabase/RunMigrations, which open the local SQLite database that
//     keeps the session token between runs.
//
// # Error Handling
//
// Network failures wrap ErrUnavailable. Non-2xx responses are returned as
// *APIError; 401/403 unwrap to ErrUnauthorized and 404 to common.ErrNotFound.
// Nothing is retried.
package client
