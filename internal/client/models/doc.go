// Package models defines the client-side mirrors of the API resources:
// users, posts, comments and report rows. None of them is persisted locally;
// the API is the source of truth.
package models
