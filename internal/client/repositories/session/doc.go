// Package session persists the client session between runs: a small
// key/value table in the local SQLite database. The only key the client
// writes today is common.TokenKey.
package session
