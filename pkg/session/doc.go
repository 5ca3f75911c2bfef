/*
Package session persists decision traces in a key-value store.

Each session is one JSON blob under the key "session:<id>". The Manager loads it,
applies an engine transition and writes it back. There is no locking: a session
belongs to a single user at a time.
*/
package session
