// Package http implements the local control API of the sync engine: trigger
// a sync, inspect its state, and reset the persisted continuation token.
package http
