// Package persistence stores generated key material on the local filesystem.
// Files are written through a temporary file and renamed into place, so a reader
// never observes a partially written key.
package persistence
