// Package mocks provides map-backed implementations of the store
// interfaces for testing. Each mock offers optional function fields to
// override individual methods, with a default in-memory implementation
// that mirrors the MongoDB stores' semantics (uniqueness checks, partial
// updates, filter/sort behavior).
package mocks
