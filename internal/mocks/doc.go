// Package mocks provides hand-written test doubles for the store and
// service interfaces. Each mock supports per-method function overrides
// plus default return values, so tests only configure what they assert.
package mocks
