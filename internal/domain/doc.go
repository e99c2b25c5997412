// Package domain defines the core business entities and the input
// validation rules that guard them. Validation here is pure: it never
// touches the store, it accumulates every failure before reporting,
// and on success it produces a fully normalized record.
package domain
