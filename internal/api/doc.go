// Package api implements the HTTP handlers for the task tracker's REST
// surface. Handlers decode and validate untrusted input, call the store
// layer, and serialize responses; every error leaving this package is
// mapped to the documented error body shape with a stable error field.
package api
