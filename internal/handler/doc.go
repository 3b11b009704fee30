// Package handler provides HTTP request handlers for the hangs API.
//
// Each handler struct depends on a small service interface declared next to
// it, so tests drive the real handlers with mocks.
//
// # Response Format
//
// Successful responses wrap the resource in a named envelope:
//
//	GET  /hangs       {"hangs": [...]}
//	GET  /hangs/{id}  {"hang": {...}}
//	POST /sign-in     {"user": {..., "token": "..."}}
//
// Writes that return nothing respond 204. Errors are RFC 9457 Problem Details
// produced by MapServiceError.
//
// # Authentication
//
// Routes behind middleware.Auth read the caller with middleware.GetUserID.
package handler
