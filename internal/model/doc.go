// Package model defines the domain entities, request envelopes and
// error payloads shared by every layer of the Hangs API.
//
// # Domain Entities
//
//   - Hang: a get-together with title, date, time, location, description,
//     an owner and an append-only RSVP list
//   - User: an account that signs in and owns hangs
//
// Every hang write arrives wrapped as {"hang": {...}} and is decoded into
// Fields, a loosely typed object that can be filtered before it reaches
// storage:
//
//	patch := req.Hang.WithoutBlanks().Only(HangTextFields()...)
//
// # Table Schemas
//
// HangSchema and UserSchema describe the SurrealDB tables. They are
// applied at startup with database.ApplySchema.
//
// # Errors
//
// API errors follow RFC 9457 Problem Details and are written with
// ProblemDetails.WriteJSON.
package model
