package model

import (
	"fmt"
	"time"

	"github.com/forgo/hangs/internal/database"
)

// HangTable is the SurrealDB table holding hangs
const HangTable = "hang"

// Hang field names as stored and serialized
const (
	FieldID          = "id"
	FieldTitle       = "title"
	FieldDate        = "date"
	FieldTime        = "time"
	FieldLocation    = "location"
	FieldDescription = "description"
	FieldRSVP        = "rsvp"
	FieldOwner       = "owner"
	FieldCreatedAt   = "createdAt"
	FieldUpdatedAt   = "updatedAt"
)

// Hang is a get-together with an append-only RSVP list
type Hang struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	RSVP        []Fields  `json:"rsvp"`
	Owner       string    `json:"owner"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// HangTextFields lists the required text fields of a hang in display order
func HangTextFields() []string {
	return []string{FieldTitle, FieldDate, FieldTime, FieldLocation, FieldDescription}
}

// ProtectedHangFields can never be written by a client payload
func ProtectedHangFields() []string {
	return []string{FieldID, FieldOwner, FieldRSVP, FieldCreatedAt, FieldUpdatedAt}
}

// HangSchema describes the hang table
func HangSchema() database.Schema {
	fields := make([]database.Field, 0, 10)
	for _, name := range HangTextFields() {
		fields = append(fields, database.Field{Name: name, Type: "string", Required: true})
	}

	fields = append(fields,
		database.Field{Name: FieldRSVP, Type: "array<object>", Default: "[]"},
		database.Field{Name: FieldRSVP + ".*", Type: "object", Required: true, Flexible: true},
		database.Field{Name: FieldOwner, Type: "record<" + UserTable + ">", Required: true, ReadOnly: true},
		database.Field{Name: FieldCreatedAt, Type: "datetime", Default: "time::now()", ReadOnly: true},
		database.Field{Name: FieldUpdatedAt, Type: "datetime", Value: "time::now()"},
	)

	return database.Schema{
		Table:  HangTable,
		Fields: fields,
	}
}

// HangRequest is the {"hang": {...}} envelope used by every hang write
type HangRequest struct {
	Hang Fields `json:"hang"`
}

// HangResponse wraps a single hang
type HangResponse struct {
	Hang *Hang `json:"hang"`
}

// HangListResponse wraps every hang
type HangListResponse struct {
	Hangs []*Hang `json:"hangs"`
}

// NewHang builds a hang owned by ownerID from a client payload.
// Any owner or system field in the payload is ignored.
func NewHang(ownerID string, payload Fields) (*Hang, []FieldError) {
	fields := payload.Without(ProtectedHangFields()...)

	var errs []FieldError
	values := make(map[string]string, len(HangTextFields()))
	for _, name := range HangTextFields() {
		raw, present := fields[name]
		if !present {
			errs = append(errs, FieldError{Field: name, Message: name + " is required"})
			continue
		}
		s, ok := raw.(string)
		if !ok {
			errs = append(errs, FieldError{Field: name, Message: name + " must be a string"})
			continue
		}
		if s == "" {
			errs = append(errs, FieldError{Field: name, Message: name + " is required"})
			continue
		}
		values[name] = s
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &Hang{
		Title:       values[FieldTitle],
		Date:        values[FieldDate],
		Time:        values[FieldTime],
		Location:    values[FieldLocation],
		Description: values[FieldDescription],
		RSVP:        []Fields{},
		Owner:       ownerID,
	}, nil
}

// ValidatePatch checks the text fields present in a partial update
func ValidatePatch(patch Fields) []FieldError {
	var errs []FieldError
	for _, name := range HangTextFields() {
		raw, present := patch[name]
		if !present {
			continue
		}
		s, ok := raw.(string)
		if !ok {
			errs = append(errs, FieldError{Field: name, Message: fmt.Sprintf("%s must be a string", name)})
			continue
		}
		if s == "" {
			errs = append(errs, FieldError{Field: name, Message: fmt.Sprintf("%s cannot be empty", name)})
		}
	}
	return errs
}
