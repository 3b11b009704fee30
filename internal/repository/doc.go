// Package repository implements the data access layer for the Hangs API.
//
// Each repository wraps a database.Database and speaks SurrealQL. Records
// are addressed by their bare key; the table prefix never leaves this
// package:
//
//	repo := NewHangRepository(db)
//	hang, err := repo.Get(ctx, "k3j9x2")
//	if hang == nil && err == nil {
//	    // not found
//	}
//
// Lookups return (nil, nil) for missing records so callers decide how a
// miss is reported.
package repository
