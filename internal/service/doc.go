// Package service holds the business rules of the Hangs API.
//
// HangService composes two guards ahead of every mutation. requireFound
// turns a missing record into ErrHangNotFound and requireOwnership rejects
// callers other than the owner with ErrNotHangOwner. A pipeline stops at
// the first failing step:
//
//	hang, err := requireFound(s.repo.Get(ctx, id))
//	if err != nil {
//	    return err
//	}
//	if err := requireOwnership(callerID, hang); err != nil {
//	    return err
//	}
//
// AuthService signs users up and in with bcrypt hashed passwords and
// TokenService issues the bearer tokens checked by middleware.Auth.
//
// Repositories are declared here as interfaces and satisfied by package
// repository. Errors are sentinels from errors.go, matched with errors.Is.
package service
