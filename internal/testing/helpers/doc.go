// Request building for handler-level e2e tests:
//
//	jwt := helpers.NewJWTHelper(t)
//	resp := helpers.NewRequest(t, http.MethodPost, "/hangs").
//	    WithAuth(jwt, user).
//	    WithBody(map[string]any{"hang": payload}).
//	    Do(api)
//	helpers.AssertStatus(t, resp, http.StatusCreated)
//
// Problem responses:
//
//	helpers.AssertProblemDetails(t, resp, http.StatusForbidden, model.ErrCodeNotOwner)
//	helpers.AssertValidationError(t, resp, "title")
package helpers
