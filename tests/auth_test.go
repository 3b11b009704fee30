package tests

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgo/hangs/internal/model"
	"github.com/forgo/hangs/internal/testing/fixtures"
	"github.com/forgo/hangs/internal/testing/helpers"
)

/*
FEATURE: Accounts
DOMAIN: Auth

ACCEPTANCE CRITERIA:
===================

AC-AUTH-001: Sign Up
  GIVEN a new email and matching passwords (8+ chars)
  WHEN the user signs up
  THEN 201 is returned with the user
  AND no password hash is serialized

AC-AUTH-002: Sign Up Duplicate Email
  GIVEN an existing user with email X
  WHEN someone signs up with email X in any case
  THEN 409 is returned

AC-AUTH-003: Sign Up Validation
  GIVEN a bad email, short password or mismatched confirmation
  WHEN the user signs up
  THEN 422 is returned naming the field

AC-AUTH-004: Sign In
  GIVEN a registered user
  WHEN the user signs in with correct credentials
  THEN 201 is returned with a bearer token
  AND the token authorizes hang writes

AC-AUTH-005: Sign In With Wrong Credentials
  GIVEN a registered user
  WHEN the user signs in with a wrong password or unknown email
  THEN 401 is returned with the same problem for both

AC-AUTH-006: Change Password
  GIVEN an authenticated user
  WHEN the user changes password with the correct old one
  THEN 204 is returned
  AND only the new password signs in

AC-AUTH-007: Change Password With Wrong Old Password
  GIVEN an authenticated user
  WHEN the old password is wrong
  THEN 422 is returned naming old
*/

func signIn(t *testing.T, api *testAPI, email, password string) *model.User {
	t.Helper()

	resp := helpers.NewRequest(t, http.MethodPost, "/sign-in").
		WithBody(map[string]interface{}{"credentials": map[string]string{"email": email, "password": password}}).
		Do(api)
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	var body model.UserResponse
	helpers.DecodeResponse(t, resp, &body)
	require.NotNil(t, body.User)
	return body.User
}

func TestAuth_SignUp(t *testing.T) {
	api := newAPI(t)

	resp := helpers.NewRequest(t, http.MethodPost, "/sign-up").
		WithBody(map[string]interface{}{"credentials": map[string]string{
			"email":                 "Ada@Example.com",
			"password":              "correct horse",
			"password_confirmation": "correct horse",
		}}).
		Do(api)
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	assert.NotContains(t, resp.Body.String(), "hash")

	var body model.UserResponse
	helpers.DecodeResponse(t, resp, &body)
	require.NotNil(t, body.User)
	assert.NotEmpty(t, body.User.ID)
	assert.Equal(t, "ada@example.com", body.User.Email)
	assert.Empty(t, body.User.Token)

	helpers.AssertRecordExists(t, api.DB.DB, model.UserTable, body.User.ID)
}

func TestAuth_SignUpDuplicateEmail(t *testing.T) {
	api := newAPI(t)
	existing := api.Fixtures.CreateUser(t, fixtures.WithEmail("taken@example.com"))
	require.NotEmpty(t, existing.ID)

	resp := helpers.NewRequest(t, http.MethodPost, "/sign-up").
		WithBody(map[string]interface{}{"credentials": map[string]string{
			"email":                 strings.ToUpper("taken@example.com"),
			"password":              "correct horse",
			"password_confirmation": "correct horse",
		}}).
		Do(api)

	helpers.AssertProblemDetails(t, resp, http.StatusConflict, model.ErrCodeAlreadyExists)
}

func TestAuth_SignUpValidation(t *testing.T) {
	api := newAPI(t)

	tests := []struct {
		name  string
		creds map[string]string
		field string
	}{
		{"bad email", map[string]string{"email": "nope", "password": "correct horse", "password_confirmation": "correct horse"}, "email"},
		{"short password", map[string]string{"email": "a@example.com", "password": "short", "password_confirmation": "short"}, "password"},
		{"mismatch", map[string]string{"email": "b@example.com", "password": "correct horse", "password_confirmation": "battery staple"}, "password_confirmation"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := helpers.NewRequest(t, http.MethodPost, "/sign-up").
				WithBody(map[string]interface{}{"credentials": tt.creds}).
				Do(api)
			helpers.AssertValidationError(t, resp, tt.field)
		})
	}
}

func TestAuth_SignInTokenAuthorizesWrites(t *testing.T) {
	api := newAPI(t)
	user := api.Fixtures.CreateUser(t)

	signedIn := signIn(t, api, user.Email, fixtures.DefaultPassword)
	require.NotEmpty(t, signedIn.Token)
	assert.Equal(t, user.ID, signedIn.ID)

	resp := helpers.NewRequest(t, http.MethodPost, "/hangs").
		WithToken(signedIn.Token).
		WithBody(map[string]interface{}{"hang": fixtures.HangPayload()}).
		Do(api)
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	var body model.HangResponse
	helpers.DecodeResponse(t, resp, &body)
	assert.Equal(t, user.ID, body.Hang.Owner)
}

func TestAuth_SignInWrongCredentials(t *testing.T) {
	api := newAPI(t)
	user := api.Fixtures.CreateUser(t)

	wrongPassword := helpers.NewRequest(t, http.MethodPost, "/sign-in").
		WithBody(map[string]interface{}{"credentials": map[string]string{"email": user.Email, "password": "wrong password"}}).
		Do(api)
	unknownEmail := helpers.NewRequest(t, http.MethodPost, "/sign-in").
		WithBody(map[string]interface{}{"credentials": map[string]string{"email": "ghost@example.com", "password": "wrong password"}}).
		Do(api)

	helpers.AssertProblemDetails(t, wrongPassword, http.StatusUnauthorized, model.ErrCodeLoginFailed)
	helpers.AssertProblemDetails(t, unknownEmail, http.StatusUnauthorized, model.ErrCodeLoginFailed)
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
}

func TestAuth_ChangePassword(t *testing.T) {
	api := newAPI(t)
	user := api.Fixtures.CreateUser(t)

	resp := helpers.NewRequest(t, http.MethodPatch, "/change-password").
		WithAuth(api.JWT, user).
		WithBody(map[string]interface{}{"passwords": map[string]string{
			"old": fixtures.DefaultPassword,
			"new": "battery staple",
		}}).
		Do(api)
	require.Equal(t, http.StatusNoContent, resp.Code, resp.Body.String())

	signIn(t, api, user.Email, "battery staple")

	stale := helpers.NewRequest(t, http.MethodPost, "/sign-in").
		WithBody(map[string]interface{}{"credentials": map[string]string{"email": user.Email, "password": fixtures.DefaultPassword}}).
		Do(api)
	helpers.AssertProblemDetails(t, stale, http.StatusUnauthorized, model.ErrCodeLoginFailed)
}

func TestAuth_ChangePasswordWrongOld(t *testing.T) {
	api := newAPI(t)
	user := api.Fixtures.CreateUser(t)

	resp := helpers.NewRequest(t, http.MethodPatch, "/change-password").
		WithAuth(api.JWT, user).
		WithBody(map[string]interface{}{"passwords": map[string]string{"old": "not my password", "new": "battery staple"}}).
		Do(api)

	helpers.AssertValidationError(t, resp, "old")
	signIn(t, api, user.Email, fixtures.DefaultPassword)
}

func TestHealth(t *testing.T) {
	api := newAPI(t)

	resp := helpers.NewRequest(t, http.MethodGet, "/health").Do(api)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"status":"ok"}`, resp.Body.String())
}
