// Package jwt issues and verifies RS256 JSON Web Tokens.
//
// A Service holds an RSA key pair. Tokens carry the user key as the
// subject:
//
//	svc, err := jwt.NewService(jwt.Config{
//	    PrivateKeyPath: "keys/private.pem",
//	    Issuer:         "hangs-api",
//	    ExpirationMins: 60,
//	})
//	token, err := svc.Sign(jwt.Claims{Subject: userID, Email: email})
//
//	claims, err := svc.Validate(token)
//	if errors.Is(err, jwt.ErrTokenExpired) {
//	    // ask the caller to sign in again
//	}
//
// Only RS256 is accepted; a token whose header names any other algorithm
// is rejected before its signature is checked.
package jwt
