// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides password hashing, token generation and signing.

# Passwords

Passwords are stored as bcrypt hashes and never in plaintext:

	hash, err := auth.HashPassword("changeme")
	err = auth.CheckPassword(hash, candidate) // ErrInvalidCredentials on mismatch

When a username does not exist, call BurnPasswordCheck so the response time
does not reveal which half of the credentials was wrong.

# Session Tokens

Session tokens are random 32-byte (256-bit) secrets:

	token, err := auth.GenerateSessionToken()

Tokens are URL-safe base64 encoded and never contain '.'.

# Signing

Client-held values (session and flash cookies) are signed with HMAC-SHA256
under the SECRET_KEY:

	cookie := auth.Sign(token, secret)      // "token.signature"
	token, err := auth.Unsign(cookie, secret)

Unsign returns ErrInvalidSignature if the value was tampered with or signed
under a different secret.

# Errors

	ErrInvalidCredentials - bad username or password at login
	ErrUnauthenticated    - no valid session on an administrator route
*/
package auth
