// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session keeps the process-wide table of logged-in administrators.

	sessions := session.NewManager(store, cfg.SecretKey, cfg.SessionTTL)
	sess, err := sessions.Login(ctx, username, password)
	sessions.SetCookie(w, sess)

Sessions live in memory and expire after the configured TTL; a restart
logs everyone out. The cookie holds the token plus an HMAC signature, and
a cookie with a bad signature is treated as absent.

Flash messages ride in a separate signed cookie and are shown once.
*/
package session
