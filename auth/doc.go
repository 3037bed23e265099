// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides admin key checks and IP hashing.

# Admin Keys

The admin API is guarded by a single configured key sent in X-Admin-Key:

	if err := auth.ValidateAdminKey(r.Header.Get("X-Admin-Key"), cfg.AdminKey); err != nil {
		// 401
	}

Empty keys never validate.

# IP Hashing

Votes are logged with a salted hash instead of the client address:

	hash := auth.HashIP(ipAddress, salt)

Returns first 8 bytes (16 hex chars) of HMAC-SHA256.
*/
package auth
