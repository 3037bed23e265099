// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

var ErrInvalidAdminKey = errors.New("invalid admin key")

// ValidateAdminKey checks the key presented by a client against the configured one.
// Both sides are hashed first so the comparison time doesn't depend on length.
func ValidateAdminKey(provided, expected string) error {
	if provided == "" || expected == "" {
		return ErrInvalidAdminKey
	}
	a := sha256.Sum256([]byte(provided))
	b := sha256.Sum256([]byte(expected))
	if !hmac.Equal(a[:], b[:]) {
		return ErrInvalidAdminKey
	}
	return nil
}

// HashIP creates a one-way hash of an IP address for privacy
// Includes salt to prevent rainbow table attacks
func HashIP(ip, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(ip))
	sum := h.Sum(nil)
	// Return first 16 hex chars (64 bits) - enough to correlate votes in logs
	return hex.EncodeToString(sum[:8])
}
