// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto hashes and verifies user passwords.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns passwords into salted, self-describing hashes and
// verifies passwords against them.
type PasswordHasher interface {
	// Hash returns an encoded argon2id hash of password with a fresh salt.
	Hash(password string) (string, error)

	// Verify reports whether password matches encoded. Besides argon2id
	// hashes it accepts the unsalted SHA-256 hex digests of older documents.
	Verify(password, encoded string) (bool, error)

	// NeedsRehash reports whether encoded should be replaced by a fresh Hash
	// after a successful Verify.
	NeedsRehash(encoded string) bool
}
