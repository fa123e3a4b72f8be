// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides API key checks for mutating routes.

# API Keys

When an API key is configured, question creation and deletion require it as
a bearer token:

	Authorization: Bearer <key>

Authorize performs the whole check and is a no-op when the key is empty:

	if err := auth.Authorize(r, cfg.APIKey); err != nil {
		// 401
	}

# Bearer Tokens

BearerToken extracts the token from the Authorization header. The scheme is
matched case-insensitively. A missing header, a different scheme, or an empty
token returns ErrMissingToken.

# Comparison

ValidateAPIKey hashes both keys with SHA-256 and compares the digests with
hmac.Equal, so timing does not depend on where the keys differ or on their
lengths. A mismatch returns ErrInvalidAPIKey.
*/
package auth
