package ai

import (
	"crypto/sha256"
	"encoding/hex"
)

// DeriveKey produces the cache identity for a request. The key is a
// sha256 digest of the (hint, prompt, context) triple, so identical
// requests map to the same key in any process and across restarts.
// NUL separators keep field boundaries unambiguous: ("a", "bc") and
// ("ab", "c") never alias.
func DeriveKey(cacheHint, prompt, contextText string) string {
	h := sha256.New()
	h.Write([]byte(cacheHint))
	h.Write([]byte{0})
	h.Write([]byte(prompt))
	h.Write([]byte{0})
	h.Write([]byte(contextText))
	return hex.EncodeToString(h.Sum(nil))
}

// ShortDigest returns the first 16 hex characters of the sha256 digest
// of s. Generated cache hints embed it to key per-input derivations
// without carrying the full input in the hint.
func ShortDigest(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:8])
}
