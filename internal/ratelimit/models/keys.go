package models

import "strings"

// KeyPrefix namespaces bucket keys so different limit types never share a
// counter.
type KeyPrefix string

const KeyPrefixIP KeyPrefix = "ip"

const keyNamespace = "holocron:ratelimit"

// SanitizeKeySegment escapes ':' so an identifier cannot reach into an
// adjacent key segment ("1.2.3.4:x" becomes "1.2.3.4_x").
func SanitizeKeySegment(s string) string {
	return strings.ReplaceAll(s, ":", "_")
}

// NewRateLimitKey builds "holocron:ratelimit:<prefix>:<identifier>".
func NewRateLimitKey(prefix KeyPrefix, identifier string) string {
	return keyNamespace + ":" + string(prefix) + ":" + SanitizeKeySegment(identifier)
}
