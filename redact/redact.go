// xivdyetools-logger - Structured Logging for XIVDyeTools Services
// Copyright 2026 FlashGalatine
// SPDX-License-Identifier: MIT
// https://github.com/FlashGalatine/xivdyetools-logger

// Package redact implements the two redaction responsibilities of the
// logging pipeline: exact-match field redaction over context maps, and
// regex-based sanitization of secrets embedded in free-text error messages.
//
// Both are pure functions: inputs are never mutated and both operations are
// idempotent, so redacting already-redacted data is a no-op.
package redact

// Sentinel is the fixed string that replaces every redacted value.
const Sentinel = "[REDACTED]"

// Fields returns a copy of ctx with the value of every listed field name
// replaced by Sentinel. Matching is exact and case-sensitive on key
// identity; unrelated keys and values pass through untouched and nested
// map values are not descended into.
func Fields(ctx map[string]any, fields []string) map[string]any {
	if len(ctx) == 0 {
		return ctx
	}

	out := make(map[string]any, len(ctx))
	for k, v := range ctx {
		out[k] = v
	}
	for _, f := range fields {
		if _, ok := out[f]; ok {
			out[f] = Sentinel
		}
	}
	return out
}
