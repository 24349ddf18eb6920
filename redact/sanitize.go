// xivdyetools-logger - Structured Logging for XIVDyeTools Services
// Copyright 2026 FlashGalatine
// SPDX-License-Identifier: MIT
// https://github.com/FlashGalatine/xivdyetools-logger

package redact

import (
	"regexp"
	"strings"
)

// keyFamilies matches the secret-bearing key classes recognized by the pair
// rules, case-insensitively.
const keyFamilies = `token|secret|password|api[_-]?key|authorization|access[_-]?token|refresh[_-]?token`

// rule is one step of the sanitization pipeline. Rules run strictly in
// declaration order; replace receives the submatches of one occurrence and
// returns its rewrite.
type rule struct {
	name    string
	re      *regexp.Regexp
	replace func(m []string) string
}

// rules is the sanitization pipeline. Ordering is load-bearing: the bearer
// rule runs first so the pair rules below never see a raw bearer credential,
// and the pair rules skip values the bearer rule already rewrote (RE2 has no
// lookahead, so the exclusion lives in the replace funcs). Sentinel output
// is a fixed point for every rule, which keeps the whole pipeline
// idempotent.
var rules = []rule{
	{
		// Bearer-style credentials, bare or inside an authorization pair.
		name: "bearer",
		re:   regexp.MustCompile(`(?i)\bBearer\s+[A-Za-z0-9\-._~+/]+=*`),
		replace: func(_ []string) string {
			return "Bearer " + Sentinel
		},
	},
	{
		// key="value" and key: "value" pairs whose quoted values may
		// contain delimiter characters. Must not re-match a value the
		// bearer rule already rewrote.
		name: "quoted-pair",
		re:   regexp.MustCompile(`(?i)\b(` + keyFamilies + `)(\s*[:=]\s*)"([^"]*)"`),
		replace: func(m []string) string {
			if bearerValue(m[3]) {
				return m[0]
			}
			return m[1] + m[2] + `"` + Sentinel + `"`
		},
	},
	{
		// Unquoted values, terminated by whitespace, comma, or semicolon.
		// Same bearer exclusion as quoted-pair.
		name: "pair",
		re:   regexp.MustCompile(`(?i)\b(` + keyFamilies + `)(\s*[:=]\s*)([^\s,;"]+)`),
		replace: func(m []string) string {
			if bearerValue(m[3]) {
				return m[0]
			}
			return m[1] + m[2] + Sentinel
		},
	},
}

// bearerValue reports whether a captured pair value is a bearer credential
// shape, which the bearer rule has already handled. Only the word "bearer"
// alone (the unquoted residue of a rewritten pair) or "bearer" followed by
// whitespace qualifies; a value that merely begins with those letters is an
// ordinary secret and must still be redacted.
func bearerValue(v string) bool {
	if len(v) < 6 || !strings.EqualFold(v[:6], "bearer") {
		return false
	}
	return len(v) == 6 || v[6] == ' ' || v[6] == '\t'
}

// Message applies the sanitization pipeline to a free-text string, typically
// an error message. Every rule applies independently and cumulatively, so a
// string carrying several kinds of secret loses all of them. Empty and
// non-matching strings pass through unchanged.
func Message(s string) string {
	if s == "" {
		return s
	}
	for _, r := range rules {
		re, replace := r.re, r.replace
		s = re.ReplaceAllStringFunc(s, func(match string) string {
			return replace(re.FindStringSubmatch(match))
		})
	}
	return s
}
