// Package textnorm holds the query normalization applied before substring search.
//
// Normalization only touches the query, never stored data, so a normalizer can
// be swapped (or dropped per locale) without touching ranking.
package textnorm

import "strings"

// QueryNormalizer turns raw user input into the substring matched against
// display name, category and bio.
type QueryNormalizer interface {
	Normalize(query string) string
}

// Identity lowercases and trims only.
type Identity struct{}

func (Identity) Normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

type suffixRule struct {
	from, to string
}

// Rules run in order, each on the output of the previous one.
var portugueseGenderRules = []suffixRule{
	{"óloga", "ólog"}, // psicóloga -> psicólog
	{"ólogo", "ólog"}, // psicólogo -> psicólog
	{"ista", "ist"},   // dentista -> dentist
	{"gada", "gad"},   // advogada -> advogad
	{"gado", "gad"},   // advogado -> advogad
	{"dora", "dor"},   // cuidadora -> cuidador
	{"a", ""},
	{"o", ""},
}

// PortugueseGender strips common gendered endings so "psicóloga" and
// "Psicólogo" meet at "psicólog".
type PortugueseGender struct{}

func (PortugueseGender) Normalize(query string) string {
	q := strings.ToLower(strings.TrimSpace(query))
	for _, r := range portugueseGenderRules {
		if strings.HasSuffix(q, r.from) {
			q = strings.TrimSuffix(q, r.from) + r.to
		}
	}
	return q
}
