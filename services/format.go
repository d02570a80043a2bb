// services/format.go
package services

import (
	"regexp"
	"strings"
	"unicode"
)

// Formatting always runs before validation AND before any
// compare-for-equality, so differently punctuated but equal inputs land on
// one canonical form. Every formatter here is idempotent.

var (
	lettersDashesRe   = regexp.MustCompile(`^[\p{L}\- ]+$`)
	digitsRe          = regexp.MustCompile(`^[0-9]+$`)
	foodNameRe        = regexp.MustCompile(`^[\p{L}0-9\- ]+$`)
	ingredientRe      = regexp.MustCompile(`^[\p{L}\- ]+$`)
	holderNameRe      = regexp.MustCompile(`^[\p{L}\- ]+$`)
	cardExpirationRe  = regexp.MustCompile(`^(0[1-9]|1[0-2])/[0-9]{2}$`)
	searchQueryRe     = regexp.MustCompile(`^[\p{L}0-9\- ]+$`)
	reviewTitleRe     = regexp.MustCompile(`^[\p{L}0-9\- .,!?']+$`)
	emailRe           = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phoneSeparatorsRe = regexp.MustCompile(`[\s./()\-]`)
)

// titleCase lower-cases s and upper-cases the first letter of every word,
// treating spaces and dashes as word breaks. titleCase(titleCase(x)) ==
// titleCase(x).
func titleCase(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	out := []rune(s)
	start := true
	for i, r := range out {
		if start && unicode.IsLetter(r) {
			out[i] = unicode.ToUpper(r)
			start = false
		}
		if r == ' ' || r == '-' {
			start = true
		}
	}
	return string(out)
}

// formatPhoneNumber strips separators, keeping a leading "+".
func formatPhoneNumber(phone string) string {
	phone = strings.TrimSpace(phone)
	plus := strings.HasPrefix(phone, "+")
	phone = phoneSeparatorsRe.ReplaceAllString(phone, "")
	phone = strings.TrimPrefix(phone, "+")
	if plus {
		return "+" + phone
	}
	return phone
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
