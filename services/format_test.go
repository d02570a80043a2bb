package services

import (
	"testing"

	"github.com/LiamF-2261667/fruckr-sub000/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTitleCase(t *testing.T) {
	cases := map[string]string{
		"hasselt":         "Hasselt",
		"SINT-truiden":    "Sint-Truiden",
		"  grote  markt ": "Grote  Markt",
		"d-e-f":           "D-E-F",
		"":                "",
		"7de-liniestraat": "7De-Liniestraat",
	}
	for in, want := range cases {
		assert.Equal(t, want, titleCase(in), "titleCase(%q)", in)
	}
}

func TestTitleCaseIsIdempotent(t *testing.T) {
	for _, s := range []string{"sint-truiden", "Grote Markt", "a-b c-d", "PIZZA"} {
		once := titleCase(s)
		assert.Equal(t, once, titleCase(once))
	}
}

func TestFormatPhoneNumber(t *testing.T) {
	cases := map[string]string{
		"+32 478/12.34.56": "+32478123456",
		"011 23 45 67":     "011234567",
		"(0478) 12-34-56":  "0478123456",
		" +32478123456 ":   "+32478123456",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatPhoneNumber(in), "formatPhoneNumber(%q)", in)
	}
}

func TestFormatCardStripsSeparators(t *testing.T) {
	card := &CardIn{Number: "1234 5678 9012 3456", HolderName: " Jan Jansens ", Expiration: " 04/27 "}
	FormatCard(card)
	assert.Equal(t, "1234567890123456", card.Number)
	assert.Equal(t, "Jan Jansens", card.HolderName)
	assert.Equal(t, "04/27", card.Expiration)
}

func TestValidateCard(t *testing.T) {
	valid := CardIn{Number: "1234567890123456", HolderName: "Jan Jansens", Expiration: "04/27"}
	require.NoError(t, ValidateCard(&valid))

	cases := []struct {
		name  string
		card  CardIn
		field string
	}{
		{"short number", CardIn{Number: "123456789012345", HolderName: "Jan", Expiration: "04/27"}, "cardNumber"},
		{"long number", CardIn{Number: "1234567890123456789012345", HolderName: "Jan", Expiration: "04/27"}, "cardNumber"},
		{"digits in holder", CardIn{Number: "1234567890123456", HolderName: "Jan 3", Expiration: "04/27"}, "cardHolder"},
		{"month 13", CardIn{Number: "1234567890123456", HolderName: "Jan", Expiration: "13/27"}, "cardExpiration"},
		{"month 00", CardIn{Number: "1234567890123456", HolderName: "Jan", Expiration: "00/27"}, "cardExpiration"},
		{"four digit year", CardIn{Number: "1234567890123456", HolderName: "Jan", Expiration: "04/2027"}, "cardExpiration"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateCard(&tc.card)
			ie, ok := apperr.AsInvalidInput(err)
			require.True(t, ok)
			assert.Equal(t, tc.field, ie.Field)
		})
	}
}
