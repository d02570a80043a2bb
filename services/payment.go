package services

import (
	"strings"

	"github.com/LiamF-2261667/fruckr-sub000/pkg/apperr"
)

// CardIn is the payment proof sent with an order. It is validated and then
// discarded: nothing is persisted and no gateway is charged.
type CardIn struct {
	Number     string `json:"number"`
	HolderName string `json:"holderName"`
	Expiration string `json:"expiration"` // MM/YY
}

func FormatCard(card *CardIn) {
	card.Number = digitsOnly(card.Number)
	card.HolderName = strings.TrimSpace(card.HolderName)
	card.Expiration = strings.TrimSpace(card.Expiration)
}

func ValidateCard(card *CardIn) error {
	if len(card.Number) < 16 || len(card.Number) > 24 {
		return apperr.Invalid("cardNumber", "card number must be 16 to 24 digits")
	}
	if card.HolderName == "" || !holderNameRe.MatchString(card.HolderName) {
		return apperr.Invalid("cardHolder", "holder name may only contain letters, spaces and dashes")
	}
	if !cardExpirationRe.MatchString(card.Expiration) {
		return apperr.Invalid("cardExpiration", "expiration must be MM/YY")
	}
	return nil
}
