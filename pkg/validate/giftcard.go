package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

// IsGiftCardNumber checks the Luhn digit of a card number issued by the
// payout provider.
func IsGiftCardNumber(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}
