package booking

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	PaymentMethodPending      = "pending"
	PaymentMethodBankTransfer = "bank_transfer"
	PaymentMethodCreditCard   = "credit_card"
	PaymentMethodPayPal       = "paypal"
)

type PaymentInstructions struct {
	Method  string   `json:"method"`
	Title   string   `json:"title"`
	Steps   []string `json:"steps"`
	Amount  string   `json:"amount"`
	DueDays int      `json:"due_days,omitempty"`
}

type instructionTemplate struct {
	title   string
	steps   []string
	dueDays int
}

var bankTransferTemplate = instructionTemplate{
	title: "Bank transfer",
	steps: []string{
		"Transfer %[2]s to AeroTrav Ltd, account 0123456789, bank code 0001.",
		"Use booking reference %[1]s as the payment description.",
		"Your booking is confirmed once the transfer is received.",
	},
	dueDays: 3,
}

var instructionTemplates = map[string]instructionTemplate{
	PaymentMethodPending:      bankTransferTemplate,
	PaymentMethodBankTransfer: bankTransferTemplate,
	PaymentMethodCreditCard: {
		title: "Credit card",
		steps: []string{
			"Complete the card payment of %[2]s from the booking page.",
			"Quote booking reference %[1]s if you contact support.",
		},
	},
	PaymentMethodPayPal: {
		title: "PayPal",
		steps: []string{
			"Send %[2]s to payments@aerotrav.example via PayPal.",
			"Add booking reference %[1]s to the payment note.",
		},
		dueDays: 1,
	},
}

// PaymentInstructionsFor selects a canned template; unknown methods get the bank transfer one.
func PaymentInstructionsFor(method, reference string, total decimal.Decimal) PaymentInstructions {
	tmpl, ok := instructionTemplates[method]
	if !ok {
		method = PaymentMethodPending
		tmpl = bankTransferTemplate
	}
	amount := total.StringFixed(2)
	steps := make([]string, len(tmpl.steps))
	for i, s := range tmpl.steps {
		steps[i] = fmt.Sprintf(s, reference, amount)
	}
	return PaymentInstructions{
		Method:  method,
		Title:   tmpl.title,
		Steps:   steps,
		Amount:  amount,
		DueDays: tmpl.dueDays,
	}
}

// NormalizePaymentMethod defaults a blank method to pending.
func NormalizePaymentMethod(method string) string {
	if method == "" {
		return PaymentMethodPending
	}
	return method
}
