package enum

// PaymentMethod represents how a bill was paid
type PaymentMethod string

const (
	PaymentMethodCOD   PaymentMethod = "COD"
	PaymentMethodBkash PaymentMethod = "bKash"
	PaymentMethodNagad PaymentMethod = "Nagad"
	PaymentMethodCard  PaymentMethod = "Card"
)

// Values returns every accepted payment method
func Values() []PaymentMethod {
	return []PaymentMethod{PaymentMethodCOD, PaymentMethodBkash, PaymentMethodNagad, PaymentMethodCard}
}

// Valid reports whether m is one of the accepted payment methods
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCOD, PaymentMethodBkash, PaymentMethodNagad, PaymentMethodCard:
		return true
	}
	return false
}

func (m PaymentMethod) String() string {
	return string(m)
}
