package valueobjects

type PaymentStatus string

const (
	PaymentStatusUnpaid   PaymentStatus = "unpaid"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusUnpaid, PaymentStatusPaid, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	default:
		return false
	}
}

func (s PaymentStatus) IsPaid() bool {
	return s == PaymentStatusPaid
}

func (s PaymentStatus) IsUnpaid() bool {
	return s == PaymentStatusUnpaid
}

// IsFinal reports whether no gateway event may move the payment further.
func (s PaymentStatus) IsFinal() bool {
	return s == PaymentStatusPaid || s == PaymentStatusRefunded
}

func (s PaymentStatus) String() string {
	return string(s)
}
