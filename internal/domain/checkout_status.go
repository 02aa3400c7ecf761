package domain

type CheckoutStatus string

const (
	CheckoutStatusIdle       CheckoutStatus = "idle"
	CheckoutStatusSubmitting CheckoutStatus = "submitting"
	CheckoutStatusSuccess    CheckoutStatus = "success"
	CheckoutStatusError      CheckoutStatus = "error"
)

// CanSubmit reports whether a new submission may start from this status.
func (s CheckoutStatus) CanSubmit() bool {
	return s != CheckoutStatusSubmitting
}

// String representation (for logging)
func (s CheckoutStatus) String() string {
	return string(s)
}
