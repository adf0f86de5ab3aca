package service

// PaymentIDGenerator produces candidate payment identifiers of the form
// "PAY" followed by a fixed number of ASCII digits. Uniqueness is the
// checkout workflow's responsibility; the generator only supplies candidates.
type PaymentIDGenerator interface {
	// Generate returns "PAY" plus digits random decimal digits.
	Generate(digits int) string
}
