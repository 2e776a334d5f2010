package services

// Valid GSTINs are exactly 15 characters; a well-formed one stands in for
// an established, filing business and gets the higher placeholder score.
// Real bureau integration replaces this wholesale.
const (
	gstinLength  = 15
	scoreRegular = 750
	scoreThin    = 600
)

// MockCreditScore derives a placeholder credit score from the GSTIN.
func MockCreditScore(gstin string) int {
	if len(gstin) == gstinLength {
		return scoreRegular
	}
	return scoreThin
}
