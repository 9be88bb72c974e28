package model

// Order is one checkout attempt. Amounts are integers in the minor currency
// unit (pesewas); it lives only for the duration of the attempt and is never
// stored.
type Order struct {
	Email           string
	Amount          int64
	Plan            string
	Quantity        int
	CustomerName    string
	CustomerPhone   string
	CustomerCompany string
}
