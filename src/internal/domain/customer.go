package domain

import "time"

// Customer is the owner of zero or more time deposits. AccountNumber is the
// unique business key; once a customer exists the account number / name
// pairing never changes.
type Customer struct {
	ID            string
	AccountNumber string
	CustomerName  string
	CreatedAt     time.Time
}
