package models

// Customer mirrors a row in the customers table.
type Customer struct {
	CustomerID string `db:"id"`
	Name       string `db:"name"`
	Timestamps
}
