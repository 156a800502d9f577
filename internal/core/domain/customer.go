package domain

// Customer is an identity that owns zero or more accounts. Name uniqueness is
// enforced by the create path, not by the schema.
type Customer struct {
	CustomerID string `json:"customer_id"`
	Name       string `json:"name"`
	Timestamps
}
