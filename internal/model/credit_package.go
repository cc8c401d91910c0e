package model

import "time"

// CreditPackage represents a purchasable bundle of session credits
type CreditPackage struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	CreditAmount int       `json:"credit_amount"`
	Price        int       `json:"price"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateCreditPackageRequest is the raw create payload, untyped for the
// validation layer.
type CreateCreditPackageRequest struct {
	Name         any `json:"name"`
	CreditAmount any `json:"credit_amount"`
	Price        any `json:"price"`
}

// DeleteResult reports how many rows a delete touched; 0 means no
// matching row existed.
type DeleteResult struct {
	Affected int64 `json:"affected"`
}
