// Package payments wraps the hosted-checkout provider. Services depend on
// the CheckoutProvider interface so tests can substitute a stub.
package payments

import "context"

type LineItem struct {
	Name       string
	ImageURL   string
	UnitAmount int64 // minor currency units
	Quantity   int64
	Currency   string
}

type SessionParams struct {
	LineItems  []LineItem
	SuccessURL string
	CancelURL  string
	// Metadata rides on the session so the completion webhook can finalize
	// the right order without re-deriving anything.
	Metadata map[string]string
}

type Session struct {
	ID  string
	URL string
}

type CheckoutProvider interface {
	CreateSession(ctx context.Context, params *SessionParams) (*Session, error)
}
