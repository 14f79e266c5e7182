// Package gateway wraps the external payment processor. Services talk to the
// Gateway interface only; the Midtrans SDK stays behind it.
package gateway

// Item is one order line forwarded to the gateway.
type Item struct {
	ID    string
	Name  string
	Price int64
	Qty   int32
}

// ChargeRequest describes one payment attempt. OrderRef must be unique per
// attempt (tracking code + timestamp suffix), not per order.
type ChargeRequest struct {
	OrderRef     string
	GrossAmount  int64
	CustomerName string
	PaymentType  string
	Items        []Item
}

// Session is the payable reference handed back to the customer.
type Session struct {
	Token       string
	RedirectURL string
}

type Gateway interface {
	CreateTransaction(req *ChargeRequest) (*Session, error)
	// CheckTransaction returns the gateway's transaction_status and
	// fraud_status strings for a previously created charge. A capture is only
	// money in the bank when fraud_status is "accept".
	CheckTransaction(orderRef string) (status, fraudStatus string, err error)
}
