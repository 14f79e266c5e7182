package gateway

import (
	"errors"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/midtrans/midtrans-go/snap"
)

// customer email sent with every charge; the kiosk flow never collects one
const defaultCustomerEmail = "customer@esbar.com"

type Midtrans struct {
	snap snap.Client
	core coreapi.Client
}

func NewMidtrans(serverKey string, production bool) *Midtrans {
	env := midtrans.Sandbox
	if production {
		env = midtrans.Production
	}
	m := &Midtrans{}
	m.snap.New(serverKey, env)
	m.core.New(serverKey, env)
	return m
}

func (m *Midtrans) CreateTransaction(req *ChargeRequest) (*Session, error) {
	items := make([]midtrans.ItemDetails, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, midtrans.ItemDetails{
			ID:    it.ID,
			Name:  it.Name,
			Price: it.Price,
			Qty:   it.Qty,
		})
	}

	sr := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  req.OrderRef,
			GrossAmt: req.GrossAmount,
		},
		Items: &items,
		CustomerDetail: &midtrans.CustomerDetails{
			FName: req.CustomerName,
			Email: defaultCustomerEmail,
		},
		EnabledPayments: []snap.SnapPaymentType{snap.SnapPaymentType(req.PaymentType)},
	}

	res, err := m.snap.CreateTransaction(sr)
	if err != nil {
		return nil, err
	}
	return &Session{Token: res.Token, RedirectURL: res.RedirectURL}, nil
}

func (m *Midtrans) CheckTransaction(orderRef string) (string, string, error) {
	res, err := m.core.CheckTransaction(orderRef)
	if err != nil {
		return "", "", err
	}
	if res == nil {
		return "", "", errors.New("empty status response")
	}
	return res.TransactionStatus, res.FraudStatus, nil
}
