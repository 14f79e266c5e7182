package services

import "errors"

// Sentinel errors. Controllers map these to HTTP statuses and the localized
// customer-facing copy; services never format user messages.
var (
	ErrNotFound        = errors.New("not found")
	ErrSessionRequired = errors.New("session required")

	// cart
	ErrItemUnavailable = errors.New("menu item unavailable")

	// checkout
	ErrEmptyCart               = errors.New("cart is empty")
	ErrCodeGenerationExhausted = errors.New("tracking code generation exhausted")
	ErrOrderCreationFailed     = errors.New("order creation failed")

	// order workflow
	ErrInvalidTransition = errors.New("invalid status transition")

	// payments
	ErrAlreadyPaid       = errors.New("order already paid")
	ErrOrderCancelled    = errors.New("order cancelled")
	ErrPaymentNotCreated = errors.New("payment not created for order")
	ErrInvalidSignature  = errors.New("invalid webhook signature")
	ErrUpstream          = errors.New("payment gateway error")

	// tables / menus
	ErrTableHasActiveOrders = errors.New("table has active orders")
	ErrDuplicateName        = errors.New("name already taken")

	// auth
	ErrInvalidCredentials = errors.New("invalid credentials")
)
