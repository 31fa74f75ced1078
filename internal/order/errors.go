package order

import "errors"

var (
	ErrEmptyCart = errors.New("cart is empty, nothing to checkout")
	ErrNoAddress = errors.New("no shipping address selected")
)
