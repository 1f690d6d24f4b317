package ir

import (
	"errors"
)

var (
	ErrJSON     = errors.New("json error")
	ErrCurrency = errors.New("bad currency")
)

func badAccess(method string, n *Node) {
	panic("ir: " + method + " called on " + n.Type().String() + " node")
}
