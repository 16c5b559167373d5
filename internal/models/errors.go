package models

import "errors"

var ErrAccountNotFound = errors.New("account does not exist")
var ErrInvalidTransactionType = errors.New("transaction type must be D or W")
