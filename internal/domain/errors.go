package domain

import "errors"

// ErrNotFound indicates that the referenced record does not exist. Both
// store implementations report it for updates of absent products, including
// remote updates that affect zero rows.
var ErrNotFound = errors.New("product not found")
