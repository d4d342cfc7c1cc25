package sanction

import "errors"

var ErrSanctionNotFound = errors.New("sanction not found")
