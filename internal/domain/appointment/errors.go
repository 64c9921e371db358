package appointment

import "errors"

// ErrClientNotFound: id inexistente na lista da manicure logada
var ErrClientNotFound = errors.New("client not found")
