package pool

import "errors"

// ErrInvalidExponent indicates a pool index outside [0, maxExponent].
// No function returns it: Take, Return, EnsureCount and Outstanding
// panic with it as the panic value.
var ErrInvalidExponent = errors.New("pool: exponent out of range")
