package rangeloop

import "github.com/pkg/errors"

// ErrNoLoopRange is the panic value (with stack) when a loop without a range
// expression is analysed. This is a caller error, not a diagnostic.
var ErrNoLoopRange = errors.New("for loop has no range expression")
