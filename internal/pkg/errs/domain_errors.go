package errs

import "errors"

// ErrInvariantViolation marks programming errors in lot state handling.
// Business outcomes (lot full, not found, duplicates) belong to the domain
// and usecase packages that produce them; this one is never surfaced as a
// business outcome.
var ErrInvariantViolation = errors.New("lot state invariant violated")
