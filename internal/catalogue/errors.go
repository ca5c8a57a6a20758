package catalogue

import "errors"

var (
	ErrInvalidHours    = errors.New("catalogue: invalid hour range")
	ErrInvalidInterval = errors.New("catalogue: invalid interval")
	ErrNoCarers        = errors.New("catalogue: no carers")
	ErrNoDates         = errors.New("catalogue: no dates")
	ErrInvalidCarerID  = errors.New("catalogue: invalid carer id")
	ErrInvalidDate     = errors.New("catalogue: invalid date")
)
