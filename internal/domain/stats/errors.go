package stats

import "errors"

// ErrInvalidPeriod is returned when a period ends before it starts
var ErrInvalidPeriod = errors.New("period end is before period start")
