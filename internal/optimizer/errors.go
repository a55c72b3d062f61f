package optimizer

import "errors"

// ErrInvalidArgument is returned when the cargo volume or weight is zero or
// negative, carries more than MaxDecimalPlaces decimal places, or would need more
// than MaxUnitsPerType units of a container type.
var ErrInvalidArgument = errors.New("volume and weight must be positive")
