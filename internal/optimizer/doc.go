// Package optimizer decides how a shipment of a given volume and weight should
// travel: consolidated as LCL, or packed into one or more full containers from
// the containers catalog. All arithmetic is performed on fixed-precision
// decimals. The package performs no I/O and holds no mutable state, so an
// Optimizer may be shared freely between goroutines.
package optimizer
