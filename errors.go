package datasheet

import "errors"

// Errors are wrapped with details about the offending option or element, use errors.Is to test for them.
var (
	// ErrConfiguration is returned for missing or invalid options.
	ErrConfiguration = errors.New("configuration error")

	// ErrCalibration is returned when a calibration rectangle cannot be turned into a transform, or when no
	// rectangle is available for a curve.
	ErrCalibration = errors.New("calibration error")

	// ErrSampling is returned when a curve cannot be sampled by arc length.
	ErrSampling = errors.New("sampling error")

	// ErrIndex is returned for an out-of-range curve index.
	ErrIndex = errors.New("curve index out of range")
)
