// Package app wires a HAL to the orbit viewer and hands the runner a
// per-tick step function.
package app

import (
	"orbview/hal"
	"orbview/view"
)

// New builds the viewer on the given HAL with default options.
func New(h hal.HAL) func() error {
	return NewWithOptions(h, view.Options{})
}

// NewWithOptions builds the viewer with explicit scene options. The
// returned step renders one frame per call.
func NewWithOptions(h hal.HAL, opts view.Options) func() error {
	v := view.New(h, opts)
	return v.Step
}
