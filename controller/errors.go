package controller

import "errors"

var (
	ErrNilBody       = errors.New("controller: rigid body is nil")
	ErrNilSink       = errors.New("controller: animation parameter sink is nil")
	ErrNilProbe      = errors.New("controller: spatial probe is nil")
	ErrNilAnchor     = errors.New("controller: probe anchor is nil")
	ErrNilBindings   = errors.New("controller: input bindings are nil")
	ErrActive        = errors.New("controller: already active")
	ErrInvalidConfig = errors.New("controller: invalid config")
)
