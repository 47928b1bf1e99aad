package domain

import "errors"

// ErrOversizedDisk is returned when a disk would be placed on a smaller (or equal) one.
var ErrOversizedDisk = errors.New("disk is too big")

// ErrIndexOutOfBounds is returned when a peg index is outside [0, PegCount).
var ErrIndexOutOfBounds = errors.New("peg index out of bounds")

// ErrMissingDisk is returned when a player takes from a peg that turned out empty.
var ErrMissingDisk = errors.New("no disk")

// ErrInvalidDiskCount is returned when a board is requested with a negative number of disks.
var ErrInvalidDiskCount = errors.New("invalid disk count")
