package model

import (
	"go-ml.dev/pkg/prep/tables"
	"golang.org/x/xerrors"
)

/*
ErrMissingColumn is matched by errors.Is when a required column is absent
*/
var ErrMissingColumn = tables.ErrMissingColumn

/*
ErrInsufficientRows is matched by errors.Is when a frame is too short to be split
*/
var ErrInsufficientRows = xerrors.New("insufficient rows")

/*
TransformationError is returned by CleanData when encoding or dropping fails
*/
type TransformationError struct {
	Op  string
	Err error
}

func (e *TransformationError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *TransformationError) Unwrap() error {
	return e.Err
}

/*
PartitionError is returned by SplitData when the frame can't be partitioned
*/
type PartitionError struct {
	Op  string
	Err error
}

func (e *PartitionError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *PartitionError) Unwrap() error {
	return e.Err
}
