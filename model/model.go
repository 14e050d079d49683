package model

import (
	"github.com/go-gota/gota/dataframe"
)

/*
DataStrategy is a single data preparation step.
It takes a data frame and returns either a transformed frame or a partition of it.
*/
type DataStrategy interface {
	HandleData(dataframe.DataFrame) (Result, error)
}

/*
Result is what a DataStrategy produces, it's a Frame or a *Partition
*/
type Result interface {
	// Len is the number of rows covered by the result
	Len() int
}

/*
Frame is a transformed data frame returned by a strategy
*/
type Frame struct {
	dataframe.DataFrame
}

func (f Frame) Len() int {
	return f.Nrow()
}
