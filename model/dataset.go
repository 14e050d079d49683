package model

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"go-ml.dev/pkg/zorros"
	"gonum.org/v1/gonum/mat"
)

/*
Partition is a train/test split of a dataset's features and target.
The i-th row of XTrain corresponds to the i-th element of YTrain, the same for test.
*/
type Partition struct {
	XTrain, XTest dataframe.DataFrame
	YTrain, YTest series.Series
	TrainIndex    []int // positions of the training rows in the source frame
	TestIndex     []int // positions of the test rows in the source frame
}

func (p *Partition) Len() int {
	return len(p.TrainIndex) + len(p.TestIndex)
}

/*
Unpack returns X_train, X_test, y_train, y_test in this order
*/
func (p *Partition) Unpack() (dataframe.DataFrame, dataframe.DataFrame, series.Series, series.Series) {
	return p.XTrain, p.XTest, p.YTrain, p.YTest
}

/*
Matrices converts the partition to gonum matrices to feed a regression model.
All features and the target must be numeric.
*/
func (p *Partition) Matrices() (xTrain, xTest *mat.Dense, yTrain, yTest *mat.VecDense, err error) {
	if xTrain, err = dense(p.XTrain); err != nil {
		return
	}
	if xTest, err = dense(p.XTest); err != nil {
		return
	}
	if yTrain, err = vector(p.YTrain); err != nil {
		return
	}
	yTest, err = vector(p.YTest)
	return
}

func numeric(s series.Series) ([]float64, error) {
	if s.Type() != series.Int && s.Type() != series.Float && s.Type() != series.Bool {
		return nil, zorros.Errorf("column `%s` is not numeric but %v", s.Name, s.Type())
	}
	return s.Float(), nil
}

func dense(df dataframe.DataFrame) (*mat.Dense, error) {
	rows, cols := df.Dims()
	if rows == 0 || cols == 0 {
		return nil, zorros.Errorf("empty frame %dx%d", rows, cols)
	}
	m := mat.NewDense(rows, cols, nil)
	for j, name := range df.Names() {
		vals, err := numeric(df.Col(name))
		if err != nil {
			return nil, err
		}
		m.SetCol(j, vals)
	}
	return m, nil
}

func vector(s series.Series) (*mat.VecDense, error) {
	if s.Len() == 0 {
		return nil, zorros.Errorf("empty target `%s`", s.Name)
	}
	vals, err := numeric(s)
	if err != nil {
		return nil, err
	}
	return mat.NewVecDense(len(vals), vals), nil
}
