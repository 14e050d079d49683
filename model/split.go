package model

import (
	"math"

	"github.com/go-gota/gota/dataframe"
	"go-ml.dev/pkg/prep/fu"
	"go-ml.dev/pkg/prep/logger"
	"go-ml.dev/pkg/prep/tables"
	"golang.org/x/exp/rand"
	"golang.org/x/xerrors"
)

const (
	DefaultTarget   = "charges"
	DefaultTestSize = 0.2
	DefaultSeed     = 42
)

/*
DefaultFeatures are the columns SplitData uses as features
*/
var DefaultFeatures = []string{"smoker", "age", "bmi"}

/*
SplitData partitions features and target into train and test subsets
with a seeded permutation of rows. Zero fields mean defaults.
*/
type SplitData struct {
	Target   string
	Features []string
	TestSize float64 // fraction of rows going to the test subset
	Seed     int64
	Logger   logger.Logger
}

func (s SplitData) HandleData(df dataframe.DataFrame) (Result, error) {
	p, err := s.Split(df)
	if err != nil {
		return nil, err
	}
	return p, nil
}

/*
Split returns the partition of the frame.
Failures are logged once and returned as *PartitionError.
*/
func (s SplitData) Split(df dataframe.DataFrame) (*Partition, error) {
	p, err := s.split(df)
	if err != nil {
		logger.Or(s.Logger).Error("error in splitting data", "op", "split", "error", err.Error())
		return nil, &PartitionError{Op: "split", Err: err}
	}
	return p, nil
}

func (s SplitData) features() []string {
	if len(s.Features) == 0 {
		return DefaultFeatures
	}
	return s.Features
}

/*
TestRows returns the number of test rows for a frame of n rows, ceil(n*TestSize)
*/
func (s SplitData) TestRows(n int) int {
	return int(math.Ceil(fu.Fnzf(s.TestSize, DefaultTestSize) * float64(n)))
}

/*
Permutation returns the seeded permutation of n row positions the split is made of
*/
func (s SplitData) Permutation(n int) []int {
	return rand.New(rand.NewSource(uint64(fu.Fnzl(s.Seed, DefaultSeed)))).Perm(n)
}

func (s SplitData) split(df dataframe.DataFrame) (*Partition, error) {
	target := fu.Fnzs(s.Target, DefaultTarget)
	features := s.features()
	if err := tables.RequireColumns(df, target); err != nil {
		return nil, err
	}
	if err := tables.RequireColumns(df, features...); err != nil {
		return nil, err
	}
	n := df.Nrow()
	ntest := s.TestRows(n)
	if ntest < 1 || ntest >= n {
		return nil, xerrors.Errorf("%d rows give %d test rows: %w", n, ntest, ErrInsufficientRows)
	}
	perm := s.Permutation(n)
	p := &Partition{TestIndex: perm[:ntest], TrainIndex: perm[ntest:]}
	x := df.Select(features)
	if err := x.Error(); err != nil {
		return nil, err
	}
	y := df.Col(target)
	p.XTrain = tables.Take(x, p.TrainIndex)
	p.XTest = tables.Take(x, p.TestIndex)
	p.YTrain = tables.TakeSeries(y, p.TrainIndex)
	p.YTest = tables.TakeSeries(y, p.TestIndex)
	for _, f := range []dataframe.DataFrame{p.XTrain, p.XTest} {
		if err := f.Error(); err != nil {
			return nil, err
		}
	}
	return p, nil
}
