package tables

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"gotest.tools/assert"
)

func frame() dataframe.DataFrame {
	return dataframe.New(
		series.New([]string{"northeast", "southwest", "southeast", "northwest", "northeast"}, series.String, "region"),
		series.New([]string{"yes", "no", "yes", "no", "no"}, series.String, "smoker"),
		series.New([]int{19, 33, 45, 27, 61}, series.Int, "age"),
	)
}

func Test_RequireColumns(t *testing.T) {
	df := frame()
	assert.NilError(t, RequireColumns(df, "region", "age"))
	err := RequireColumns(df, "age", "charges", "bmi")
	assert.ErrorContains(t, err, "charges")
	assert.Assert(t, errors.Is(err, ErrMissingColumn))
}

func Test_DropIfExists(t *testing.T) {
	df := frame()
	r, err := DropIfExists(df, "region", "children", "region_south")
	assert.NilError(t, err)
	assert.DeepEqual(t, r.Names(), []string{"smoker", "age"})
	r, err = DropIfExists(r, "nothing")
	assert.NilError(t, err)
	assert.Equal(t, r.Ncol(), 2)
	assert.Equal(t, df.Ncol(), 3)
}

func Test_LabelEncode(t *testing.T) {
	s, classes := LabelEncode(frame().Col("smoker"))
	assert.DeepEqual(t, classes, []string{"no", "yes"})
	codes, err := s.Int()
	assert.NilError(t, err)
	assert.DeepEqual(t, codes, []int{1, 0, 1, 0, 0})
	assert.Equal(t, s.Name, "smoker")

	_, classes = LabelEncode(series.New([]int{10, 9, 100}, series.Int, "n"))
	assert.DeepEqual(t, classes, []string{"9", "10", "100"})
}

func Test_ClassesNaNLast(t *testing.T) {
	s := series.New([]float64{2.5, math.NaN(), 1, math.NaN(), 10}, series.Float, "bmi")
	classes := Classes(s)
	assert.Equal(t, len(classes), 4)
	rec := s.Records()
	assert.DeepEqual(t, classes, []string{rec[2], rec[0], rec[4], rec[1]})
	codes, _ := LabelEncode(s)
	ints, err := codes.Int()
	assert.NilError(t, err)
	assert.DeepEqual(t, ints, []int{1, 3, 0, 3, 2})
}

func Test_OneHot(t *testing.T) {
	r, err := OneHot(frame(), "region", "region")
	assert.NilError(t, err)
	assert.Assert(t, !HasColumn(r, "region"))
	assert.DeepEqual(t, r.Names(), []string{
		"smoker", "age",
		"region_northeast", "region_northwest", "region_southeast", "region_southwest"})
	ne, err := r.Col("region_northeast").Int()
	assert.NilError(t, err)
	assert.DeepEqual(t, ne, []int{1, 0, 0, 0, 1})

	_, err = OneHot(frame(), "sex", "sex")
	assert.Assert(t, errors.Is(err, ErrMissingColumn))
}

func Test_Take(t *testing.T) {
	df := frame()
	r := Take(df, []int{4, 0})
	assert.DeepEqual(t, r.Col("age").Records(), []string{"61", "19"})
	s := TakeSeries(df.Col("smoker"), []int{2, 1})
	assert.DeepEqual(t, s.Records(), []string{"yes", "no"})
}
