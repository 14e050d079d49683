/*
Package tables holds the column level primitives the data strategies are made of.
All functions work on gota data frames and never mutate their arguments.
*/
package tables

import (
	"math"
	"sort"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"go-ml.dev/pkg/zorros"
	"golang.org/x/xerrors"
)

/*
ErrMissingColumn is matched by errors.Is for every error reporting an absent column
*/
var ErrMissingColumn = xerrors.New("missing column")

/*
HasColumn reports whether the frame has a column with the given name
*/
func HasColumn(df dataframe.DataFrame, name string) bool {
	for _, n := range df.Names() {
		if n == name {
			return true
		}
	}
	return false
}

/*
RequireColumns returns an error naming the first absent column
*/
func RequireColumns(df dataframe.DataFrame, names ...string) error {
	for _, n := range names {
		if !HasColumn(df, n) {
			return xerrors.Errorf("column `%s`: %w", n, ErrMissingColumn)
		}
	}
	return nil
}

/*
DropIfExists removes the named columns which are present in the frame.
Absent names are skipped silently.
*/
func DropIfExists(df dataframe.DataFrame, names ...string) (dataframe.DataFrame, error) {
	present := make([]string, 0, len(names))
	for _, n := range names {
		if HasColumn(df, n) {
			present = append(present, n)
		}
	}
	if len(present) == 0 {
		return df, nil
	}
	r := df.Drop(present)
	if err := r.Error(); err != nil {
		return r, zorros.Wrapf(err, "failed to drop columns %v: %v", present, err.Error())
	}
	return r, nil
}

/*
Classes returns the distinct values of the series in sorted order.
Numeric series are ordered by value with NaN last, everything else lexicographically.
*/
func Classes(s series.Series) []string {
	seen := map[string]struct{}{}
	classes := []string{}
	for _, v := range s.Records() {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			classes = append(classes, v)
		}
	}
	if s.Type() == series.Int || s.Type() == series.Float {
		sort.Slice(classes, func(i, j int) bool {
			a, _ := strconv.ParseFloat(classes[i], 64)
			b, _ := strconv.ParseFloat(classes[j], 64)
			if math.IsNaN(a) || math.IsNaN(b) {
				return !math.IsNaN(a) && math.IsNaN(b)
			}
			return a < b
		})
	} else {
		sort.Strings(classes)
	}
	return classes
}

/*
LabelEncode maps every value of the series to the index of its class.
The mapping is derived from the values present in s and is not stable
between series with different class sets.
*/
func LabelEncode(s series.Series) (series.Series, []string) {
	classes := Classes(s)
	index := make(map[string]int, len(classes))
	for i, c := range classes {
		index[c] = i
	}
	records := s.Records()
	codes := make([]int, len(records))
	for i, v := range records {
		codes[i] = index[v]
	}
	return series.New(codes, series.Int, s.Name), classes
}

/*
OneHot expands the column into one 0/1 indicator column per distinct value,
named prefix_value, and removes the source column
*/
func OneHot(df dataframe.DataFrame, column, prefix string) (dataframe.DataFrame, error) {
	if err := RequireColumns(df, column); err != nil {
		return df, err
	}
	src := df.Col(column)
	records := src.Records()
	r := df.Drop([]string{column})
	for _, c := range Classes(src) {
		ind := make([]int, len(records))
		for i, v := range records {
			if v == c {
				ind[i] = 1
			}
		}
		r = r.Mutate(series.New(ind, series.Int, prefix+"_"+c))
	}
	if err := r.Error(); err != nil {
		return r, zorros.Wrapf(err, "failed to one-hot encode `%s`: %v", column, err.Error())
	}
	return r, nil
}

/*
Take returns the rows of the frame at the given positions, in that order
*/
func Take(df dataframe.DataFrame, idx []int) dataframe.DataFrame {
	return df.Subset(idx)
}

/*
TakeSeries returns the elements of the series at the given positions, in that order
*/
func TakeSeries(s series.Series, idx []int) series.Series {
	return s.Subset(idx)
}
