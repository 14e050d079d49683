/*
Package stats reports how the numeric columns of a frame relate to the target.
CleanData's drop list is chosen from this report.
*/
package stats

import (
	"math"
	"sort"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"go-ml.dev/pkg/prep/tables"
	"go-ml.dev/pkg/zorros"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

/*
Correlation of one column with the target
*/
type Correlation struct {
	Column string
	R      float64 // Pearson correlation coefficient
	Mean   float64
	StdDev float64
}

func numericColumns(df dataframe.DataFrame) []string {
	r := []string{}
	for _, n := range df.Names() {
		t := df.Col(n).Type()
		if t == series.Int || t == series.Float || t == series.Bool {
			r = append(r, n)
		}
	}
	return r
}

/*
Correlations returns the correlation of every other numeric column with the target,
strongest first. Constant columns have R = 0.
*/
func Correlations(df dataframe.DataFrame, target string) ([]Correlation, error) {
	if err := tables.RequireColumns(df, target); err != nil {
		return nil, err
	}
	ts := df.Col(target)
	if t := ts.Type(); t != series.Int && t != series.Float {
		return nil, zorros.Errorf("target `%s` is not numeric", target)
	}
	y := ts.Float()
	r := []Correlation{}
	for _, n := range numericColumns(df) {
		if n == target {
			continue
		}
		x := df.Col(n).Float()
		mean, std := stat.MeanStdDev(x, nil)
		c := Correlation{Column: n, Mean: mean, StdDev: std}
		if std > 0 {
			c.R = stat.Correlation(x, y, nil)
		}
		r = append(r, c)
	}
	sort.SliceStable(r, func(i, j int) bool { return math.Abs(r[i].R) > math.Abs(r[j].R) })
	return r, nil
}

/*
Matrix returns the correlation matrix of the numeric columns and their names
*/
func Matrix(df dataframe.DataFrame) (*mat.SymDense, []string, error) {
	names := numericColumns(df)
	if len(names) == 0 || df.Nrow() < 2 {
		return nil, nil, zorros.Errorf("no numeric data to correlate")
	}
	x := mat.NewDense(df.Nrow(), len(names), nil)
	for j, n := range names {
		x.SetCol(j, df.Col(n).Float())
	}
	c := mat.NewSymDense(len(names), nil)
	stat.CorrelationMatrix(c, x, nil)
	return c, names, nil
}

/*
Weak returns the columns whose absolute correlation with the target is below threshold
*/
func Weak(cs []Correlation, threshold float64) []string {
	r := []string{}
	for _, c := range cs {
		if math.Abs(c.R) < threshold {
			r = append(r, c.Column)
		}
	}
	return r
}
