package model

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

var regions = []string{"northeast", "southwest", "southeast", "northwest"}

// insurance returns n rows shaped like the insurance dataset
func insurance(n int) dataframe.DataFrame {
	age := make([]int, n)
	sex := make([]string, n)
	bmi := make([]float64, n)
	children := make([]int, n)
	smoker := make([]string, n)
	region := make([]string, n)
	charges := make([]float64, n)
	for i := 0; i < n; i++ {
		age[i] = 18 + (i*7)%47
		sex[i] = []string{"female", "male"}[i%2]
		bmi[i] = 20 + float64(i%15)
		children[i] = i % 4
		smoker[i] = []string{"yes", "no", "no"}[i%3]
		region[i] = regions[i%4]
		charges[i] = 1000 + float64(i)*100.5
		if smoker[i] == "yes" {
			charges[i] += 20000
		}
	}
	return dataframe.New(
		series.New(age, series.Int, "age"),
		series.New(sex, series.String, "sex"),
		series.New(bmi, series.Float, "bmi"),
		series.New(children, series.Int, "children"),
		series.New(smoker, series.String, "smoker"),
		series.New(region, series.String, "region"),
		series.New(charges, series.Float, "charges"),
	)
}

// five is the five rows scenario with every region and both smoker values
func five() dataframe.DataFrame {
	return dataframe.New(
		series.New([]int{19, 18, 28, 33, 32}, series.Int, "age"),
		series.New([]string{"female", "male", "male", "male", "female"}, series.String, "sex"),
		series.New([]float64{27.9, 33.77, 33.0, 22.705, 28.88}, series.Float, "bmi"),
		series.New([]int{0, 1, 3, 0, 0}, series.Int, "children"),
		series.New([]string{"yes", "no", "yes", "no", "no"}, series.String, "smoker"),
		series.New([]string{"northeast", "southwest", "southeast", "northwest", "northeast"}, series.String, "region"),
		series.New([]float64{16884.924, 1725.5523, 4449.462, 21984.47061, 3866.8552}, series.Float, "charges"),
	)
}

func without(df dataframe.DataFrame, column string) dataframe.DataFrame {
	r := df.Drop([]string{column})
	if r.Err != nil {
		panic(fmt.Sprint(r.Err))
	}
	return r
}
