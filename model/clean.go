package model

import (
	"github.com/go-gota/gota/dataframe"
	"go-ml.dev/pkg/prep/logger"
	"go-ml.dev/pkg/prep/tables"
)

/*
CleanColumns are the columns CleanData requires to be present
*/
var CleanColumns = []string{"sex", "smoker", "region", "children"}

/*
DefaultDrop are the columns CleanData removes after encoding.
The region indicators, sex and children are weakly correlated with charges.
*/
var DefaultDrop = []string{
	"region_southeast", "region_southwest", "region_northeast", "region_northwest",
	"children", "sex",
}

/*
CleanData label-encodes sex and smoker, one-hot encodes region
and drops the weakly correlated columns
*/
type CleanData struct {
	Drop   []string      // columns to drop after encoding, DefaultDrop if nil
	Logger logger.Logger // the process-wide logger if nil
}

func (c CleanData) HandleData(df dataframe.DataFrame) (Result, error) {
	r, err := c.Clean(df)
	if err != nil {
		return nil, err
	}
	return Frame{r}, nil
}

/*
Clean returns a new frame, the source frame is left as is.
Failures are logged once and returned as *TransformationError.
*/
func (c CleanData) Clean(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	r, err := c.clean(df)
	if err != nil {
		logger.Or(c.Logger).Error("error in cleaning data", "op", "clean", "error", err.Error())
		return dataframe.DataFrame{}, &TransformationError{Op: "clean", Err: err}
	}
	return r, nil
}

func (c CleanData) clean(df dataframe.DataFrame) (r dataframe.DataFrame, err error) {
	if err = tables.RequireColumns(df, CleanColumns...); err != nil {
		return
	}
	sex, _ := tables.LabelEncode(df.Col("sex"))
	smoker, _ := tables.LabelEncode(df.Col("smoker"))
	r = df.Mutate(sex).Mutate(smoker)
	if err = r.Error(); err != nil {
		return
	}
	if r, err = tables.OneHot(r, "region", "region"); err != nil {
		return
	}
	drop := c.Drop
	if drop == nil {
		drop = DefaultDrop
	}
	return tables.DropIfExists(r, drop...)
}
