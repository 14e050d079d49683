package model

import (
	"github.com/go-gota/gota/dataframe"
	"go-ml.dev/pkg/prep/logger"
	"go-ml.dev/pkg/zorros"
)

/*
Pipeline runs data strategies one after another.
A Frame result feeds the next step, a *Partition result completes the run.
*/
type Pipeline struct {
	Steps  []DataStrategy
	Logger logger.Logger // progress messages, the process-wide logger if nil
}

/*
Report is the outcome of a pipeline run
*/
type Report struct {
	Rows      int        // rows of the source frame
	Columns   []string   // columns of the last frame before the split
	Partition *Partition // nil if no step partitioned the data
	Frame     Frame      // the last frame
}

/*
NewPipeline returns the default pipeline, cleaning followed by splitting
*/
func NewPipeline(clean CleanData, split SplitData) Pipeline {
	return Pipeline{Steps: []DataStrategy{clean, split}}
}

/*
Run executes the steps. Step errors are returned unchanged, steps log them by themselves.
*/
func (p Pipeline) Run(df dataframe.DataFrame) (*Report, error) {
	log := logger.Or(p.Logger)
	report := &Report{Rows: df.Nrow(), Frame: Frame{df}, Columns: df.Names()}
	for i, step := range p.Steps {
		if report.Partition != nil {
			return nil, zorros.Errorf("step %d follows a partitioning step", i)
		}
		r, err := step.HandleData(report.Frame.DataFrame)
		if err != nil {
			return nil, err
		}
		switch x := r.(type) {
		case Frame:
			report.Frame = x
			report.Columns = x.Names()
			log.Debug("frame transformed", "step", i, "rows", x.Nrow(), "columns", x.Ncol())
		case *Partition:
			report.Partition = x
			log.Debug("frame partitioned", "step", i, "train", len(x.TrainIndex), "test", len(x.TestIndex))
		default:
			return nil, zorros.Errorf("step %d returned unsupported result %T", i, r)
		}
	}
	return report, nil
}
