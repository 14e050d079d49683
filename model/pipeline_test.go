package model

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"go-ml.dev/pkg/prep/logger"
	"gotest.tools/assert"
)

func Test_PipelineRun(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewForTests(&buf)
	p := NewPipeline(CleanData{Logger: l}, SplitData{Logger: l})
	p.Logger = l
	report, err := p.Run(insurance(25))
	assert.NilError(t, err)
	assert.Equal(t, report.Rows, 25)
	assert.DeepEqual(t, report.Columns, []string{"age", "bmi", "smoker", "charges"})
	assert.Assert(t, report.Partition != nil)
	assert.Equal(t, report.Partition.XTest.Nrow(), 5)
	assert.Equal(t, report.Partition.XTrain.Nrow(), 20)
	assert.Assert(t, strings.Contains(buf.String(), "frame partitioned"))
}

func Test_PipelineMatchesSteps(t *testing.T) {
	df := insurance(30)
	report, err := NewPipeline(CleanData{}, SplitData{}).Run(df)
	assert.NilError(t, err)
	c, err := CleanData{}.Clean(df)
	assert.NilError(t, err)
	s, err := SplitData{}.Split(c)
	assert.NilError(t, err)
	assert.DeepEqual(t, report.Partition.TestIndex, s.TestIndex)
	assert.DeepEqual(t, report.Partition.YTrain.Records(), s.YTrain.Records())
}

func Test_PipelineLogsOnce(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewForTests(&buf)
	p := Pipeline{Steps: []DataStrategy{CleanData{Logger: l}, SplitData{Logger: l}}, Logger: l}
	_, err := p.Run(without(insurance(10), "charges"))
	var pe *PartitionError
	assert.Assert(t, errors.As(err, &pe))
	assert.Equal(t, strings.Count(buf.String(), "charges"), 1)
	assert.Equal(t, strings.Count(buf.String(), "error in"), 1)
}

type passthrough struct{}

func (passthrough) HandleData(df dataframe.DataFrame) (Result, error) {
	return Frame{df}, nil
}

func Test_PipelineAfterPartition(t *testing.T) {
	p := Pipeline{Steps: []DataStrategy{SplitData{}, passthrough{}}}
	_, err := p.Run(insurance(10))
	assert.ErrorContains(t, err, "follows a partitioning step")

	report, err := Pipeline{Steps: []DataStrategy{passthrough{}}}.Run(insurance(10))
	assert.NilError(t, err)
	assert.Assert(t, report.Partition == nil)
	assert.Equal(t, report.Frame.Len(), 10)
}
