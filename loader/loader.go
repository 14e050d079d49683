/*
Package loader reads datasets into data frames and writes prepared partitions back.
*/
package loader

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/ulikunitz/xz"
	"go-ml.dev/pkg/prep/fu"
	"go-ml.dev/pkg/prep/model"
	"golang.org/x/xerrors"
)

/*
ReadCSV reads a CSV document with a header row, column types are detected
*/
func ReadCSV(r io.Reader) (dataframe.DataFrame, error) {
	df := dataframe.ReadCSV(r, dataframe.HasHeader(true), dataframe.DetectTypes(true))
	if err := df.Error(); err != nil {
		return df, xerrors.Errorf("failed to read csv: %w", err)
	}
	return df, nil
}

/*
LoadFile reads a .csv or .csv.xz file.
Relative paths missing in the working directory are looked up in the datasets cache.
*/
func LoadFile(path string) (dataframe.DataFrame, error) {
	path = fu.DatasetPath(path)
	f, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, xerrors.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()
	var rd io.Reader = bufio.NewReader(f)
	if strings.HasSuffix(path, ".xz") {
		if rd, err = xz.NewReader(rd); err != nil {
			return dataframe.DataFrame{}, xerrors.Errorf("failed to decompress %s: %w", path, err)
		}
	}
	return ReadCSV(rd)
}

/*
WriteCSV writes the frame with a header row to the file, creating the directory if needed
*/
func WriteCSV(path string, df dataframe.DataFrame) (err error) {
	if err = os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return xerrors.Errorf("failed to create directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return xerrors.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if e := f.Close(); e != nil && err == nil {
			err = xerrors.Errorf("failed to close %s: %w", path, e)
		}
	}()
	w := bufio.NewWriter(f)
	if err = df.WriteCSV(w); err != nil {
		return xerrors.Errorf("failed to write %s: %w", path, err)
	}
	return w.Flush()
}

/*
PartitionFiles are the file names WritePartition writes, in X_train, X_test, y_train, y_test order
*/
var PartitionFiles = [4]string{"X_train.csv", "X_test.csv", "y_train.csv", "y_test.csv"}

/*
WritePartition writes the four subsets of the partition into dir
*/
func WritePartition(dir string, p *model.Partition) error {
	xTrain, xTest, yTrain, yTest := p.Unpack()
	frames := [4]dataframe.DataFrame{xTrain, xTest, column(yTrain), column(yTest)}
	for i, df := range frames {
		if err := WriteCSV(filepath.Join(dir, PartitionFiles[i]), df); err != nil {
			return err
		}
	}
	return nil
}

func column(s series.Series) dataframe.DataFrame {
	return dataframe.New(s)
}
