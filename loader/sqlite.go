package loader

import (
	"context"
	"database/sql"
	"strings"

	"github.com/go-gota/gota/dataframe"
	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/xerrors"
)

func quote(ident string) string {
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}

/*
LoadSQLite reads a whole table of a SQLite database.
Values are read as text and typed the same way as CSV columns, NULL becomes NaN.
*/
func LoadSQLite(ctx context.Context, path, table string) (dataframe.DataFrame, error) {
	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		return dataframe.DataFrame{}, xerrors.Errorf("failed to open %s: %w", path, err)
	}
	defer db.Close()
	return QueryTable(ctx, db, table)
}

/*
QueryTable reads a whole table through an open database handle
*/
func QueryTable(ctx context.Context, db *sql.DB, table string) (dataframe.DataFrame, error) {
	rows, err := db.QueryContext(ctx, "SELECT * FROM "+quote(table))
	if err != nil {
		return dataframe.DataFrame{}, xerrors.Errorf("failed to query %s: %w", table, err)
	}
	defer rows.Close()
	names, err := rows.Columns()
	if err != nil {
		return dataframe.DataFrame{}, xerrors.Errorf("failed to get columns of %s: %w", table, err)
	}
	records := [][]string{names}
	values := make([]sql.NullString, len(names))
	ptrs := make([]any, len(names))
	for i := range values {
		ptrs[i] = &values[i]
	}
	for rows.Next() {
		if err = rows.Scan(ptrs...); err != nil {
			return dataframe.DataFrame{}, xerrors.Errorf("failed to scan %s: %w", table, err)
		}
		rec := make([]string, len(names))
		for i, v := range values {
			if v.Valid {
				rec[i] = v.String
			} else {
				rec[i] = "NaN"
			}
		}
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return dataframe.DataFrame{}, xerrors.Errorf("failed to read %s: %w", table, err)
	}
	df := dataframe.LoadRecords(records, dataframe.HasHeader(true), dataframe.DetectTypes(true))
	if err = df.Error(); err != nil {
		return df, xerrors.Errorf("failed to load %s: %w", table, err)
	}
	return df, nil
}
