package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable() *Table {
	t := NewTable([]string{"Game", "peak_ccu"})
	t.Append(Row{"Game": "A", "peak_ccu": "10"})
	t.Append(Row{"Game": "B", "peak_ccu": "20"})
	return t
}

func TestTableCloneIsIndependent(t *testing.T) {
	orig := sampleTable()
	clone := orig.Clone()

	clone.RenameColumn("Game", "game")
	clone.Rows[0]["peak_ccu"] = "99"

	assert.Equal(t, []string{"Game", "peak_ccu"}, orig.Columns)
	assert.Equal(t, "10", orig.Rows[0]["peak_ccu"])
	assert.Equal(t, "A", orig.Rows[0]["Game"])
	assert.Equal(t, "A", clone.Rows[0]["game"])
	_, stale := clone.Rows[0]["Game"]
	assert.False(t, stale)
}

func TestTableRenameMissingColumnIsNoop(t *testing.T) {
	tbl := sampleTable()
	tbl.RenameColumn("nope", "other")
	assert.Equal(t, []string{"Game", "peak_ccu"}, tbl.Columns)
}

func TestTableFilter(t *testing.T) {
	tbl := sampleTable()
	out := tbl.Filter(func(r Row) bool { return r["Game"] != "A" })

	require.Equal(t, 1, out.Len())
	assert.Equal(t, "B", out.Rows[0]["Game"])
	assert.Equal(t, 2, tbl.Len())
}

func TestTableSetColumn(t *testing.T) {
	tbl := sampleTable()
	err := tbl.SetColumn("double", func(r Row) (string, error) {
		return r["peak_ccu"] + r["peak_ccu"], nil
	})
	require.NoError(t, err)
	assert.True(t, tbl.HasColumn("double"))
	assert.Equal(t, "1010", tbl.Rows[0]["double"])

	boom := errors.New("boom")
	err = tbl.SetColumn("bad", func(Row) (string, error) { return "", boom })
	assert.ErrorIs(t, err, boom)
	assert.False(t, tbl.HasColumn("bad"))
}

func TestSalesRecordsFromTable(t *testing.T) {
	tbl := NewTable([]string{"game", "date", "est_sales_x30"})
	tbl.Append(Row{"game": "A", "date": "2021-02-01", "est_sales_x30": "3000"})
	tbl.Append(Row{"game": "B", "date": "", "est_sales_x30": "1.5"})

	records, err := SalesRecordsFromTable(tbl)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, SalesRecord{Game: "A", Date: time.Date(2021, 2, 1, 0, 0, 0, 0, time.UTC), EstSalesX30: 3000}, records[0])
	assert.True(t, records[1].Date.IsZero())
	assert.Equal(t, 1.5, records[1].EstSalesX30)
}

func TestCCURecordsFromTableRejectsBadNumber(t *testing.T) {
	tbl := NewTable([]string{"game", "peak_ccu"})
	tbl.Append(Row{"game": "A", "peak_ccu": "lots"})

	_, err := CCURecordsFromTable(tbl)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 1")
	assert.Contains(t, err.Error(), "peak_ccu")
}

func TestCCURecordsFromTableTruncatesFloats(t *testing.T) {
	tbl := NewTable([]string{"game", "peak_ccu", "date"})
	tbl.Append(Row{"game": "A", "peak_ccu": "1234.0", "date": "2020-12-01"})

	records, err := CCURecordsFromTable(tbl)
	require.NoError(t, err)
	assert.Equal(t, int64(1234), records[0].PeakCCU)
}

func TestRecordsFromTableRejectMissingColumns(t *testing.T) {
	tests := []struct {
		name    string
		columns []string
		convert func(*Table) error
		missing string
	}{
		{
			name:    "ccu without peak_ccu",
			columns: []string{"game", "date", "ccu"},
			convert: func(t *Table) error { _, err := CCURecordsFromTable(t); return err },
			missing: "peak_ccu",
		},
		{
			name:    "ccu without game",
			columns: []string{"title", "date", "peak_ccu"},
			convert: func(t *Table) error { _, err := CCURecordsFromTable(t); return err },
			missing: "game",
		},
		{
			name:    "sales without est_sales_x30",
			columns: []string{"game", "date", "positive_reviews"},
			convert: func(t *Table) error { _, err := SalesRecordsFromTable(t); return err },
			missing: "est_sales_x30",
		},
		{
			name:    "sales without game",
			columns: []string{"title", "date", "est_sales_x30"},
			convert: func(t *Table) error { _, err := SalesRecordsFromTable(t); return err },
			missing: "game",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := NewTable(tt.columns)
			row := Row{}
			for _, c := range tt.columns {
				row[c] = "1"
			}
			tbl.Append(row)

			err := tt.convert(tbl)
			require.ErrorIs(t, err, ErrMissingColumn)
			assert.Contains(t, err.Error(), tt.missing)
		})
	}
}

func TestRecordsFromEmptyTableStillNeedColumns(t *testing.T) {
	_, err := CCURecordsFromTable(NewTable(nil))
	assert.ErrorIs(t, err, ErrMissingColumn)

	records, err := SalesRecordsFromTable(NewTable([]string{"game", "est_sales_x30"}))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "4500", FormatNumber(4500))
	assert.Equal(t, "0.0225", FormatNumber(0.0225))
}
