package tripdata

import (
	"slices"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/pkg/errors"
)

// colRowID carries each row's position in the source file through filters
// and slices. It is hidden from Names and Records.
const colRowID = "_row"

// Table is a loaded trip log, or a filtered part of one.
type Table struct {
	frame dataframe.DataFrame
}

func newTable(frame dataframe.DataFrame) (*Table, error) {
	ids := make([]int, frame.Nrow())
	for i := range ids {
		ids[i] = i
	}
	frame = frame.Mutate(series.New(ids, series.Int, colRowID))
	if frame.Err != nil {
		return nil, errors.Wrap(frame.Err, "index rows")
	}
	return &Table{frame: frame}, nil
}

// Len is the number of rows in the table.
func (t *Table) Len() int {
	return t.frame.Nrow()
}

// RowIDs returns the source positions of the rows in the table.
func (t *Table) RowIDs() []int {
	ids, err := t.frame.Col(colRowID).Int()
	if err != nil {
		return nil
	}
	return ids
}

// Names lists the columns, source columns first.
func (t *Table) Names() []string {
	return slices.DeleteFunc(t.frame.Names(), func(name string) bool { return name == colRowID })
}

// Has reports whether the table carries column col. Schemas differ between
// cities, so callers check optional columns before reading them.
func (t *Table) Has(col string) bool {
	return col != colRowID && slices.Contains(t.frame.Names(), col)
}

// Column returns the raw cells of col, blanks included.
func (t *Table) Column(col string) ([]string, error) {
	if !t.Has(col) {
		return nil, errors.Errorf("no column %q", col)
	}
	return t.frame.Col(col).Records(), nil
}

// Complete returns the rows holding a value in every one of cols, limited to
// those columns.
func (t *Table) Complete(cols ...string) (dataframe.DataFrame, error) {
	frame := t.frame
	for _, col := range cols {
		if !t.Has(col) {
			return dataframe.DataFrame{}, errors.Errorf("no column %q", col)
		}
		if frame.Nrow() == 0 {
			continue
		}
		frame = frame.Filter(dataframe.F{Colname: col, Comparator: series.CompFunc, Comparando: present})
		if frame.Err != nil {
			return dataframe.DataFrame{}, errors.Wrapf(frame.Err, "drop blank %s", col)
		}
	}

	frame = frame.Select(append(slices.Clone(cols), colRowID))
	if frame.Err != nil {
		return dataframe.DataFrame{}, errors.Wrap(frame.Err, "select columns")
	}
	return frame, nil
}

func present(el series.Element) bool {
	return !el.IsNA() && !IsBlank(el.String())
}

// Values returns the non-blank cells of col.
func (t *Table) Values(col string) (series.Series, error) {
	frame, err := t.Complete(col)
	if err != nil {
		return series.Series{}, err
	}
	return frame.Col(col), nil
}

// Numbers returns the non-blank cells of col as floats. A cell that is not a
// number is ErrMalformedData.
func (t *Table) Numbers(col string) (series.Series, error) {
	frame, err := t.Complete(col)
	if err != nil {
		return series.Series{}, err
	}

	cells := frame.Col(col).Records()
	numbers := series.New(cells, series.Float, col)
	if bad := slices.Index(numbers.IsNaN(), true); bad >= 0 {
		ids, _ := frame.Col(colRowID).Int()
		return series.Series{}, errors.Wrapf(ErrMalformedData, "row %d: %s %q", ids[bad]+1, col, cells[bad])
	}
	return numbers, nil
}

// StartTimes parses the Start Time column.
func (t *Table) StartTimes() ([]time.Time, error) {
	cells, err := t.Column(ColStartTime)
	if err != nil {
		return nil, err
	}
	ids := t.RowIDs()
	out := make([]time.Time, len(cells))
	for i, c := range cells {
		ts, err := ParseTimestamp(c)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedData, "row %d: %v", ids[i]+1, err)
		}
		out[i] = ts
	}
	return out, nil
}

// Filter keeps the rows whose col cell satisfies keep.
func (t *Table) Filter(col string, keep func(cell string) bool) (*Table, error) {
	if !t.Has(col) {
		return nil, errors.Errorf("no column %q", col)
	}
	if t.Len() == 0 {
		return t, nil
	}

	frame := t.frame.Filter(dataframe.F{
		Colname:    col,
		Comparator: series.CompFunc,
		Comparando: func(el series.Element) bool { return keep(el.String()) },
	})
	if frame.Err != nil {
		return nil, errors.Wrapf(frame.Err, "filter %s", col)
	}
	return &Table{frame: frame}, nil
}

// Slice returns rows [from, to) of the table, clamped to its bounds.
func (t *Table) Slice(from, to int) *Table {
	n := t.Len()
	from = max(0, min(from, n))
	to = max(from, min(to, n))

	idx := make([]int, 0, to-from)
	for i := from; i < to; i++ {
		idx = append(idx, i)
	}
	return &Table{frame: t.frame.Subset(idx)}
}

// Records returns the header followed by one record per row.
func (t *Table) Records() [][]string {
	return t.frame.Drop(colRowID).Records()
}
