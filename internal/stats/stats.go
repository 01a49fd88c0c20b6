// Package stats implements the column reductions the reports are built
// from. Grouping, counting and the numeric reductions are done by the
// dataframe library; ties between equally frequent values are broken toward
// the lowest value so results never depend on row order.
package stats

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// ErrEmpty is returned by reductions that are undefined over zero values.
var ErrEmpty = errors.New("stats: no values")

// Count pairs a value, as printed, with the number of rows holding it.
type Count struct {
	Value string
	N     int
}

// ValueCounts tallies the values of s, most frequent first and ascending by
// value among equal counts. Callers drop missing values beforehand.
func ValueCounts(s series.Series) ([]Count, error) {
	if s.Len() == 0 {
		return nil, nil
	}
	if s.Name == "" {
		s.Name = "value"
	}

	groups, err := groupCounts(dataframe.New(s), s.Name)
	if err != nil {
		return nil, err
	}
	counts := make([]Count, len(groups))
	for i, g := range groups {
		counts[i] = Count{Value: g.keys[0], N: g.n}
	}
	return counts, nil
}

// Mode returns the most frequent value of s.
func Mode(s series.Series) (Count, error) {
	counts, err := ValueCounts(s)
	if err != nil {
		return Count{}, err
	}
	if len(counts) == 0 {
		return Count{}, ErrEmpty
	}
	return counts[0], nil
}

// Pair is an ordered (start, end) station combination.
type Pair struct {
	Start string
	End   string
}

// PairMode groups the rows of frame by (startCol, endCol) and returns the
// largest group. Rows with a missing side must already be filtered out.
func PairMode(frame dataframe.DataFrame, startCol, endCol string) (Pair, int, error) {
	if frame.Err != nil {
		return Pair{}, 0, frame.Err
	}
	if frame.Nrow() == 0 {
		return Pair{}, 0, ErrEmpty
	}

	pairs := frame.Select([]string{startCol, endCol})
	if pairs.Err != nil {
		return Pair{}, 0, fmt.Errorf("stats: select pair columns: %w", pairs.Err)
	}
	groups, err := groupCounts(pairs, startCol, endCol)
	if err != nil {
		return Pair{}, 0, err
	}
	top := groups[0]
	return Pair{Start: top.keys[0], End: top.keys[1]}, top.n, nil
}

// Sum adds the values of a numeric series. The sum of nothing is zero.
func Sum(s series.Series) float64 {
	if s.Len() == 0 {
		return 0
	}
	return s.Sum()
}

// Mean is the arithmetic mean of a numeric series.
func Mean(s series.Series) (float64, error) {
	if s.Len() == 0 {
		return 0, ErrEmpty
	}
	return s.Mean(), nil
}

// MinMax returns the smallest and largest values of a numeric series.
func MinMax(s series.Series) (float64, float64, error) {
	if s.Len() == 0 {
		return 0, 0, ErrEmpty
	}
	return s.Min(), s.Max(), nil
}

type group struct {
	keys []string
	n    int
}

// groupCounts counts the rows of frame per distinct combination of keys,
// largest group first.
func groupCounts(frame dataframe.DataFrame, keys ...string) ([]group, error) {
	grouped := frame.GroupBy(keys...)
	if grouped.Err != nil {
		return nil, fmt.Errorf("stats: group by %s: %w", strings.Join(keys, ", "), grouped.Err)
	}
	counted := grouped.Aggregation([]dataframe.AggregationType{dataframe.Aggregation_COUNT}, keys[:1])
	if counted.Err != nil {
		return nil, fmt.Errorf("stats: count %s: %w", strings.Join(keys, ", "), counted.Err)
	}

	var countCol string
	for _, name := range counted.Names() {
		if !slices.Contains(keys, name) {
			countCol = name
		}
	}
	counted = counted.Arrange(dataframe.RevSort(countCol))
	if counted.Err != nil {
		return nil, fmt.Errorf("stats: sort counts: %w", counted.Err)
	}

	ns := counted.Col(countCol).Float()
	cells := make([][]string, len(keys))
	for i, k := range keys {
		cells[i] = counted.Col(k).Records()
	}
	groups := make([]group, len(ns))
	for r, n := range ns {
		g := group{keys: make([]string, len(keys)), n: int(n)}
		for i := range keys {
			g.keys[i] = cells[i][r]
		}
		groups[r] = g
	}
	breakTies(groups)
	return groups, nil
}

// breakTies orders each run of equally sized groups by key, lowest first.
func breakTies(groups []group) {
	for start := 0; start < len(groups); {
		end := start + 1
		for end < len(groups) && groups[end].n == groups[start].n {
			end++
		}
		slices.SortFunc(groups[start:end], func(a, b group) int {
			for i := range a.keys {
				if c := compareCells(a.keys[i], b.keys[i]); c != 0 {
					return c
				}
			}
			return 0
		})
		start = end
	}
}

// compareCells orders numerically when both cells are numbers.
func compareCells(a, b string) int {
	fa, errA := strconv.ParseFloat(a, 64)
	fb, errB := strconv.ParseFloat(b, 64)
	if errA == nil && errB == nil {
		return cmp.Compare(fa, fb)
	}
	return strings.Compare(a, b)
}
