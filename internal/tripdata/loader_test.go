package tripdata

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/srikanthsesetti/pdsnd-github/internal/cities"
	"github.com/srikanthsesetti/pdsnd-github/internal/filters"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readFixture(t *testing.T) *Table {
	t.Helper()
	f, err := os.Open(filepath.Join("testdata", "chicago.csv"))
	require.NoError(t, err)
	defer f.Close()

	table, err := Read(f)
	require.NoError(t, err)
	return table
}

func TestRead_DerivesCalendarColumns(t *testing.T) {
	table := readFixture(t)
	require.Equal(t, 8, table.Len())

	months, err := table.Column(ColMonth)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "1", "2", "3", "4", "5", "6", "6"}, months)

	days, err := table.Column(ColDayOfWeek)
	require.NoError(t, err)
	want := []string{"sunday", "monday", "wednesday", "wednesday", "saturday", "monday", "thursday", "monday"}
	if diff := cmp.Diff(want, days); diff != "" {
		t.Errorf("day_of_week mismatch (-want +got):\n%s", diff)
	}
}

func TestApply_MonthFilter(t *testing.T) {
	table := readFixture(t)
	expectedRows := map[string]int{"january": 2, "february": 1, "march": 1, "april": 1, "may": 1, "june": 2}

	for _, month := range []string{"january", "february", "march", "april", "may", "june"} {
		t.Run(month, func(t *testing.T) {
			filtered, err := Apply(table, month, filters.All)
			require.NoError(t, err)
			assert.Equal(t, expectedRows[month], filtered.Len())

			idx, _ := filters.MonthIndex(month)
			got, err := filtered.Column(ColMonth)
			require.NoError(t, err)
			for _, m := range got {
				assert.Equal(t, strconv.Itoa(idx), m)
			}
		})
	}
}

func TestApply_DayFilter(t *testing.T) {
	table := readFixture(t)
	expectedRows := map[string]int{"monday": 3, "wednesday": 2, "thursday": 1, "saturday": 1, "sunday": 1}

	for _, day := range []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"} {
		t.Run(day, func(t *testing.T) {
			filtered, err := Apply(table, filters.All, strings.ToUpper(day))
			require.NoError(t, err)
			assert.Equal(t, expectedRows[day], filtered.Len())

			got, err := filtered.Column(ColDayOfWeek)
			require.NoError(t, err)
			for _, d := range got {
				assert.Equal(t, day, d)
			}
		})
	}
}

func TestApply_Combined(t *testing.T) {
	table := readFixture(t)

	t.Run("all/all keeps every row", func(t *testing.T) {
		filtered, err := Apply(table, filters.All, filters.All)
		require.NoError(t, err)
		assert.Equal(t, table.Len(), filtered.Len())
	})

	t.Run("june mondays", func(t *testing.T) {
		filtered, err := Apply(table, "june", "monday")
		require.NoError(t, err)
		require.Equal(t, 1, filtered.Len())
		assert.Equal(t, []int{7}, filtered.RowIDs())
	})

	t.Run("no match is an empty table", func(t *testing.T) {
		filtered, err := Apply(table, "april", "monday")
		require.NoError(t, err)
		assert.Equal(t, 0, filtered.Len())
		assert.Equal(t, [][]string{table.Names()}, filtered.Records())
	})

	t.Run("month outside the vocabulary", func(t *testing.T) {
		_, err := Apply(table, "july", filters.All)
		assert.Error(t, err)
	})
}

func TestRead_MalformedData(t *testing.T) {
	testCases := []struct {
		name string
		csv  string
	}{
		{
			name: "unparsable start time",
			csv:  "Start Time,Trip Duration,User Type\n2017-01-01 09:07:57,10,Subscriber\nyesterday,20,Customer\n",
		},
		{
			name: "non-numeric duration",
			csv:  "Start Time,Trip Duration,User Type\n2017-01-01 09:07:57,ten,Subscriber\n",
		},
		{
			name: "missing required column",
			csv:  "Start Time,User Type\n2017-01-01 09:07:57,Subscriber\n",
		},
		{
			name: "ragged rows",
			csv:  "Start Time,Trip Duration,User Type\n2017-01-01 09:07:57,10\n",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tc.csv))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedData)
		})
	}
}

func TestRead_OptionalColumnsAbsent(t *testing.T) {
	csv := "Start Time,Trip Duration,User Type\n2017-06-23 15:09:32,1446.3,Subscriber\n"
	table, err := Read(strings.NewReader(csv))
	require.NoError(t, err)

	assert.False(t, table.Has(ColGender))
	assert.False(t, table.Has(ColBirthYear))
	assert.True(t, table.Has(ColMonth))

	durations, err := table.Numbers(ColTripDuration)
	require.NoError(t, err)
	assert.Equal(t, []float64{1446.3}, durations.Float())
}

func TestRead_HeaderOnly(t *testing.T) {
	// --- Arrange ---
	csv := "Start Time,End Time,Trip Duration,Start Station,End Station,User Type\n"

	// --- Act ---
	table, err := Read(strings.NewReader(csv))

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, 0, table.Len())
	assert.Equal(t, []string{ColStartTime, "End Time", ColTripDuration, ColStartStation, ColEndStation, ColUserType, ColMonth, ColDayOfWeek}, table.Names())

	filtered, err := Apply(table, filters.All, filters.All)
	require.NoError(t, err)
	assert.Equal(t, table.Len(), filtered.Len())

	filtered, err = Apply(table, "march", "friday")
	require.NoError(t, err)
	assert.Equal(t, 0, filtered.Len())
}

func TestRead_HeaderOnlyStillNeedsRequiredColumns(t *testing.T) {
	_, err := Read(strings.NewReader("Start Time,User Type\n"))
	assert.ErrorIs(t, err, ErrMalformedData)

	_, err = Read(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrMalformedData)
}

func TestLoader_Load(t *testing.T) {
	fixture, err := os.ReadFile(filepath.Join("testdata", "chicago.csv"))
	require.NoError(t, err)

	t.Run("loads and filters", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "chicago.csv"), fixture, 0o600))
		loader := NewLoader(cities.Default(dir))

		table, err := loader.Load(context.Background(), filters.Selection{City: "chicago", Month: "january", Day: filters.All})
		require.NoError(t, err)
		assert.Equal(t, 2, table.Len())
	})

	t.Run("finds file below data dir", func(t *testing.T) {
		dir := t.TempDir()
		nested := filepath.Join(dir, "2017", "q1")
		require.NoError(t, os.MkdirAll(nested, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(nested, "chicago.csv"), fixture, 0o600))
		loader := NewLoader(cities.Default(dir))

		table, err := loader.Load(context.Background(), filters.Selection{City: "chicago", Month: filters.All, Day: filters.All})
		require.NoError(t, err)
		assert.Equal(t, 8, table.Len())
	})

	t.Run("missing file", func(t *testing.T) {
		loader := NewLoader(cities.Default(t.TempDir()))
		_, err := loader.Load(context.Background(), filters.Selection{City: "washington", Month: filters.All, Day: filters.All})
		require.ErrorIs(t, err, ErrMissingResource)
		assert.Contains(t, err.Error(), "washington.csv")
	})

	t.Run("unregistered city", func(t *testing.T) {
		loader := NewLoader(cities.Default(t.TempDir()))
		_, err := loader.Load(context.Background(), filters.Selection{City: "boston", Month: filters.All, Day: filters.All})
		assert.ErrorIs(t, err, ErrMissingResource)
	})

	t.Run("malformed file", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "chicago.csv"), []byte("Start Time,Trip Duration,User Type\nnope,1,x\n"), 0o600))
		loader := NewLoader(cities.Default(dir))

		_, err := loader.Load(context.Background(), filters.Selection{City: "chicago", Month: filters.All, Day: filters.All})
		require.ErrorIs(t, err, ErrMalformedData)
		assert.Contains(t, err.Error(), "chicago.csv")
	})
}

func TestParseTimestamp(t *testing.T) {
	for _, s := range []string{"2017-06-23 15:09:32", "2017-06-23T15:09:32", "2017-06-23 15:09", "2017-06-23T15:09:32Z", "6/23/2017 15:09:32", "6/23/2017 15:09"} {
		ts, err := ParseTimestamp(s)
		require.NoError(t, err, s)
		assert.Equal(t, 15, ts.Hour(), s)
		assert.Equal(t, "Friday", ts.Weekday().String(), s)
	}
}
