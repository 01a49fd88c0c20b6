package pager

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/srikanthsesetti/pdsnd-github/internal/console"
	"github.com/srikanthsesetti/pdsnd-github/internal/tripdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sevenRows builds a table whose User Type column names each row.
func sevenRows(t *testing.T) *tripdata.Table {
	t.Helper()
	var b strings.Builder
	b.WriteString("Start Time,Trip Duration,User Type\n")
	for i := 0; i < 7; i++ {
		fmt.Fprintf(&b, "2017-01-0%d 09:00:00,60,rider-%d\n", i+1, i)
	}
	table, err := tripdata.Read(strings.NewReader(b.String()))
	require.NoError(t, err)
	return table
}

func shownRiders(out string) []string {
	var riders []string
	for _, f := range strings.Fields(out) {
		if strings.HasPrefix(f, "rider-") {
			riders = append(riders, f)
		}
	}
	return riders
}

func TestRun_YesYesNo(t *testing.T) {
	// --- Arrange ---
	in := strings.NewReader("yes\nyes\nno\n")
	out := &bytes.Buffer{}
	p := New(console.New(in, out), out)

	// --- Act ---
	err := p.Run(sevenRows(t))

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, []string{"rider-0", "rider-1", "rider-2", "rider-3", "rider-4", "rider-5", "rider-6"}, shownRiders(out.String()))
	assert.Equal(t, 1, strings.Count(out.String(), "5 lines of raw data"))
	assert.Equal(t, 2, strings.Count(out.String(), morePrompt))
	assert.NotContains(t, out.String(), Exhausted)

	firstPage := out.String()[:strings.Index(out.String(), morePrompt)]
	assert.Equal(t, []string{"rider-0", "rider-1", "rider-2", "rider-3", "rider-4"}, shownRiders(firstPage))
}

func TestRun_DeclineImmediately(t *testing.T) {
	for _, answer := range []string{"no", "NO", " No "} {
		out := &bytes.Buffer{}
		p := New(console.New(strings.NewReader(answer+"\n"), out), out)

		require.NoError(t, p.Run(sevenRows(t)))
		assert.Empty(t, shownRiders(out.String()), answer)
	}
}

func TestRun_AnythingButNoContinues(t *testing.T) {
	out := &bytes.Buffer{}
	p := New(console.New(strings.NewReader("sure\n\nno\n"), out), out)

	require.NoError(t, p.Run(sevenRows(t)))
	assert.Len(t, shownRiders(out.String()), 7)
}

func TestRun_StopsWhenExhausted(t *testing.T) {
	out := &bytes.Buffer{}
	p := New(console.New(strings.NewReader("yes\nyes\nyes\nyes\n"), out), out)

	require.NoError(t, p.Run(sevenRows(t)))
	assert.Len(t, shownRiders(out.String()), 7)
	assert.Contains(t, out.String(), Exhausted)
	assert.Equal(t, 2, strings.Count(out.String(), morePrompt))
}

func TestRun_EmptyTable(t *testing.T) {
	table, err := tripdata.Apply(sevenRows(t), "june", "all")
	require.NoError(t, err)

	out := &bytes.Buffer{}
	p := New(console.New(strings.NewReader("yes\n"), out), out)
	require.NoError(t, p.Run(table))
	assert.Contains(t, out.String(), Exhausted)
}

func TestRun_InputClosed(t *testing.T) {
	out := &bytes.Buffer{}
	p := New(console.New(strings.NewReader("yes\n"), out), out)

	err := p.Run(sevenRows(t))
	assert.ErrorIs(t, err, console.ErrInputClosed)
}

func TestPrint_IncludesHeaderAndRowIDs(t *testing.T) {
	out := &bytes.Buffer{}
	p := New(nil, out)

	require.NoError(t, p.print(sevenRows(t).Slice(5, 10)))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Start Time")
	assert.Contains(t, lines[0], "day_of_week")
	assert.True(t, strings.HasPrefix(lines[1], "5 "))
	assert.True(t, strings.HasPrefix(lines[2], "6 "))
}
