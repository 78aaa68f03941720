package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newListWith(t *testing.T, descriptions ...string) *List {
	t.Helper()
	l := NewList()
	for _, d := range descriptions {
		l.Add(d)
	}
	return l
}

func descriptions(l *List) []string {
	var out []string
	for _, e := range l.Entries() {
		out = append(out, e.Description)
	}
	return out
}

func TestList_Add(t *testing.T) {
	t.Parallel()

	l := NewList()
	assert.Equal(t, 0, l.Add("first"))
	assert.Equal(t, 1, l.Add("second"))
	assert.Equal(t, 2, l.Len())

	got, err := l.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "second", got.Description)
	assert.Equal(t, StatusNotStarted, got.Status)
}

func TestList_Complete_OnlyTouchesTarget(t *testing.T) {
	t.Parallel()

	for i := 0; i < 3; i++ {
		l := newListWith(t, "a", "b", "c")
		require.NoError(t, l.Complete(i))

		for j := 0; j < l.Len(); j++ {
			got, err := l.Get(j)
			require.NoError(t, err)
			if j == i {
				assert.Equal(t, StatusCompleted, got.Status, "index %d", j)
			} else {
				assert.Equal(t, StatusNotStarted, got.Status, "index %d", j)
			}
		}
	}
}

func TestList_InProgress(t *testing.T) {
	t.Parallel()

	l := newListWith(t, "a", "b")
	require.NoError(t, l.InProgress(1))

	got, err := l.Get(1)
	require.NoError(t, err)
	assert.Equal(t, StatusInProgress, got.Status)

	first, err := l.Get(0)
	require.NoError(t, err)
	assert.Equal(t, StatusNotStarted, first.Status)
}

func TestList_Remove_ShiftsLaterTasks(t *testing.T) {
	t.Parallel()

	l := newListWith(t, "a", "b", "c", "d")
	before := make([]Task, l.Len())
	for i := range before {
		before[i], _ = l.Get(i)
	}

	require.NoError(t, l.Remove(1))
	assert.Equal(t, 3, l.Len())

	got0, _ := l.Get(0)
	assert.Equal(t, before[0], got0)
	for j := 2; j < len(before); j++ {
		got, err := l.Get(j - 1)
		require.NoError(t, err)
		assert.Equal(t, before[j], got)
	}
}

func TestList_Remove_LastElement(t *testing.T) {
	t.Parallel()

	l := newListWith(t, "only")
	require.NoError(t, l.Remove(0))
	assert.Equal(t, 0, l.Len())
	assert.Nil(t, l.Entries())
}

func TestList_InvalidIndex(t *testing.T) {
	t.Parallel()

	ops := map[string]func(*List, int) error{
		"remove":      (*List).Remove,
		"complete":    (*List).Complete,
		"in_progress": (*List).InProgress,
		"get": func(l *List, i int) error {
			_, err := l.Get(i)
			return err
		},
	}

	tests := []struct {
		name  string
		tasks []string
		index int
	}{
		{name: "empty list zero", index: 0},
		{name: "empty list negative", index: -1},
		{name: "negative", tasks: []string{"a", "b"}, index: -1},
		{name: "equal to length", tasks: []string{"a", "b"}, index: 2},
		{name: "far beyond length", tasks: []string{"a"}, index: 5},
	}

	for opName, op := range ops {
		opName, op := opName, op
		for _, tt := range tests {
			tt := tt
			t.Run(opName+"/"+tt.name, func(t *testing.T) {
				t.Parallel()
				l := newListWith(t, tt.tasks...)
				before := l.Entries()

				err := op(l, tt.index)
				assert.ErrorIs(t, err, ErrInvalidIndex)
				assert.Equal(t, len(tt.tasks), l.Len())
				assert.Equal(t, before, l.Entries())
			})
		}
	}
}

func TestList_Entries(t *testing.T) {
	t.Parallel()

	assert.Nil(t, NewList().Entries())

	l := newListWith(t, "Buy milk", "Write report")
	require.NoError(t, l.InProgress(1))

	want := []Entry{
		{Position: 1, Description: "Buy milk", Status: StatusNotStarted},
		{Position: 2, Description: "Write report", Status: StatusInProgress},
	}
	assert.Equal(t, want, l.Entries())
}

func TestList_Scenario(t *testing.T) {
	t.Parallel()

	l := NewList()
	l.Add("Buy milk")
	assert.Equal(t, []Entry{{1, "Buy milk", StatusNotStarted}}, l.Entries())

	require.NoError(t, l.Complete(0))
	assert.Equal(t, []Entry{{1, "Buy milk", StatusCompleted}}, l.Entries())

	l.Add("Write report")
	assert.Equal(t, []string{"Buy milk", "Write report"}, descriptions(l))

	require.NoError(t, l.Remove(0))
	assert.Equal(t, []Entry{{1, "Write report", StatusNotStarted}}, l.Entries())

	assert.ErrorIs(t, l.Complete(5), ErrInvalidIndex)
	assert.Equal(t, []Entry{{1, "Write report", StatusNotStarted}}, l.Entries())
}

func TestList_RemovalChangesIdentityAtPosition(t *testing.T) {
	t.Parallel()

	l := newListWith(t, "a", "b")
	held, err := l.Get(1)
	require.NoError(t, err)

	require.NoError(t, l.Remove(0))
	now, err := l.Get(0)
	require.NoError(t, err)
	assert.Equal(t, held.ID, now.ID)

	_, err = l.Get(1)
	assert.ErrorIs(t, err, ErrInvalidIndex)
}
