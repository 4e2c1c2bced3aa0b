package domain

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-manager/internal/errors"
	"todo-manager/internal/logging"
)

func setupTestList(t *testing.T, names ...string) (*TaskList, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	list := NewTaskListWithActivity(logging.NewActivityLog(&buf))
	for i, name := range names {
		list.Create(NewTask(name, fmt.Sprintf("d%d", i+1), StatusNotDone, fmt.Sprintf("2024-01-%02d", i+1)))
	}
	return list, &buf
}

func names(list *TaskList) []string {
	var result []string
	for _, task := range list.All() {
		result = append(result, task.Name())
	}
	return result
}

func TestTaskList_Create(t *testing.T) {
	list, buf := setupTestList(t)
	assert.Equal(t, 0, list.Len())

	list.Create(NewTask("A", "d1", StatusNotDone, "2024-01-01"))
	list.Create(NewTask("B", "d2", StatusNotDone, "2024-01-02"))

	assert.Equal(t, 2, list.Len())
	assert.Equal(t, []string{"A", "B"}, names(list))
	assert.Contains(t, buf.String(), `Called method TaskList.Create with arguments ("A") {}`)
	assert.Contains(t, buf.String(), `Called method TaskList.Create with arguments ("B") {}`)
}

func TestTaskList_CreateAdoptsActivityLog(t *testing.T) {
	list, buf := setupTestList(t)
	task := NewTask("A", "d1", StatusNotDone, "2024-01-01")
	list.Create(task)

	task.MarkDone()

	assert.Contains(t, buf.String(), "Called method Task.MarkDone")
}

func TestTaskList_Get(t *testing.T) {
	tests := []struct {
		name    string
		index   int
		want    string
		wantErr bool
	}{
		{name: "first", index: 0, want: "A"},
		{name: "last", index: 2, want: "C"},
		{name: "negative", index: -1, wantErr: true},
		{name: "one past the end", index: 3, wantErr: true},
		{name: "far past the end", index: 100, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, buf := setupTestList(t, "A", "B", "C")

			task, err := list.Get(tt.index)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, task)
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
				assert.True(t, errors.IsRecoverable(err))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, task.Name())
			}
			assert.Equal(t, 3, list.Len(), "Get should never change the list")
			assert.Equal(t, []string{"A", "B", "C"}, names(list))
			assert.Contains(t, buf.String(), fmt.Sprintf("Called method TaskList.Get with arguments (%d) {}", tt.index))
		})
	}
}

func TestTaskList_GetEmpty(t *testing.T) {
	list, _ := setupTestList(t)

	_, err := list.Get(0)
	assert.Error(t, err)
}

func TestTaskList_Remove(t *testing.T) {
	tests := []struct {
		name      string
		index     int
		removed   string
		remaining []string
	}{
		{name: "first shifts the rest down", index: 0, removed: "A", remaining: []string{"B", "C", "D"}},
		{name: "middle keeps earlier tasks", index: 1, removed: "B", remaining: []string{"A", "C", "D"}},
		{name: "last", index: 3, removed: "D", remaining: []string{"A", "B", "C"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, _ := setupTestList(t, "A", "B", "C", "D")
			before := append([]*Task(nil), list.All()...)

			task, err := list.Remove(tt.index)
			require.NoError(t, err)

			assert.Same(t, before[tt.index], task)
			assert.Equal(t, tt.removed, task.Name())
			assert.Equal(t, 3, list.Len())
			assert.Equal(t, tt.remaining, names(list))

			after := list.All()
			for i := 0; i < tt.index; i++ {
				assert.Same(t, before[i], after[i], "tasks before the removed index are untouched")
			}
			for i := tt.index + 1; i < len(before); i++ {
				assert.Same(t, before[i], after[i-1], "tasks after the removed index move down by one")
			}
		})
	}
}

func TestTaskList_RemoveOutOfRange(t *testing.T) {
	for _, index := range []int{-1, 2, 5} {
		t.Run(fmt.Sprintf("index %d", index), func(t *testing.T) {
			list, buf := setupTestList(t, "A", "B")

			task, err := list.Remove(index)

			require.Error(t, err)
			assert.Nil(t, task)
			assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
			assert.Equal(t, 2, list.Len())
			assert.Equal(t, []string{"A", "B"}, names(list))
			assert.Contains(t, buf.String(), fmt.Sprintf("Called method TaskList.Remove with arguments (%d) {}", index))
		})
	}
}

func TestTaskList_AllIsNotACopy(t *testing.T) {
	list, _ := setupTestList(t, "A")

	list.All()[0].EditDescription("changed through All")

	task, err := list.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "changed through All", task.Description())
}

func TestTaskList_LenDoesNotLog(t *testing.T) {
	list, buf := setupTestList(t, "A", "B")
	buf.Reset()

	assert.Equal(t, 2, list.Len())
	assert.Empty(t, buf.String())
}

func TestTaskList_EndToEndScenario(t *testing.T) {
	list, buf := setupTestList(t)

	list.Create(NewTask("A", "d1", StatusNotDone, "2024-01-01"))
	list.Create(NewTask("B", "d2", StatusNotDone, "2024-01-02"))

	first, err := list.Get(0)
	require.NoError(t, err)
	first.MarkDone()

	first, err = list.Get(0)
	require.NoError(t, err)
	first.EditDescription("d1-edited")

	_, err = list.Remove(1)
	require.NoError(t, err)

	require.Equal(t, 1, list.Len())
	remaining := list.All()[0]
	assert.Equal(t, "A", remaining.Name())
	assert.Equal(t, "d1-edited", remaining.Description())
	assert.Equal(t, StatusDone, remaining.Status())
	assert.Equal(t, "2024-01-01", remaining.CreatedAt())

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		assert.Contains(t, line, "Called method ")
	}
}
