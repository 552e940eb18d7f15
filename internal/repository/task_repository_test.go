package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskCreateDefaults(t *testing.T) {
	db := openTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()
	owner := createTestAccount(t, db, "alice")

	task, err := repo.Create(ctx, owner, "Buy milk", "", 0, "")
	require.NoError(t, err)
	assert.Equal(t, DefaultPriority, task.Priority)
	assert.Equal(t, DefaultCategory, task.Category)

	stored, err := repo.Get(ctx, owner, task.ID)
	require.NoError(t, err)
	assert.False(t, stored.Done)
	assert.False(t, stored.CompletedAt.Valid)
	assert.False(t, stored.CreatedAt.IsZero())
}

func TestTaskListOrdering(t *testing.T) {
	db := openTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()
	owner := createTestAccount(t, db, "alice")

	_, err := repo.Create(ctx, owner, "third", "", 3, "")
	require.NoError(t, err)
	_, err = repo.Create(ctx, owner, "first", "", 1, "")
	require.NoError(t, err)
	_, err = repo.Create(ctx, owner, "second", "", 1, "")
	require.NoError(t, err)

	tasks, err := repo.List(ctx, owner, TaskFilter{})
	require.NoError(t, err)
	require.Len(t, tasks, 3)

	// priority ascending, then creation order for ties
	assert.Equal(t, "first", tasks[0].Title)
	assert.Equal(t, "second", tasks[1].Title)
	assert.Equal(t, "third", tasks[2].Title)
}

func TestTaskListFilters(t *testing.T) {
	db := openTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()
	owner := createTestAccount(t, db, "alice")

	work, err := repo.Create(ctx, owner, "Write report", "", 2, "Work")
	require.NoError(t, err)
	_, err = repo.Create(ctx, owner, "Buy milk", "", 1, "Errands")
	require.NoError(t, err)
	_, err = repo.Create(ctx, owner, "Plan sprint", "", 3, "Work")
	require.NoError(t, err)

	require.NoError(t, repo.MarkDone(ctx, owner, work.ID))

	byCategory, err := repo.List(ctx, owner, TaskFilter{Category: "Work"})
	require.NoError(t, err)
	assert.Len(t, byCategory, 2)

	done, err := repo.List(ctx, owner, TaskFilter{Status: StatusDone})
	require.NoError(t, err)
	require.Len(t, done, 1)
	assert.Equal(t, "Write report", done[0].Title)

	incomplete, err := repo.List(ctx, owner, TaskFilter{Status: StatusIncomplete})
	require.NoError(t, err)
	assert.Len(t, incomplete, 2)

	// combined filters return the intersection
	both, err := repo.List(ctx, owner, TaskFilter{Category: "Work", Status: StatusIncomplete})
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, "Plan sprint", both[0].Title)
}

func TestTaskIsolationBetweenAccounts(t *testing.T) {
	db := openTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()
	alice := createTestAccount(t, db, "alice")
	bob := createTestAccount(t, db, "bob")

	task, err := repo.Create(ctx, alice, "secret", "", 1, "")
	require.NoError(t, err)

	bobTasks, err := repo.List(ctx, bob, TaskFilter{})
	require.NoError(t, err)
	assert.Empty(t, bobTasks)

	_, err = repo.Get(ctx, bob, task.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = repo.Update(ctx, bob, task.ID, "stolen", "", 1, "")
	assert.ErrorIs(t, err, ErrNotFound)

	err = repo.MarkDone(ctx, bob, task.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// foreign delete is a silent no-op and leaves the task in place
	require.NoError(t, repo.Delete(ctx, bob, task.ID))
	kept, err := repo.Get(ctx, alice, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "secret", kept.Title)
}

func TestTaskMarkDone(t *testing.T) {
	db := openTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()
	owner := createTestAccount(t, db, "alice")

	task, err := repo.Create(ctx, owner, "Buy milk", "", 1, "")
	require.NoError(t, err)

	require.NoError(t, repo.MarkDone(ctx, owner, task.ID))

	first, err := repo.Get(ctx, owner, task.ID)
	require.NoError(t, err)
	assert.True(t, first.Done)
	require.True(t, first.CompletedAt.Valid)

	// marking again keeps the original completion time
	require.NoError(t, repo.MarkDone(ctx, owner, task.ID))
	second, err := repo.Get(ctx, owner, task.ID)
	require.NoError(t, err)
	assert.Equal(t, first.CompletedAt.Time, second.CompletedAt.Time)

	require.NoError(t, repo.MarkDone(ctx, owner, task.ID))

	err = repo.MarkDone(ctx, owner, task.ID+100)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTaskUpdateKeepsCompletionState(t *testing.T) {
	db := openTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()
	owner := createTestAccount(t, db, "alice")

	task, err := repo.Create(ctx, owner, "Buy milk", "old", 1, "Errands")
	require.NoError(t, err)
	require.NoError(t, repo.MarkDone(ctx, owner, task.ID))

	require.NoError(t, repo.Update(ctx, owner, task.ID, "Buy oat milk", "new", 2, "Groceries"))

	updated, err := repo.Get(ctx, owner, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Buy oat milk", updated.Title)
	assert.Equal(t, "new", updated.Description)
	assert.Equal(t, 2, updated.Priority)
	assert.Equal(t, "Groceries", updated.Category)
	assert.True(t, updated.Done)
	assert.True(t, updated.CompletedAt.Valid)
	assert.Equal(t, task.CreatedAt.Unix(), updated.CreatedAt.Unix())
}

func TestTaskDeleteLenient(t *testing.T) {
	db := openTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()
	owner := createTestAccount(t, db, "alice")

	task, err := repo.Create(ctx, owner, "Buy milk", "", 1, "")
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, owner, task.ID))
	_, err = repo.Get(ctx, owner, task.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// deleting it again does not error
	require.NoError(t, repo.Delete(ctx, owner, task.ID))
}

func TestTaskCategoriesDistinct(t *testing.T) {
	db := openTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()
	owner := createTestAccount(t, db, "alice")
	other := createTestAccount(t, db, "bob")

	for _, category := range []string{"Work", "Work", "Errands", ""} {
		_, err := repo.Create(ctx, owner, "t", "", 1, category)
		require.NoError(t, err)
	}
	_, err := repo.Create(ctx, other, "t", "", 1, "Hobby")
	require.NoError(t, err)

	categories, err := repo.Categories(ctx, owner)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Work", "Errands", "General"}, categories)
}
