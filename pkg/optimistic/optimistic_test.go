package optimistic

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type item struct {
	ID     uint
	Status string
}

func testItems() []item {
	return []item{{1, "new"}, {2, "new"}, {3, "completed"}}
}

func TestRemoveThenCommit(t *testing.T) {
	items := testItems()
	txn := Begin(&items)
	txn.Remove(func(i item) bool { return i.ID == 2 })

	assert.Len(t, items, 2)
	for _, i := range items {
		assert.NotEqual(t, uint(2), i.ID)
	}

	txn.Commit()
	assert.Len(t, items, 2)
}

func TestRemoveThenRollback(t *testing.T) {
	items := testItems()
	txn := Begin(&items)
	txn.Remove(func(i item) bool { return i.ID == 2 })
	assert.Len(t, items, 2)

	// De remote actie faalt: de lijst moet terug naar de oude staat.
	txn.Rollback()
	assert.Equal(t, testItems(), items)
}

func TestUpdateThenRollback(t *testing.T) {
	items := testItems()
	txn := Begin(&items)
	txn.Update(
		func(i item) bool { return i.ID == 1 },
		func(i *item) { i.Status = "archived" },
	)
	assert.Equal(t, "archived", items[0].Status)

	txn.Rollback()
	assert.Equal(t, "new", items[0].Status)
}

func TestRollbackAfterCommitIsNoop(t *testing.T) {
	items := testItems()
	txn := Begin(&items)
	txn.Remove(func(i item) bool { return i.ID == 3 })
	txn.Commit()
	txn.Rollback()

	assert.Len(t, items, 2)
}

func TestRollbackRestoresSnapshotNotLaterMutations(t *testing.T) {
	items := testItems()
	txn := Begin(&items)
	txn.Remove(func(i item) bool { return i.ID == 1 })
	txn.Remove(func(i item) bool { return i.ID == 2 })

	err := errors.New("remote delete failed")
	assert.Error(t, err)

	txn.Rollback()
	assert.Equal(t, testItems(), items)
}
