package cache

import (
	"errors"
	"testing"

	"wrapsite_backend/internal/model"
	"wrapsite_backend/pkg/optimistic"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func summaries() []model.LeadSummary {
	return []model.LeadSummary{
		{ID: 1, Source: model.LeadSourceConfigurator, Status: "new"},
		{ID: 2, Source: model.LeadSourceContactForm, Status: "new"},
		{ID: 3, Source: model.LeadSourceKeuzehulp, Status: "contacted"},
	}
}

func TestGetBeforeSetIsInvalid(t *testing.T) {
	var c LeadCache
	_, ok := c.Get()
	assert.False(t, ok)
}

func TestOptimisticDeleteSuccess(t *testing.T) {
	var c LeadCache
	c.Set(summaries())

	err := c.Mutate(
		func(txn *optimistic.Txn[model.LeadSummary]) {
			txn.Remove(func(l model.LeadSummary) bool { return l.ID == 2 })
		},
		func() error { return nil },
	)
	require.NoError(t, err)

	leads, ok := c.Get()
	require.True(t, ok)
	require.Len(t, leads, 2)
	for _, l := range leads {
		assert.NotEqual(t, uint(2), l.ID)
	}
}

func TestOptimisticDeleteRollsBackOnRemoteFailure(t *testing.T) {
	var c LeadCache
	c.Set(summaries())

	remoteErr := errors.New("store unavailable")
	err := c.Mutate(
		func(txn *optimistic.Txn[model.LeadSummary]) {
			txn.Remove(func(l model.LeadSummary) bool { return l.ID == 2 })
		},
		func() error { return remoteErr },
	)
	assert.ErrorIs(t, err, remoteErr)

	// De lijst is terug op de oude staat, inclusief het verwijderde item.
	leads, ok := c.Get()
	require.True(t, ok)
	require.Len(t, leads, 3)
	assert.Equal(t, summaries(), leads)
}

func TestOptimisticStatusUpdateRollsBack(t *testing.T) {
	var c LeadCache
	c.Set(summaries())

	err := c.Mutate(
		func(txn *optimistic.Txn[model.LeadSummary]) {
			txn.Update(
				func(l model.LeadSummary) bool { return l.ID == 3 },
				func(l *model.LeadSummary) { l.Status = "offer_sent" },
			)
		},
		func() error { return errors.New("update failed") },
	)
	assert.Error(t, err)

	leads, _ := c.Get()
	assert.Equal(t, "contacted", leads[2].Status)
}

func TestMutateWithoutCacheStillRunsRemote(t *testing.T) {
	var c LeadCache

	ran := false
	err := c.Mutate(
		func(txn *optimistic.Txn[model.LeadSummary]) { t.Fatal("apply hoort niet te draaien zonder cache") },
		func() error { ran = true; return nil },
	)
	require.NoError(t, err)
	assert.True(t, ran)
}

func TestInvalidate(t *testing.T) {
	var c LeadCache
	c.Set(summaries())
	c.Invalidate()
	_, ok := c.Get()
	assert.False(t, ok)
}
