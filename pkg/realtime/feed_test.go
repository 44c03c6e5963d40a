package realtime

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFeed(t *testing.T) *Feed {
	mr := miniredis.RunT(t)
	return NewFeed(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
}

func TestWaitForUpdateReceivesPublishedResult(t *testing.T) {
	feed := testFeed(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	type result struct {
		update *SubmissionUpdate
		err    error
	}
	done := make(chan result, 1)
	go func() {
		update, err := feed.WaitForUpdate(ctx, "sub-123")
		done <- result{update, err}
	}()

	// Korte pauze zodat het abonnement actief is voordat we publiceren.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, feed.PublishUpdate(ctx, SubmissionUpdate{
		SubmissionID:      "sub-123",
		Status:            "completed",
		GeneratedImageURL: "https://cdn.example.nl/generated/sub-123.webp",
	}))

	select {
	case r := <-done:
		require.NoError(t, r.err)
		require.NotNil(t, r.update)
		assert.Equal(t, "sub-123", r.update.SubmissionID)
		assert.Equal(t, "completed", r.update.Status)
		assert.Equal(t, "https://cdn.example.nl/generated/sub-123.webp", r.update.GeneratedImageURL)
	case <-time.After(5 * time.Second):
		t.Fatal("geen update ontvangen")
	}
}

// Een update die na het abonneren maar vóór het wachten gepubliceerd wordt
// moet alsnog aankomen; de wachter mag geen gat hebben tussen Listen en Wait.
func TestUpdateBetweenListenAndWaitIsNotMissed(t *testing.T) {
	feed := testFeed(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	waiter, err := feed.Listen(ctx, "sub-456")
	require.NoError(t, err)
	defer waiter.Close()

	require.NoError(t, feed.PublishUpdate(ctx, SubmissionUpdate{
		SubmissionID:      "sub-456",
		Status:            "completed",
		GeneratedImageURL: "https://cdn.example.nl/generated/sub-456.webp",
	}))

	update, err := waiter.Wait(ctx)
	require.NoError(t, err)
	assert.Equal(t, "sub-456", update.SubmissionID)
	assert.Equal(t, "https://cdn.example.nl/generated/sub-456.webp", update.GeneratedImageURL)
}

func TestWaitForUpdateTimesOut(t *testing.T) {
	feed := testFeed(t)
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	update, err := feed.WaitForUpdate(ctx, "sub-zonder-resultaat")
	assert.Nil(t, update)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestUpdatesDoNotCrossSubmissions(t *testing.T) {
	feed := testFeed(t)
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		_, err := feed.WaitForUpdate(ctx, "sub-a")
		done <- err
	}()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, feed.PublishUpdate(context.Background(), SubmissionUpdate{
		SubmissionID: "sub-b",
		Status:       "completed",
	}))

	// De wachter op sub-a mag het bericht voor sub-b niet zien en loopt
	// tegen zijn deadline aan.
	err := <-done
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
