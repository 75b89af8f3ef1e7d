package views

import (
	"context"
	"testing"
	"time"

	"github.com/princeprakhar/dealership-reviews/internal/models"
	"github.com/princeprakhar/dealership-reviews/internal/web/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func detailAPI() *fakeAPI {
	return &fakeAPI{
		dealer: map[string]*models.Dealer{
			"1": {ID: 1, FullName: "One"},
			"2": {ID: 2, FullName: "Two"},
		},
		reviews: map[string][]models.Review{
			"1": {
				{ID: "a", Dealership: 1, Sentiment: "positive"},
				{ID: "b", Dealership: 1, Sentiment: "negative"},
				{ID: "c", Dealership: 1},
			},
		},
	}
}

func TestSentimentIconIsTotal(t *testing.T) {
	tests := map[string]string{
		"positive": IconPositive,
		"negative": IconNegative,
		"neutral":  IconNeutral,
		"":         IconNeutral,
		"Positive": IconNeutral,
		"mixed":    IconNeutral,
	}
	for sentiment, icon := range tests {
		assert.Equal(t, icon, SentimentIcon(sentiment), sentiment)
	}
}

func TestDealerDetailPopulated(t *testing.T) {
	view := NewDealerDetail(detailAPI(), session.NewMemory())
	assert.Equal(t, ReviewsLoading, view.Snapshot().Reviews)

	require.True(t, view.Load(context.Background(), "1"))

	state := view.Snapshot()
	require.NotNil(t, state.Dealer)
	assert.Equal(t, "One", state.Dealer.FullName)
	assert.Equal(t, ReviewsPopulated, state.Reviews)
	require.Len(t, state.Items, 3)
	assert.Equal(t, IconPositive, state.Items[0].Icon)
	assert.Equal(t, IconNegative, state.Items[1].Icon)
	assert.Equal(t, IconNeutral, state.Items[2].Icon)
	assert.Empty(t, state.PostReviewPath)
}

func TestDealerDetailUnreviewed(t *testing.T) {
	view := NewDealerDetail(detailAPI(), session.NewMemory())

	require.True(t, view.Load(context.Background(), "2"))

	state := view.Snapshot()
	assert.Equal(t, ReviewsUnreviewed, state.Reviews)
	assert.Empty(t, state.Items)
}

func TestDealerDetailFailuresAreIsolated(t *testing.T) {
	api := detailAPI()
	api.reviewsErr = errBackend
	view := NewDealerDetail(api, session.NewMemory())

	view.Load(context.Background(), "1")
	state := view.Snapshot()
	require.NotNil(t, state.Dealer)
	assert.Equal(t, ReviewsUnreviewed, state.Reviews)

	api = detailAPI()
	api.dealerErr = errBackend
	view = NewDealerDetail(api, session.NewMemory())

	view.Load(context.Background(), "1")
	state = view.Snapshot()
	assert.Nil(t, state.Dealer)
	assert.Equal(t, ReviewsPopulated, state.Reviews)
}

func TestDealerDetailPostReviewLinkWhenLoggedIn(t *testing.T) {
	store := session.NewMemory()
	require.NoError(t, store.Login(session.User{Username: "alice"}))
	view := NewDealerDetail(detailAPI(), store)

	view.Load(context.Background(), "1")
	assert.Equal(t, "/postreview/1", view.Snapshot().PostReviewPath)
}

func TestDealerDetailNewerLoadSupersedesOlder(t *testing.T) {
	started := make(chan struct{})
	api := detailAPI()
	api.reviewsHook = func(ctx context.Context, id string) error {
		if id != "1" {
			return nil
		}
		close(started)
		<-ctx.Done()
		return ctx.Err()
	}
	view := NewDealerDetail(api, session.NewMemory())

	first := make(chan bool)
	go func() { first <- view.Load(context.Background(), "1") }()
	<-started

	require.True(t, view.Load(context.Background(), "2"))

	select {
	case applied := <-first:
		assert.False(t, applied)
	case <-time.After(2 * time.Second):
		t.Fatal("superseded load was not cancelled")
	}

	state := view.Snapshot()
	assert.Equal(t, "2", state.DealerID)
	require.NotNil(t, state.Dealer)
	assert.Equal(t, "Two", state.Dealer.FullName)
	assert.Equal(t, ReviewsUnreviewed, state.Reviews)
}

func TestDealerDetailDiscardsStaleResults(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	api := detailAPI()
	api.reviewsHook = func(_ context.Context, id string) error {
		if id == "1" {
			close(started)
			<-release
		}
		return nil
	}
	view := NewDealerDetail(api, session.NewMemory())

	first := make(chan bool)
	go func() { first <- view.Load(context.Background(), "1") }()
	<-started

	require.True(t, view.Load(context.Background(), "2"))
	close(release)
	assert.False(t, <-first)

	state := view.Snapshot()
	assert.Equal(t, "2", state.DealerID)
	assert.Equal(t, ReviewsUnreviewed, state.Reviews)
	assert.Empty(t, state.Items)
}
