package views

import (
	"context"
	"sync"

	"github.com/princeprakhar/dealership-reviews/internal/models"
	"github.com/princeprakhar/dealership-reviews/internal/web/session"
	"golang.org/x/sync/errgroup"
)

// ReviewsState is what the reviews section of a dealer page shows.
type ReviewsState int

const (
	ReviewsLoading ReviewsState = iota
	ReviewsUnreviewed
	ReviewsPopulated
)

func (s ReviewsState) String() string {
	switch s {
	case ReviewsUnreviewed:
		return "unreviewed"
	case ReviewsPopulated:
		return "populated"
	default:
		return "loading"
	}
}

// Sentiment icons served from the static assets.
const (
	IconPositive = "/static/positive.svg"
	IconNeutral  = "/static/neutral.svg"
	IconNegative = "/static/negative.svg"
)

// SentimentIcon maps a sentiment label to its icon; anything unknown is neutral.
func SentimentIcon(sentiment string) string {
	switch sentiment {
	case models.SentimentPositive:
		return IconPositive
	case models.SentimentNegative:
		return IconNegative
	default:
		return IconNeutral
	}
}

type ReviewItem struct {
	Review models.Review
	Icon   string
}

// DetailState is a consistent snapshot of a DealerDetail.
type DetailState struct {
	DealerID       string
	Dealer         *models.Dealer
	Reviews        ReviewsState
	Items          []ReviewItem
	PostReviewPath string // empty unless a user is logged in
}

// DealerDetail loads one dealer and its reviews. A Load for a new id
// supersedes any Load still in flight; results of the older one are dropped.
type DealerDetail struct {
	api     API
	session session.Store

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
	dealerID   string
	dealer     *models.Dealer
	reviews    []models.Review
	state      ReviewsState
}

func NewDealerDetail(api API, store session.Store) *DealerDetail {
	return &DealerDetail{api: api, session: store}
}

// Load fetches the dealer and its reviews in parallel and blocks until both
// have finished. It reports false when a newer Load superseded this one.
func (v *DealerDetail) Load(ctx context.Context, id string) bool {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	v.mu.Lock()
	if v.cancel != nil {
		v.cancel()
	}
	v.generation++
	gen := v.generation
	v.cancel = cancel
	v.dealerID = id
	v.dealer = nil
	v.reviews = nil
	v.state = ReviewsLoading
	v.mu.Unlock()

	var g errgroup.Group
	g.Go(func() error {
		dealer, err := v.api.GetDealer(ctx, id)
		if err != nil {
			logFetchFailure("dealer", "/dealer/"+id, err)
			return nil
		}
		v.apply(gen, func() { v.dealer = dealer })
		return nil
	})
	g.Go(func() error {
		reviews, err := v.api.GetDealerReviews(ctx, id)
		if err != nil {
			logFetchFailure("dealer", "/reviews/dealer/"+id, err)
		}
		v.apply(gen, func() {
			if len(reviews) == 0 {
				v.state = ReviewsUnreviewed
				return
			}
			v.reviews = reviews
			v.state = ReviewsPopulated
		})
		return nil
	})
	// Each fetch settles its own failure; the group only joins them.
	_ = g.Wait()

	v.mu.Lock()
	defer v.mu.Unlock()
	if gen != v.generation {
		return false
	}
	v.cancel = nil
	return true
}

func (v *DealerDetail) apply(gen uint64, update func()) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if gen != v.generation {
		return
	}
	update()
}

func (v *DealerDetail) Snapshot() DetailState {
	v.mu.Lock()
	defer v.mu.Unlock()

	state := DetailState{
		DealerID: v.dealerID,
		Dealer:   v.dealer,
		Reviews:  v.state,
	}
	for _, r := range v.reviews {
		state.Items = append(state.Items, ReviewItem{Review: r, Icon: SentimentIcon(r.Sentiment)})
	}
	if _, ok := v.session.Current(); ok && v.dealerID != "" {
		state.PostReviewPath = "/postreview/" + v.dealerID
	}
	return state
}
