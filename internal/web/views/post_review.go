package views

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/princeprakhar/dealership-reviews/internal/models"
	"github.com/princeprakhar/dealership-reviews/internal/types"
	"github.com/princeprakhar/dealership-reviews/internal/web/session"
	"golang.org/x/sync/errgroup"
)

const (
	NoticeMandatory   = "All details are mandatory"
	NoticeYearNumeric = "Car year must be a number"
)

// ReviewDraft is the review form as the user filled it in.
type ReviewDraft struct {
	Review       string
	Choice       string // "make model" as listed by CarChoice.Label
	PurchaseDate string
	Year         string
}

type PostReview struct {
	api      API
	session  session.Store
	DealerID string
	Dealer   *models.Dealer
	Choices  []models.CarChoice
	Notice   string
}

func NewPostReview(api API, store session.Store, dealerID string) *PostReview {
	return &PostReview{api: api, session: store, DealerID: dealerID}
}

// Load fetches the dealer and the car catalog. Either may fail independently.
func (v *PostReview) Load(ctx context.Context) {
	var g errgroup.Group
	g.Go(func() error {
		dealer, err := v.api.GetDealer(ctx, v.DealerID)
		if err != nil {
			logFetchFailure("postreview", "/dealer/"+v.DealerID, err)
			return nil
		}
		v.Dealer = dealer
		return nil
	})
	g.Go(func() error {
		choices, err := v.api.GetCars(ctx)
		if err != nil {
			logFetchFailure("postreview", "/get_cars/", err)
			v.Choices = []models.CarChoice{}
			return nil
		}
		v.Choices = choices
		return nil
	})
	// Failures are handled per fetch; the group only joins them.
	_ = g.Wait()
}

// Validate checks the mandatory fields and the year. It never touches the
// network; on failure Notice says why.
func (v *PostReview) Validate(draft ReviewDraft) (int, bool) {
	v.Notice = ""

	if strings.TrimSpace(draft.Choice) == "" || strings.TrimSpace(draft.Review) == "" ||
		strings.TrimSpace(draft.PurchaseDate) == "" || strings.TrimSpace(draft.Year) == "" {
		v.Notice = NoticeMandatory
		return 0, false
	}
	year, err := strconv.Atoi(strings.TrimSpace(draft.Year))
	if err != nil {
		v.Notice = NoticeYearNumeric
		return 0, false
	}
	return year, true
}

// Submit validates draft and posts it. On success it returns the dealer page to
// navigate to; otherwise Notice says why and no navigation happens.
func (v *PostReview) Submit(ctx context.Context, draft ReviewDraft) (Navigation, bool) {
	year, ok := v.Validate(draft)
	if !ok {
		return Navigation{}, false
	}

	user, ok := v.session.Current()
	if !ok {
		return Navigation{Path: "/login"}, true
	}
	dealership, err := strconv.Atoi(v.DealerID)
	if err != nil {
		v.Notice = failedPost("Unknown Error")
		return Navigation{}, false
	}

	carMake, carModel := SplitChoice(draft.Choice, v.Choices)
	resp, err := v.api.AddReview(ctx, user.Token, types.AddReviewRequest{
		Name:         ReviewerName(user),
		Dealership:   dealership,
		Review:       draft.Review,
		Purchase:     true,
		PurchaseDate: draft.PurchaseDate,
		CarMake:      carMake,
		CarModel:     carModel,
		CarYear:      year,
	})
	if err != nil {
		logFetchFailure("postreview", "/add_review/", err)
		v.Notice = failedPost("Unknown Error")
		return Navigation{}, false
	}
	if resp.Status != http.StatusOK {
		msg := resp.Message
		if msg == "" {
			msg = "Unknown Error"
		}
		v.Notice = failedPost(msg)
		return Navigation{}, false
	}

	return Navigation{Path: "/dealer/" + v.DealerID, FullReload: true}, true
}

func failedPost(msg string) string {
	return fmt.Sprintf("Failed to post review. Server message: %s", msg)
}

// SplitChoice resolves a "make model" choice into its parts. Choices listed in
// catalog resolve exactly, so multi-word makes survive; anything else is split
// at the first space.
func SplitChoice(choice string, catalog []models.CarChoice) (string, string) {
	choice = strings.TrimSpace(choice)
	for _, c := range catalog {
		if c.Label() == choice {
			return c.CarMake, c.CarModel
		}
	}
	carMake, carModel, _ := strings.Cut(choice, " ")
	return carMake, strings.TrimSpace(carModel)
}

// ReviewerName is "first last" from the session, or the username when both are empty.
func ReviewerName(user session.User) string {
	name := strings.TrimSpace(user.FirstName + " " + user.LastName)
	if name == "" {
		return user.Username
	}
	return name
}
