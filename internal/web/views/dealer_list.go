package views

import (
	"context"
	"sort"
	"strconv"

	"github.com/princeprakhar/dealership-reviews/internal/models"
	"github.com/princeprakhar/dealership-reviews/internal/types"
	"github.com/princeprakhar/dealership-reviews/internal/web/session"
)

type DealerRow struct {
	Dealer     models.Dealer
	DetailPath string
	ReviewPath string // empty unless a user is logged in
}

type DealerList struct {
	api      API
	session  session.Store
	Dealers  []models.Dealer
	States   []string
	Selected string
}

func NewDealerList(api API, store session.Store) *DealerList {
	return &DealerList{api: api, session: store, Selected: types.AllStates}
}

// Load fetches every dealer and derives the state filter options from them.
func (v *DealerList) Load(ctx context.Context) {
	dealers, err := v.api.GetDealers(ctx, "")
	if err != nil {
		logFetchFailure("dealers", "/get_dealers/", err)
		v.Dealers, v.States = nil, nil
		return
	}
	v.Dealers = dealers
	v.States = DistinctStates(dealers)
}

// FilterByState replaces the displayed dealers with those of state. The state
// options are left as loaded.
func (v *DealerList) FilterByState(ctx context.Context, state string) {
	if state == "" {
		state = types.AllStates
	}
	v.Selected = state

	dealers, err := v.api.GetDealers(ctx, state)
	if err != nil {
		logFetchFailure("dealers", "/get_dealers/"+state, err)
		v.Dealers = nil
		return
	}
	v.Dealers = dealers
}

func (v *DealerList) Rows() []DealerRow {
	_, loggedIn := v.session.Current()
	rows := make([]DealerRow, 0, len(v.Dealers))
	for _, d := range v.Dealers {
		id := strconv.Itoa(d.ID)
		row := DealerRow{Dealer: d, DetailPath: "/dealer/" + id}
		if loggedIn {
			row.ReviewPath = "/postreview/" + id
		}
		rows = append(rows, row)
	}
	return rows
}

// DistinctStates returns the non-empty states of dealers, deduplicated and sorted.
func DistinctStates(dealers []models.Dealer) []string {
	seen := make(map[string]struct{})
	states := make([]string, 0)
	for _, d := range dealers {
		if d.State == "" {
			continue
		}
		if _, ok := seen[d.State]; ok {
			continue
		}
		seen[d.State] = struct{}{}
		states = append(states, d.State)
	}
	sort.Strings(states)
	return states
}
