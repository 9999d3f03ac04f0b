package forms

import (
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"requestdesk/internal/request"
)

type TravelFields struct {
	Requester      string `form:"requester" validate:"required"`
	Destination    string `form:"destination" validate:"required"`
	Purpose        string `form:"purpose" validate:"required"`
	StartDate      string `form:"startDate" validate:"required"`
	EndDate        string `form:"endDate" validate:"required"`
	Transportation string `form:"transportation"`
	Accommodation  string `form:"accommodation"`
	Budget         string `form:"budget"`
	ProjectCode    string `form:"projectCode"`
	ClientMeeting  string `form:"clientMeeting"`
	ClientName     string `form:"clientName"`
	Urgency        string `form:"urgency"`
	Comments       string `form:"comments"`
}

// Travel is a business trip request.
type Travel struct {
	base[TravelFields]
}

func NewTravel() *Travel {
	return &Travel{base: newBase(request.CategoryTravel, TravelFields{})}
}

func (t *Travel) ShowsClientName() bool {
	return t.fields.ClientMeeting == "oui"
}

// TripSummary is the derived recap shown under the travel form.
type TripSummary struct {
	Destination string
	Days        int
	HasDays     bool
	Budget      string
}

// TripLengthDays returns ceil((end-start)/24h). ok is false when either date
// does not parse. The difference is taken in Unix seconds since a
// time.Duration cannot hold spans past about 292 years.
func TripLengthDays(start, end string) (days int, ok bool) {
	s, err := time.Parse(dateLayout, start)
	if err != nil {
		return 0, false
	}
	e, err := time.Parse(dateLayout, end)
	if err != nil {
		return 0, false
	}
	return int(math.Ceil(float64(e.Unix()-s.Unix()) / 86400)), true
}

// FormatBudget normalises a decimal amount to two places and returns any
// other input unchanged.
func FormatBudget(raw string) string {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return raw
	}
	return d.StringFixed(2)
}

// Summary is available once destination and both dates are set.
func (t *Travel) Summary() (TripSummary, bool) {
	f := t.fields
	if f.StartDate == "" || f.EndDate == "" || f.Destination == "" {
		return TripSummary{}, false
	}
	days, ok := TripLengthDays(f.StartDate, f.EndDate)
	s := TripSummary{
		Destination: f.Destination,
		Days:        days,
		HasDays:     ok,
	}
	if f.Budget != "" {
		s.Budget = FormatBudget(f.Budget)
	}
	return s, true
}
