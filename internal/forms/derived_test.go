package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTripLengthDays(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		want       int
		ok         bool
	}{
		{"two days", "2025-01-01", "2025-01-03", 2, true},
		{"same day", "2025-01-01", "2025-01-01", 0, true},
		{"across month", "2025-01-30", "2025-02-02", 3, true},
		{"end before start", "2025-01-03", "2025-01-01", -2, true},
		{"centuries apart", "2025-01-01", "2400-01-01", 136965, true},
		{"calendar bounds", "0001-01-01", "9999-12-31", 3652058, true},
		{"bad start", "01/01/2025", "2025-01-03", 0, false},
		{"bad end", "2025-01-01", "", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TripLengthDays(tt.start, tt.end)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTravelSummary_NeedsDestinationAndDates(t *testing.T) {
	tr := NewTravel()
	require.NoError(t, tr.UpdateField("startDate", "2025-01-01"))
	require.NoError(t, tr.UpdateField("endDate", "2025-01-03"))
	_, ok := tr.Summary()
	assert.False(t, ok)

	require.NoError(t, tr.UpdateField("destination", "Berlin"))
	s, ok := tr.Summary()
	require.True(t, ok)
	assert.Equal(t, TripSummary{Destination: "Berlin", Days: 2, HasDays: true}, s)

	require.NoError(t, tr.UpdateField("budget", "1500"))
	s, _ = tr.Summary()
	assert.Equal(t, "1500.00", s.Budget)

	require.NoError(t, tr.UpdateField("budget", "environ 1500"))
	s, _ = tr.Summary()
	assert.Equal(t, "environ 1500", s.Budget)
}

func TestTravel_ClientNameShownOnMeeting(t *testing.T) {
	tr := NewTravel()
	assert.False(t, tr.ShowsClientName())
	require.NoError(t, tr.UpdateField("clientMeeting", "oui"))
	assert.True(t, tr.ShowsClientName())
	require.NoError(t, tr.UpdateField("clientMeeting", "non"))
	assert.False(t, tr.ShowsClientName())
}

func TestVisit_RoomsFollowLocation(t *testing.T) {
	v := NewVisit()
	assert.Empty(t, v.Rooms())

	require.NoError(t, v.UpdateField("location", "fromentin"))
	var values []string
	for _, o := range v.Rooms() {
		values = append(values, o.Value)
	}
	assert.Equal(t, []string{"terre", "mer", "air", "pierre", "brique"}, values)

	require.NoError(t, v.UpdateField("room", "terre"))
	require.NoError(t, v.UpdateField("location", "lepic"))
	require.Len(t, v.Rooms(), 1)
	assert.Equal(t, "sous-sol", v.Rooms()[0].Value)
	assert.Equal(t, "terre", v.Fields().Room)
}

func TestVisit_ConditionalFields(t *testing.T) {
	v := NewVisit()
	assert.False(t, v.ShowsClientNumber())
	assert.False(t, v.ShowsCateringDetails())

	require.NoError(t, v.UpdateField("visitorType", "client"))
	require.NoError(t, v.UpdateField("needsCatering", "oui"))
	assert.True(t, v.ShowsClientNumber())
	assert.True(t, v.ShowsCateringDetails())

	require.NoError(t, v.UpdateField("visitorType", "partner"))
	assert.False(t, v.ShowsClientNumber())
}

func TestPurchase_LinkPreview(t *testing.T) {
	p := NewPurchase()
	_, ok := p.LinkPreview()
	assert.False(t, ok)

	require.NoError(t, p.UpdateField("url", "https://www.amazon.fr/dp/B0"))
	link, ok := p.LinkPreview()
	assert.True(t, ok)
	assert.Equal(t, "https://www.amazon.fr/dp/B0", link)

	require.NoError(t, p.UpdateField("url", ""))
	_, ok = p.LinkPreview()
	assert.False(t, ok)
}
