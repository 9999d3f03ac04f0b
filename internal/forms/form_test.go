package forms

import (
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"requestdesk/internal/notify"
	"requestdesk/internal/request"
)

type recorder struct {
	sent []notify.Notification
}

func (r *recorder) Notify(title, description string, severity notify.Severity) {
	r.sent = append(r.sent, notify.Notification{Title: title, Description: description, Severity: severity})
}

func (r *recorder) last(t *testing.T) notify.Notification {
	t.Helper()
	require.NotEmpty(t, r.sent, "expected a notification")
	return r.sent[len(r.sent)-1]
}

var now = time.Date(2025, 9, 22, 10, 0, 0, 0, time.UTC)

// filled returns a form of category c with every required field set.
func filled(t *testing.T, c request.Category) Form {
	t.Helper()
	f, err := New(c, now)
	require.NoError(t, err)

	values := map[request.Category]url.Values{
		request.CategoryEthics: {
			"requester":     {"Dupont Jean, Commercial"},
			"country":       {"France"},
			"clientPartner": {"OSI-2024"},
		},
		request.CategoryVisit: {
			"requester": {"@Marie Martin"},
			"date":      {"2025-10-01"},
			"timeStart": {"09:00"},
			"timeEnd":   {"11:00"},
		},
		request.CategoryTravel: {
			"requester":   {"@Pierre Durant"},
			"destination": {"Berlin, Allemagne"},
			"purpose":     {"Salon"},
			"startDate":   {"2025-10-01"},
			"endDate":     {"2025-10-03"},
		},
		request.CategoryPurchase: {
			"requester":  {"@Sophie Leroy"},
			"item":       {"Clavier"},
			"entity":     {"sahar"},
			"dateNeeded": {"2025-10-10"},
		},
	}[c]
	require.NoError(t, f.Apply(values))
	return f
}

func requiredFields(c request.Category) []string {
	switch c {
	case request.CategoryEthics:
		return []string{"requester", "country", "clientPartner"}
	case request.CategoryVisit:
		return []string{"requester", "date", "timeStart", "timeEnd"}
	case request.CategoryTravel:
		return []string{"requester", "destination", "purpose", "startDate", "endDate"}
	case request.CategoryPurchase:
		return []string{"requester", "item", "entity", "dateNeeded"}
	}
	return nil
}

func TestSubmit_AllRequiredFilledSucceeds(t *testing.T) {
	want := map[request.Category]string{
		request.CategoryEthics:   "Votre demande de comité éthique a été soumise avec succès.",
		request.CategoryVisit:    "Votre demande de visite externe a été soumise avec succès.",
		request.CategoryTravel:   "Votre demande de voyage professionnel a été soumise avec succès.",
		request.CategoryPurchase: "Votre demande d'achat a été soumise avec succès.",
	}
	for _, c := range request.Categories {
		t.Run(string(c), func(t *testing.T) {
			f := filled(t, c)
			rec := &recorder{}

			require.NoError(t, f.Submit(rec))
			assert.Equal(t, StateSubmitted, f.State())

			n := rec.last(t)
			assert.Equal(t, "Demande soumise", n.Title)
			assert.Equal(t, want[c], n.Description)
			assert.Equal(t, notify.SeverityDefault, n.Severity)
		})
	}
}

func TestSubmit_EachMissingRequiredFieldFails(t *testing.T) {
	for _, c := range request.Categories {
		for _, name := range requiredFields(c) {
			t.Run(string(c)+"/"+name, func(t *testing.T) {
				f := filled(t, c)
				require.NoError(t, f.UpdateField(name, ""))
				rec := &recorder{}

				err := f.Submit(rec)
				var verr ValidationError
				require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
				assert.Equal(t, []string{name}, verr.Fields)
				assert.Equal(t, StateEditing, f.State())

				n := rec.last(t)
				assert.Equal(t, "Champs requis manquants", n.Title)
				assert.Equal(t, "Veuillez remplir tous les champs obligatoires.", n.Description)
				assert.Equal(t, notify.SeverityDestructive, n.Severity)
			})
		}
	}
}

func TestSubmit_WhitespaceCountsAsFilled(t *testing.T) {
	f := filled(t, request.CategoryPurchase)
	require.NoError(t, f.UpdateField("item", "   "))
	assert.NoError(t, f.Submit(&recorder{}))
}

func TestSubmit_FailedThenFixedSucceeds(t *testing.T) {
	f := NewTravel()
	rec := &recorder{}
	require.Error(t, f.Submit(rec))

	require.NoError(t, f.Apply(url.Values{
		"requester":   {"a"},
		"destination": {"b"},
		"purpose":     {"c"},
		"startDate":   {"2025-01-01"},
		"endDate":     {"2025-01-02"},
	}))
	require.NoError(t, f.Submit(rec))
	assert.Len(t, rec.sent, 2)
}

func TestSave_NotifiesDraftAndKeepsEditing(t *testing.T) {
	f := NewVisit()
	rec := &recorder{}
	f.Save(rec)

	n := rec.last(t)
	assert.Equal(t, "Brouillon sauvegardé", n.Title)
	assert.Equal(t, "Votre demande a été sauvegardée en tant que brouillon.", n.Description)
	assert.Equal(t, StateEditing, f.State())
}

func TestUpdateField_Idempotent(t *testing.T) {
	f := NewPurchase()
	require.NoError(t, f.UpdateField("item", "Écran 27\""))
	once := f.Fields()
	require.NoError(t, f.UpdateField("item", "Écran 27\""))
	assert.Equal(t, once, f.Fields())
	assert.Equal(t, "Écran 27\"", f.Values().Get("item"))
}

func TestUpdateField_UnknownNameRejected(t *testing.T) {
	f := NewPurchase()
	err := f.UpdateField("budget", "100")
	assert.ErrorIs(t, err, ErrUnknownField)
	assert.Equal(t, PurchaseFields{Quantity: "1"}, f.Fields())
}

func TestApply_IgnoresUnknownKeys(t *testing.T) {
	f := NewVisit()
	require.NoError(t, f.Apply(url.Values{
		"requester": {"@Jean"},
		"csrf":      {"x"},
		"room":      {"mer", "air"},
	}))
	got := f.Fields()
	assert.Equal(t, "@Jean", got.Requester)
	assert.Equal(t, "mer", got.Room)
	assert.Equal(t, "1", got.NumberOfGuests)
}

func TestDefaults(t *testing.T) {
	assert.Equal(t, "2025-09-22", NewEthics(now).Fields().RequestDate)
	assert.Equal(t, "1", NewVisit().Fields().NumberOfGuests)
	assert.Equal(t, "1", NewPurchase().Fields().Quantity)
	assert.Equal(t, TravelFields{}, NewTravel().Fields())

	_, err := New(request.Category("holiday"), now)
	assert.ErrorIs(t, err, request.ErrUnknownCategory)
}

func TestIsRequired(t *testing.T) {
	e := NewEthics(now)
	assert.True(t, e.IsRequired("clientPartner"))
	assert.False(t, e.IsRequired("product"))
	assert.False(t, e.IsRequired("nope"))
}

func TestValidationError_Message(t *testing.T) {
	err := ValidationError{Code: "REQUIRED_FIELDS_MISSING", Message: "required fields are empty", Fields: []string{"requester", "item"}}
	assert.Equal(t, "REQUIRED_FIELDS_MISSING: required fields are empty (requester, item)", err.Error())
}
