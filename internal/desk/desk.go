// Package desk ties one session's view router, active form and notifications
// together.
package desk

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"requestdesk/internal/forms"
	"requestdesk/internal/notify"
	"requestdesk/internal/request"
)

var ErrNoActiveForm = errors.New("no active form")

// ViewMismatchError is returned when a form operation targets a category
// other than the one on screen.
type ViewMismatchError struct {
	Want    request.Category
	Current request.View
}

func (e ViewMismatchError) Error() string {
	return fmt.Sprintf("form %s is not open (current view %s)", e.Want, e.Current)
}

// Observer is told about navigations and form outcomes. Metrics use it.
type Observer interface {
	Navigated(v request.View)
	DraftSaved(c request.Category)
	Submitted(c request.Category, ok bool)
}

type nopObserver struct{}

func (nopObserver) Navigated(request.View)           {}
func (nopObserver) DraftSaved(request.Category)      {}
func (nopObserver) Submitted(request.Category, bool) {}

type Desk struct {
	router   *request.Router
	form     forms.Form
	notes    *notify.Center
	observer Observer
	now      func() time.Time
}

type Option func(*Desk)

func WithObserver(o Observer) Option {
	return func(d *Desk) {
		if o != nil {
			d.observer = o
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(d *Desk) { d.now = now }
}

func New(opts ...Option) *Desk {
	d := &Desk{
		router:   request.NewRouter(),
		notes:    notify.NewCenter(),
		observer: nopObserver{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Desk) View() request.View { return d.router.Current() }

// Form returns the form on screen, or nil on the dashboard and request list.
func (d *Desk) Form() forms.Form { return d.form }

func (d *Desk) Notifications() *notify.Center { return d.notes }

// CreateRequest opens a fresh form. Earlier input for the category is not
// resumed.
func (d *Desk) CreateRequest(c request.Category) error {
	f, err := forms.New(c, d.now())
	if err != nil {
		return err
	}
	d.form = f
	d.router.CreateRequest(c)
	d.observer.Navigated(d.router.Current())
	return nil
}

func (d *Desk) ViewRequests(c *request.Category) {
	d.form = nil
	d.router.ViewRequests(c)
	d.observer.Navigated(d.router.Current())
}

// Back returns to the dashboard and discards any open form.
func (d *Desk) Back() {
	d.form = nil
	d.router.Back()
	d.observer.Navigated(d.router.Current())
}

// ActiveForm returns the open form when it belongs to c.
func (d *Desk) ActiveForm(c request.Category) (forms.Form, error) {
	if d.form == nil {
		return nil, ErrNoActiveForm
	}
	if d.form.Category() != c {
		return nil, ViewMismatchError{Want: c, Current: d.router.Current()}
	}
	return d.form, nil
}

func (d *Desk) UpdateField(c request.Category, name, value string) error {
	f, err := d.ActiveForm(c)
	if err != nil {
		return err
	}
	return f.UpdateField(name, value)
}

func (d *Desk) Apply(c request.Category, values url.Values) error {
	f, err := d.ActiveForm(c)
	if err != nil {
		return err
	}
	return f.Apply(values)
}

func (d *Desk) Save(c request.Category) error {
	f, err := d.ActiveForm(c)
	if err != nil {
		return err
	}
	f.Save(d.notes)
	d.observer.DraftSaved(c)
	return nil
}

// Submit validates the open form. A ValidationError keeps the form on screen
// and is not returned; success goes back to the dashboard. ok reports which.
func (d *Desk) Submit(c request.Category) (ok bool, err error) {
	f, err := d.ActiveForm(c)
	if err != nil {
		return false, err
	}

	if err := f.Submit(d.notes); err != nil {
		var verr forms.ValidationError
		if errors.As(err, &verr) {
			d.observer.Submitted(c, false)
			return false, nil
		}
		return false, err
	}

	d.observer.Submitted(c, true)
	d.Back()
	return true, nil
}
