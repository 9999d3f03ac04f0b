package request

import (
	"errors"
	"fmt"
)

var ErrUnknownView = errors.New("unknown view")

type View string

const (
	ViewDashboard View = "dashboard"
	ViewEthics    View = "ethics"
	ViewVisit     View = "visit"
	ViewTravel    View = "travel"
	ViewPurchase  View = "purchase"
	ViewRequests  View = "requests"
)

func ParseView(s string) (View, error) {
	switch View(s) {
	case ViewDashboard, ViewEthics, ViewVisit, ViewTravel, ViewPurchase, ViewRequests:
		return View(s), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownView, s)
	}
}

// FormView maps a category to the view that renders its form.
func FormView(c Category) View {
	return View(c)
}

// Category reports the category whose form v renders.
func (v View) Category() (Category, bool) {
	switch v {
	case ViewEthics, ViewVisit, ViewTravel, ViewPurchase:
		return Category(v), true
	default:
		return "", false
	}
}

// Router holds the single current view. There is no history: Back always
// lands on the dashboard.
type Router struct {
	current View
}

func NewRouter() *Router {
	return &Router{current: ViewDashboard}
}

func (r *Router) Current() View {
	return r.current
}

func (r *Router) CreateRequest(c Category) {
	r.current = FormView(c)
}

// ViewRequests switches to the request list. The category filter is accepted
// for parity with the dashboard buttons but not applied.
func (r *Router) ViewRequests(_ *Category) {
	r.current = ViewRequests
}

func (r *Router) Back() {
	r.current = ViewDashboard
}
