package forms

import "requestdesk/internal/request"

type PurchaseFields struct {
	Requester  string `form:"requester" validate:"required"`
	DateNeeded string `form:"dateNeeded" validate:"required"`
	Item       string `form:"item" validate:"required"`
	Entity     string `form:"entity" validate:"required"`
	Quantity   string `form:"quantity"`
	URL        string `form:"url"`
	Comments   string `form:"comments"`
}

// Purchase is an equipment or service purchase request.
type Purchase struct {
	base[PurchaseFields]
}

func NewPurchase() *Purchase {
	return &Purchase{base: newBase(request.CategoryPurchase, PurchaseFields{Quantity: "1"})}
}

// LinkPreview returns the product link when one was entered.
func (p *Purchase) LinkPreview() (string, bool) {
	if p.fields.URL == "" {
		return "", false
	}
	return p.fields.URL, true
}
