package forms

import "requestdesk/internal/request"

type VisitFields struct {
	Requester       string `form:"requester" validate:"required"`
	NumberOfGuests  string `form:"numberOfGuests"`
	Date            string `form:"date" validate:"required"`
	TimeStart       string `form:"timeStart" validate:"required"`
	TimeEnd         string `form:"timeEnd" validate:"required"`
	VisitorType     string `form:"visitorType"`
	ClientNumber    string `form:"clientNumber"`
	NeedsCatering   string `form:"needsCatering"`
	Location        string `form:"location"`
	Room            string `form:"room"`
	DeliveryTime    string `form:"deliveryTime"`
	Allergies       string `form:"allergies"`
	ClientReference string `form:"clientReference"`
	Comments        string `form:"comments"`
}

// Visit schedules an external visitor.
type Visit struct {
	base[VisitFields]
}

func NewVisit() *Visit {
	return &Visit{base: newBase(request.CategoryVisit, VisitFields{NumberOfGuests: "1"})}
}

func (v *Visit) ShowsClientNumber() bool {
	return v.fields.VisitorType == "client"
}

func (v *Visit) ShowsCateringDetails() bool {
	return v.fields.NeedsCatering == "oui"
}

// Rooms lists the rooms of the selected site. A room picked on another
// site is kept as typed.
func (v *Visit) Rooms() []Option {
	return RoomOptions(v.fields.Location)
}
