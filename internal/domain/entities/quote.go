package entities

import "time"

// QuoteStatus represents the back-office lifecycle of a quote request.
//
// Domain notes:
//   - Transitions are deliberately unconstrained: the dashboard may move a
//     quote from any status to any other. Last write wins.

type QuoteStatus string

const (
	QuoteStatusPending   QuoteStatus = "pending"
	QuoteStatusContacted QuoteStatus = "contacted"
	QuoteStatusCompleted QuoteStatus = "completed"
	QuoteStatusCancelled QuoteStatus = "cancelled"
)

// IsValid reports whether s is one of the known dashboard statuses.
func (s QuoteStatus) IsValid() bool {
	switch s {
	case QuoteStatusPending, QuoteStatusContacted, QuoteStatusCompleted, QuoteStatusCancelled:
		return true
	}
	return false
}

// Known service categories. The service field is stored verbatim even when it
// falls outside these values; analytics drops unknown categories silently.
const (
	ServiceMobile     = "mobile"
	ServiceWorkshop   = "workshop"
	ServiceCollection = "collection"
)

// WheelDetails carries the optional wheel sub-section of the quote wizard.
type WheelDetails struct {
	Size       string `json:"size,omitempty"`
	PaintColor string `json:"paint_color,omitempty"`
}

// TyreDetails carries the optional tyre sub-section of the quote wizard.
type TyreDetails struct {
	VehicleType     string `json:"vehicle_type,omitempty"`
	TyreCount       int    `json:"tyre_count,omitempty"`
	TyreSize        string `json:"tyre_size,omitempty"`
	WheelsOnly      bool   `json:"wheels_only,omitempty"`
	CurrentTyres    string `json:"current_tyres,omitempty"`
	PreferredBrands string `json:"preferred_brands,omitempty"`
}

// Quote is a customer quote request persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Timestamps:
//   - CreatedAt is always assigned from the server clock so insertion order
//     survives clients with skewed clocks.
//   - SubmittedAt is the client-reported time; advisory only, never used for
//     ordering or aggregation.
//
// Optional sub-details stay nil when the customer skipped that wizard step;
// they are never defaulted to placeholder values.
type Quote struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	Email            string        `json:"email"`
	Phone            string        `json:"phone"`
	Location         string        `json:"location"`
	Distance         *float64      `json:"distance,omitempty"`
	PreferredContact string        `json:"preferred_contact,omitempty"`
	Service          string        `json:"service"`
	ServiceTypes     []string      `json:"service_types"`
	WheelCount       *int          `json:"wheel_count,omitempty"`
	WheelDetails     *WheelDetails `json:"wheel_details,omitempty"`
	TyreDetails      *TyreDetails  `json:"tyre_details,omitempty"`
	HasPhotos        bool          `json:"has_photos"`
	PhotoCount       int           `json:"photo_count"`
	Notes            string        `json:"notes,omitempty"`
	SubmittedAt      *time.Time    `json:"submitted_at,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
	Status           QuoteStatus   `json:"status"`
}

// HasServiceType reports whether the quote carries the given service tag.
func (q Quote) HasServiceType(tag string) bool {
	for _, t := range q.ServiceTypes {
		if t == tag {
			return true
		}
	}
	return false
}
