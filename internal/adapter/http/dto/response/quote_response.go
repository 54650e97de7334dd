package response

import (
	"time"

	"wheelworks/internal/domain/entities"
)

type WheelDetailsResponse struct {
	Size       string `json:"size,omitempty"`
	PaintColor string `json:"paint_color,omitempty"`
}

type TyreDetailsResponse struct {
	VehicleType     string `json:"vehicle_type,omitempty"`
	TyreCount       int    `json:"tyre_count,omitempty"`
	TyreSize        string `json:"tyre_size,omitempty"`
	WheelsOnly      bool   `json:"wheels_only"`
	CurrentTyres    string `json:"current_tyres,omitempty"`
	PreferredBrands string `json:"preferred_brands,omitempty"`
}

type QuoteResponse struct {
	QuoteID          string                `json:"quote_id"`
	ID               string                `json:"id"`
	Name             string                `json:"name"`
	Email            string                `json:"email"`
	Phone            string                `json:"phone"`
	Location         string                `json:"location"`
	Distance         *float64              `json:"distance,omitempty"`
	PreferredContact string                `json:"preferred_contact,omitempty"`
	Service          string                `json:"service"`
	ServiceTypes     []string              `json:"service_types"`
	WheelCount       *int                  `json:"wheel_count,omitempty"`
	WheelDetails     *WheelDetailsResponse `json:"wheel_details,omitempty"`
	TyreDetails      *TyreDetailsResponse  `json:"tyre_details,omitempty"`
	HasPhotos        bool                  `json:"has_photos"`
	PhotoCount       int                   `json:"photo_count"`
	Notes            string                `json:"notes,omitempty"`
	SubmittedAt      *time.Time            `json:"submitted_at,omitempty"`
	CreatedAt        time.Time             `json:"created_at"`
	Status           string                `json:"status"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	res := QuoteResponse{
		QuoteID:          q.ID,
		ID:               q.ID,
		Name:             q.Name,
		Email:            q.Email,
		Phone:            q.Phone,
		Location:         q.Location,
		Distance:         q.Distance,
		PreferredContact: q.PreferredContact,
		Service:          q.Service,
		ServiceTypes:     q.ServiceTypes,
		WheelCount:       q.WheelCount,
		HasPhotos:        q.HasPhotos,
		PhotoCount:       q.PhotoCount,
		Notes:            q.Notes,
		SubmittedAt:      q.SubmittedAt,
		CreatedAt:        q.CreatedAt,
		Status:           string(q.Status),
	}
	if q.WheelDetails != nil {
		res.WheelDetails = &WheelDetailsResponse{
			Size:       q.WheelDetails.Size,
			PaintColor: q.WheelDetails.PaintColor,
		}
	}
	if q.TyreDetails != nil {
		res.TyreDetails = &TyreDetailsResponse{
			VehicleType:     q.TyreDetails.VehicleType,
			TyreCount:       q.TyreDetails.TyreCount,
			TyreSize:        q.TyreDetails.TyreSize,
			WheelsOnly:      q.TyreDetails.WheelsOnly,
			CurrentTyres:    q.TyreDetails.CurrentTyres,
			PreferredBrands: q.TyreDetails.PreferredBrands,
		}
	}
	return res
}

// QuoteSubmittedResponse is the intake acknowledgement: the generated id is
// all a caller needs to reference the quote later.
type QuoteSubmittedResponse struct {
	QuoteID string `json:"quote_id"`
	ID      string `json:"id"`
	Status  string `json:"status"`
}

func FromSubmittedQuote(q entities.Quote) QuoteSubmittedResponse {
	return QuoteSubmittedResponse{QuoteID: q.ID, ID: q.ID, Status: string(q.Status)}
}
