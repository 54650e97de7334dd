package request

import (
	"time"

	"wheelworks/internal/domain/entities"
	"wheelworks/internal/usecase"
	"wheelworks/internal/usecase/interfaces"
)

type WheelDetailsRequest struct {
	Size       string `json:"size"`
	PaintColor string `json:"paint_color"`
}

type TyreDetailsRequest struct {
	VehicleType     string `json:"vehicle_type"`
	TyreCount       int    `json:"tyre_count"`
	TyreSize        string `json:"tyre_size"`
	WheelsOnly      bool   `json:"wheels_only"`
	CurrentTyres    string `json:"current_tyres"`
	PreferredBrands string `json:"preferred_brands"`
}

// QuoteRequest is the payload produced by the public quote wizard.
//
// `submitted_at` is the client's own clock and is stored as advisory data
// only; the server assigns the authoritative created_at.
type QuoteRequest struct {
	Name             string               `json:"name" binding:"required"`
	Email            string               `json:"email" binding:"required,email"`
	Phone            string               `json:"phone" binding:"required"`
	Location         string               `json:"location" binding:"required"`
	Distance         *float64             `json:"distance"`
	PreferredContact string               `json:"preferred_contact" binding:"omitempty,oneof=email phone"`
	Service          string               `json:"service" binding:"required"`
	ServiceTypes     []string             `json:"service_types" binding:"required,min=1"`
	WheelCount       *int                 `json:"wheel_count"`
	WheelDetails     *WheelDetailsRequest `json:"wheel_details"`
	TyreDetails      *TyreDetailsRequest  `json:"tyre_details"`
	Notes            string               `json:"notes"`
	SubmittedAt      *time.Time           `json:"submitted_at"`
}

// ToCommand translates the wire payload into the intake command. Absent
// optional sub-sections stay nil; they are never defaulted.
func (r QuoteRequest) ToCommand(photos []interfaces.Attachment) usecase.SubmitQuoteCommand {
	cmd := usecase.SubmitQuoteCommand{
		Name:             r.Name,
		Email:            r.Email,
		Phone:            r.Phone,
		Location:         r.Location,
		Distance:         r.Distance,
		PreferredContact: r.PreferredContact,
		Service:          r.Service,
		ServiceTypes:     r.ServiceTypes,
		WheelCount:       r.WheelCount,
		Notes:            r.Notes,
		SubmittedAt:      r.SubmittedAt,
		Photos:           photos,
	}
	if r.WheelDetails != nil {
		cmd.WheelDetails = &entities.WheelDetails{
			Size:       r.WheelDetails.Size,
			PaintColor: r.WheelDetails.PaintColor,
		}
	}
	if r.TyreDetails != nil {
		cmd.TyreDetails = &entities.TyreDetails{
			VehicleType:     r.TyreDetails.VehicleType,
			TyreCount:       r.TyreDetails.TyreCount,
			TyreSize:        r.TyreDetails.TyreSize,
			WheelsOnly:      r.TyreDetails.WheelsOnly,
			CurrentTyres:    r.TyreDetails.CurrentTyres,
			PreferredBrands: r.TyreDetails.PreferredBrands,
		}
	}
	return cmd
}

// QuoteStatusRequest is the dashboard's status-update payload.
type QuoteStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// LoginRequest carries the shared dashboard credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
