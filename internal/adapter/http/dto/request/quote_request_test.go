package request

import (
	"testing"
	"time"

	"wheelworks/internal/usecase/interfaces"
)

func TestQuoteRequest_ToCommand(t *testing.T) {
	t.Run("maps scalar fields and photos", func(t *testing.T) {
		distance := 12.5
		wheels := 4
		submitted := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)

		r := QuoteRequest{
			Name:             "Jamie Fox",
			Email:            "jamie@example.com",
			Phone:            "07700 900123",
			Location:         "Exeter, Devon",
			Distance:         &distance,
			PreferredContact: "phone",
			Service:          "mobile",
			ServiceTypes:     []string{"diamond-cut", "mobile"},
			WheelCount:       &wheels,
			Notes:            "kerbed",
			SubmittedAt:      &submitted,
		}
		photos := []interfaces.Attachment{{FileName: "front.jpg"}}

		cmd := r.ToCommand(photos)
		if cmd.Name != "Jamie Fox" || cmd.Service != "mobile" || cmd.PreferredContact != "phone" {
			t.Fatalf("unexpected command: %+v", cmd)
		}
		if cmd.Distance == nil || *cmd.Distance != 12.5 {
			t.Fatalf("expected distance 12.5, got %v", cmd.Distance)
		}
		if cmd.WheelCount == nil || *cmd.WheelCount != 4 {
			t.Fatalf("expected wheel count 4, got %v", cmd.WheelCount)
		}
		if cmd.SubmittedAt == nil || !cmd.SubmittedAt.Equal(submitted) {
			t.Fatalf("expected submitted_at %v, got %v", submitted, cmd.SubmittedAt)
		}
		if len(cmd.Photos) != 1 || cmd.Photos[0].FileName != "front.jpg" {
			t.Fatalf("expected photo pass-through, got %+v", cmd.Photos)
		}
	})

	t.Run("absent sub-details stay nil", func(t *testing.T) {
		cmd := QuoteRequest{Name: "Jamie"}.ToCommand(nil)
		if cmd.WheelDetails != nil || cmd.TyreDetails != nil {
			t.Fatalf("expected nil details, got %+v / %+v", cmd.WheelDetails, cmd.TyreDetails)
		}
	})

	t.Run("maps nested details", func(t *testing.T) {
		r := QuoteRequest{
			WheelDetails: &WheelDetailsRequest{Size: "18\"", PaintColor: "gunmetal"},
			TyreDetails: &TyreDetailsRequest{
				VehicleType:     "car",
				TyreCount:       2,
				TyreSize:        "225/45R18",
				WheelsOnly:      true,
				CurrentTyres:    "worn",
				PreferredBrands: "Michelin",
			},
		}
		cmd := r.ToCommand(nil)
		if cmd.WheelDetails == nil || cmd.WheelDetails.Size != "18\"" || cmd.WheelDetails.PaintColor != "gunmetal" {
			t.Fatalf("unexpected wheel details: %+v", cmd.WheelDetails)
		}
		if cmd.TyreDetails == nil || cmd.TyreDetails.VehicleType != "car" || cmd.TyreDetails.TyreCount != 2 || !cmd.TyreDetails.WheelsOnly {
			t.Fatalf("unexpected tyre details: %+v", cmd.TyreDetails)
		}
	})
}
