package response

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"wheelworks/internal/domain/entities"
)

func TestFromQuote(t *testing.T) {
	distance := 7.0
	created := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)

	t.Run("exposes the id under both aliases", func(t *testing.T) {
		res := FromQuote(entities.Quote{ID: "q-1", CreatedAt: created, Status: entities.QuoteStatusPending})
		if res.ID != "q-1" || res.QuoteID != "q-1" {
			t.Fatalf("expected both aliases set, got id=%q quote_id=%q", res.ID, res.QuoteID)
		}
		if res.Status != "pending" {
			t.Fatalf("expected pending, got %q", res.Status)
		}
	})

	t.Run("maps nested details", func(t *testing.T) {
		res := FromQuote(entities.Quote{
			ID:           "q-1",
			Distance:     &distance,
			WheelDetails: &entities.WheelDetails{Size: "18\"", PaintColor: "gunmetal"},
			TyreDetails:  &entities.TyreDetails{VehicleType: "car", TyreCount: 2},
		})
		if res.Distance == nil || *res.Distance != 7 {
			t.Fatalf("expected distance 7, got %v", res.Distance)
		}
		if res.WheelDetails == nil || res.WheelDetails.Size != "18\"" {
			t.Fatalf("unexpected wheel details: %+v", res.WheelDetails)
		}
		if res.TyreDetails == nil || res.TyreDetails.VehicleType != "car" {
			t.Fatalf("unexpected tyre details: %+v", res.TyreDetails)
		}
	})

	t.Run("absent optionals stay out of the json", func(t *testing.T) {
		res := FromQuote(entities.Quote{ID: "q-1", CreatedAt: created, Status: entities.QuoteStatusPending})
		raw, err := json.Marshal(res)
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		body := string(raw)
		for _, field := range []string{"distance", "wheel_details", "tyre_details", "submitted_at"} {
			if strings.Contains(body, `"`+field+`"`) {
				t.Fatalf("expected %q omitted, got %s", field, body)
			}
		}
	})
}
