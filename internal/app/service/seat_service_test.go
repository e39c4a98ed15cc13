//go:build unit

package service_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/tripdesk/fareview-service/internal/app/dto"
	"github.com/tripdesk/fareview-service/internal/app/service"
)

func TestSeatService_ApplySelection(t *testing.T) {
	t.Parallel()

	svc := service.NewSeatService()

	t.Run("seat added within cap", func(t *testing.T) {
		t.Parallel()

		resp, err := svc.ApplySelection(context.Background(), dto.SeatSelectionRequest{
			Passengers: map[string]interface{}{"adults": 2},
			Leg:        "onward",
			Seat:       "12A",
		})

		assert.NoError(t, err)
		assert.Equal(t, 2, resp.Cap)
		assert.Empty(t, resp.Warning)
		if diff := cmp.Diff([]string{"12A"}, resp.Selected["onward"]); diff != "" {
			t.Errorf("selected mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("cap violation returns warning with unchanged selection", func(t *testing.T) {
		t.Parallel()

		resp, err := svc.ApplySelection(context.Background(), dto.SeatSelectionRequest{
			Passengers: map[string]interface{}{"adults": 1},
			Selected:   map[string][]string{"onward": {"12A"}},
			Leg:        "onward",
			Seat:       "12B",
		})

		assert.NoError(t, err)
		assert.Equal(t, "you can select up to 1 seat(s) for this leg", resp.Warning)
		if diff := cmp.Diff([]string{"12A"}, resp.Selected["onward"]); diff != "" {
			t.Errorf("selected mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("reselecting a seat toggles it off", func(t *testing.T) {
		t.Parallel()

		resp, err := svc.ApplySelection(context.Background(), dto.SeatSelectionRequest{
			Passengers: map[string]interface{}{"adults": 1},
			Selected:   map[string][]string{"onward": {"12A"}},
			Leg:        "onward",
			Seat:       "12A",
		})

		assert.NoError(t, err)
		assert.Empty(t, resp.Warning)
		assert.Empty(t, resp.Selected["onward"])
	})

	t.Run("return leg rejected on one way trips", func(t *testing.T) {
		t.Parallel()

		_, err := svc.ApplySelection(context.Background(), dto.SeatSelectionRequest{
			Passengers: map[string]interface{}{"adults": 1},
			RoundTrip:  false,
			Leg:        "return",
			Seat:       "12A",
		})

		assert.Error(t, err)
	})

	t.Run("round trip caps are per leg", func(t *testing.T) {
		t.Parallel()

		resp, err := svc.ApplySelection(context.Background(), dto.SeatSelectionRequest{
			Passengers: map[string]interface{}{"adults": 1},
			RoundTrip:  true,
			Selected:   map[string][]string{"onward": {"12A"}},
			Leg:        "return",
			Seat:       "14C",
		})

		assert.NoError(t, err)
		assert.Empty(t, resp.Warning)
		if diff := cmp.Diff([]string{"14C"}, resp.Selected["return"]); diff != "" {
			t.Errorf("selected mismatch (-want +got):\n%s", diff)
		}
	})
}
