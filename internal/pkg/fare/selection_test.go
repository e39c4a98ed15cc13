//go:build unit

package fare

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSync_Closure(t *testing.T) {
	syncRequest := func(rows []Row, current Selection, wantSel Selection, wantTr Transition) func(t *testing.T) {
		return func(t *testing.T) {
			gotSel, gotTr := Sync(rows, current)

			if gotTr != wantTr {
				t.Fatalf("Sync transition = %s, want %s", gotTr, wantTr)
			}

			if diff := cmp.Diff(wantSel, gotSel); diff != "" {
				t.Fatalf("Sync selection mismatch (-want +got):\n%s", diff)
			}
		}
	}

	fareA := Option{Code: "A", SellINR: 5000}
	fareB := Option{Code: "B", SellINR: 4500, AgentNetINR: ptrInt64(4000)}

	rows := []Row{
		{ID: "row-1", Airline: "IndiGo", Fares: []Option{fareA, fareB}},
		{ID: "row-2", Airline: "Vistara", Fares: []Option{{Code: "C", SellINR: 6000}}},
	}

	t.Run("empty_selection_auto_selects_cheapest_of_first_row", syncRequest(
		rows, Selection{},
		Selection{RowID: "row-1", Fare: fareB, State: StateAutoSelected},
		TransitionAutoSelected,
	))

	t.Run("vanished_row_resyncs", syncRequest(
		rows, Selection{RowID: "row-9", Fare: fareA, State: StateUserSelected},
		Selection{RowID: "row-1", Fare: fareB, State: StateResynced},
		TransitionResynced,
	))

	t.Run("vanished_fare_code_resyncs", syncRequest(
		rows, Selection{RowID: "row-1", Fare: Option{Code: "Z", SellINR: 7000}, State: StateUserSelected},
		Selection{RowID: "row-1", Fare: fareB, State: StateResynced},
		TransitionResynced,
	))

	t.Run("changed_fare_refreshes_in_place", syncRequest(
		rows, Selection{RowID: "row-1", Fare: Option{Code: "B", SellINR: 4300}, State: StateUserSelected},
		Selection{RowID: "row-1", Fare: fareB, State: StateResynced},
		TransitionRefreshed,
	))

	t.Run("unchanged_selection_is_noop", syncRequest(
		rows, Selection{RowID: "row-1", Fare: fareB, State: StateUserSelected},
		Selection{RowID: "row-1", Fare: fareB, State: StateUserSelected},
		TransitionNone,
	))

	t.Run("empty_rows_keep_selection", syncRequest(
		nil, Selection{RowID: "row-1", Fare: fareA, State: StateUserSelected},
		Selection{RowID: "row-1", Fare: fareA, State: StateUserSelected},
		TransitionNone,
	))
}

func TestSync_Idempotent(t *testing.T) {
	rows := []Row{
		{ID: "row-1", Fares: []Option{
			{Code: "A", SellINR: 5000},
			{Code: "B", SellINR: 4500},
		}},
	}

	first, tr := Sync(rows, Selection{})
	if tr != TransitionAutoSelected {
		t.Fatalf("first Sync transition = %s, want %s", tr, TransitionAutoSelected)
	}

	second, tr := Sync(rows, first)
	if tr != TransitionNone {
		t.Fatalf("second Sync transition = %s, want %s", tr, TransitionNone)
	}

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("second Sync changed the selection (-first +second):\n%s", diff)
	}
}

func TestChoose(t *testing.T) {
	selection := Choose("row-2", Option{Code: "C", SellINR: 6000})

	if selection.State != StateUserSelected {
		t.Fatalf("Choose state = %s, want %s", selection.State, StateUserSelected)
	}

	if selection.RowID != "row-2" || selection.Fare.Code != "C" {
		t.Fatalf("Choose stored wrong pair: %+v", selection)
	}
}
