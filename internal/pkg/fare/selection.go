package fare

// Selection state machine. The committed price at booking time must always
// reflect the latest fare data for the fare code the agent actually picked,
// so every row-list refresh re-evaluates the selection.

type SelectionState string

const (
	StateUnset        SelectionState = "UNSET"
	StateAutoSelected SelectionState = "AUTO_SELECTED"
	StateUserSelected SelectionState = "USER_SELECTED"
	// StateStale marks a selection whose row list changed underneath it.
	// Sync resolves it in the same pass, so it is only observable between
	// detecting the change and re-resolving.
	StateStale    SelectionState = "STALE"
	StateResynced SelectionState = "RESYNCED"
)

// Selection is the chosen {row, fare} pair for one direction of travel.
type Selection struct {
	RowID string         `json:"row_id"`
	Fare  Option         `json:"fare"`
	State SelectionState `json:"state"`
}

// Transition reports what Sync did to a selection.
type Transition string

const (
	TransitionNone         Transition = "none"
	TransitionAutoSelected Transition = "auto_selected"
	TransitionResynced     Transition = "resynced"
	TransitionRefreshed    Transition = "refreshed"
)

// Choose records an explicit fare pick by the user.
func Choose(rowID string, fare Option) Selection {
	return Selection{RowID: rowID, Fare: fare, State: StateUserSelected}
}

// Sync reconciles a selection against the current row list. Rules:
//
//   - no selection yet and rows exist: auto-select the cheapest fare of the
//     first row
//   - the selected row vanished from the list: re-run auto-select
//   - the selected row survived but the matching fare's content changed
//     (price, cabin, label, refundability): keep rowID and fare code, refresh
//     the fare object in place so the user's tier choice is preserved against
//     the latest data
//   - otherwise: no transition
//
// Sync is idempotent: applying it twice with unchanged inputs produces no
// further transition.
func Sync(rows []Row, current Selection) (Selection, Transition) {
	if len(rows) == 0 {
		return current, TransitionNone
	}

	if current.State == StateUnset || current.RowID == "" {
		return autoSelect(rows, StateAutoSelected), TransitionAutoSelected
	}

	row, found := rowByID(rows, current.RowID)
	if !found {
		return autoSelect(rows, StateResynced), TransitionResynced
	}

	latest, found := row.FareByCode(current.Fare.Code)
	if !found {
		return autoSelect(rows, StateResynced), TransitionResynced
	}

	if fareChanged(current.Fare, latest) {
		refreshed := current
		refreshed.Fare = latest
		refreshed.State = StateResynced

		return refreshed, TransitionRefreshed
	}

	return current, TransitionNone
}

func autoSelect(rows []Row, state SelectionState) Selection {
	first := rows[0]

	cheapest, ok := first.CheapestFare()
	if !ok {
		return Selection{RowID: first.ID, State: state}
	}

	return Selection{RowID: first.ID, Fare: cheapest, State: state}
}

func rowByID(rows []Row, id string) (Row, bool) {
	for _, row := range rows {
		if row.ID == id {
			return row, true
		}
	}

	return Row{}, false
}

func fareChanged(previous, latest Option) bool {
	return previous.SellINR != latest.SellINR ||
		previous.Cabin != latest.Cabin ||
		previous.Label != latest.Label ||
		previous.Refundable != latest.Refundable ||
		!ptrEqual(previous.AgentNetINR, latest.AgentNetINR) ||
		!ptrEqual(previous.CommissionINR, latest.CommissionINR)
}

func ptrEqual(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}
