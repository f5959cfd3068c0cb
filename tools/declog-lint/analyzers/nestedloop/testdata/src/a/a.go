package a

type Decision struct {
	ID string
}

func bad(decisions []Decision) {
	for _, a := range decisions {
		for _, b := range decisions { // want "O\\(n²\\) pattern: nested loop over same collection"
			if a.ID != b.ID {
				_ = a.ID + b.ID
			}
		}
	}
}

func good(decisions []Decision, archived []Decision) {
	// Different collections - OK
	for _, a := range decisions {
		for _, b := range archived {
			_ = a.ID + b.ID
		}
	}
}

func goodSingleLoop(decisions []Decision) {
	// Single loop - OK
	for _, dec := range decisions {
		_ = dec.ID
	}
}
