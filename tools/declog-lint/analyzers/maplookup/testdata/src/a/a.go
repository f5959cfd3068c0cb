package a

func bad(ratings map[string]int, decisionID string) {
	if ratings[decisionID] != 0 {
		record(ratings[decisionID]) // want "repeated map lookup"
	}
}

func badWithPointer(open map[string]*int, fileID string) {
	if open[fileID] != nil {
		use(open[fileID]) // want "repeated map lookup"
	}
}

func good(ratings map[string]int, decisionID string) {
	if v := ratings[decisionID]; v != 0 {
		record(v)
	}
}

func goodCommaOk(ratings map[string]int, decisionID string) {
	if v, ok := ratings[decisionID]; ok {
		record(v)
	}
}

func goodDifferentKeys(ratings map[string]int, first, second string) {
	if ratings[first] != 0 {
		record(ratings[second]) // Different keys - OK
	}
}

func record(v int) {}
func use(v *int)   {}
