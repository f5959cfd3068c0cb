package a

import "regexp"

func bad(names []string) {
	for _, name := range names {
		re := regexp.MustCompile(`^decisionlog_`) // want "regexp.MustCompile called inside loop"
		_ = re.MatchString(name)
	}
}

func badCompile(names []string) {
	for _, name := range names {
		re, _ := regexp.Compile(`^decisionlog_`) // want "regexp.Compile called inside loop"
		_ = re.MatchString(name)
	}
}

func good(names []string) {
	re := regexp.MustCompile(`^decisionlog_`)
	for _, name := range names {
		_ = re.MatchString(name)
	}
}

var journalName = regexp.MustCompile(`^decisionlog_`)

func goodGlobal(names []string) {
	for _, name := range names {
		_ = journalName.MatchString(name)
	}
}
