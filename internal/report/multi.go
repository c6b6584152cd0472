package report

import "building-navigation-system/internal/building"

type multiReporter []building.Reporter

// Multi przekazuje każde zdarzenie do wszystkich podanych reporterów
func Multi(reporters ...building.Reporter) building.Reporter {
	var out multiReporter
	for _, r := range reporters {
		if r != nil {
			out = append(out, r)
		}
	}
	return out
}

func (m multiReporter) Report(e building.Event) {
	for _, r := range m {
		r.Report(e)
	}
}
