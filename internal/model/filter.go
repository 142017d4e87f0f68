package model

import "time"

// FilterCriteria is the multi-dimensional selection consumed from the UI
// layer: four optional categorical dimensions plus a mandatory inclusive
// date range. For the categorical sets an empty slice and the sentinel
// value 0 (or "0") both mean "unrestricted".
type FilterCriteria struct {
	Salespeople []int     `json:"salesperson"`
	Companies   []int     `json:"company"`
	States      []string  `json:"uf"`
	Sectors     []string  `json:"branch"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
}

// UnrestrictedInts reports whether an int dimension places no restriction:
// empty, or only the 0 sentinel selected.
func UnrestrictedInts(selected []int) bool {
	if len(selected) == 0 {
		return true
	}
	return len(selected) == 1 && selected[0] == 0
}

// UnrestrictedStrings reports whether a string dimension places no
// restriction. The UI sends the all-entry's value 0 as "0".
func UnrestrictedStrings(selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	return len(selected) == 1 && (selected[0] == "0" || selected[0] == "")
}
