package types

// RenameResult holds the outcome of a rename attempt for a single file
type RenameResult struct {
	OldName string `json:"old_name"`
	NewName string `json:"new_name"`
	Renamed bool   `json:"renamed"`
	Error   error  `json:"error,omitempty"`
}

// Summary totals one run of the renamer.
type Summary struct {
	Matched int            `json:"matched"`
	Renamed int            `json:"renamed"`
	Errors  int            `json:"errors"`
	Results []RenameResult `json:"results,omitempty"`
}

// Add records a result and updates the counters.
func (s *Summary) Add(r RenameResult) {
	s.Results = append(s.Results, r)
	if r.Error != nil {
		s.Errors++
		return
	}
	if r.Renamed {
		s.Renamed++
	}
}
