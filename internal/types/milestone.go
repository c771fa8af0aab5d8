package types

// Milestone is one step of a comeback roadmap.
type Milestone struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Week        string `json:"week"`
	SortOrder   int    `json:"sort_order"`
	Done        bool   `json:"done"`
}

// Progress summarises how much of a roadmap is complete.
type Progress struct {
	Total      int `json:"total"`
	Done       int `json:"done"`
	Percentage int `json:"percentage"`
}
