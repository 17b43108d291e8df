package entity

// OptionCount is a raw per-option tally as read from storage,
// in option creation order.
type OptionCount struct {
	OptionID int64
	Text     string
	Votes    int64
}

type OptionResult struct {
	OptionID   int64  `json:"id"`
	Text       string `json:"text"`
	Votes      int64  `json:"votes"`
	Percentage int    `json:"percentage"`
}

// PollResults is derived on demand and never persisted. Percentages are
// rounded per option independently, so they may not sum to exactly 100.
type PollResults struct {
	PollID     int64          `json:"poll_id"`
	TotalVotes int64          `json:"total_votes"`
	Options    []OptionResult `json:"options"`
}
