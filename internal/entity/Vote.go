package entity

import "time"

type Vote struct {
	ID       int64     `json:"id"`
	PollID   int64     `json:"poll_id"`
	OptionID int64     `json:"option_id"`
	VoterKey string    `json:"voter_key,omitempty"`
	VotedAt  time.Time `json:"voted_at"`
}
