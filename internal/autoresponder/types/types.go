package types

import "time"

// Contact is one row of the birthday sheet. Phone is already normalized
// to a leading '+' when the sheet is loaded.
type Contact struct {
	Phone     string
	FirstName string
	OtherName string
	Birthday  time.Time
}

type SendResult struct {
	Text  string
	Ok    bool
	Error string
}

const (
	OutcomeSent          = "sent"
	OutcomeSkipped       = "skipped"
	OutcomeAlreadySent   = "already-sent"
	OutcomePartialFailed = "partial"
)

// RowResult records what happened to a single matched contact. Reason is
// set when the row was skipped before any send was attempted.
type RowResult struct {
	Contact Contact
	Outcome string
	Reason  string
	Sends   []SendResult
}

type Report struct {
	Date time.Time
	Rows []RowResult
}

func (r *Report) Counts() (sent, partial, skipped int) {
	for _, row := range r.Rows {
		switch row.Outcome {
		case OutcomeSent:
			sent++
		case OutcomePartialFailed:
			partial++
		default:
			skipped++
		}
	}
	return sent, partial, skipped
}
