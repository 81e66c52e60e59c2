package inquiry

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPending   Status = "pending"
	StatusSent      Status = "sent"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusPending, StatusSent, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

func AllStatuses() []Status {
	return []Status{StatusDraft, StatusPending, StatusSent, StatusConfirmed, StatusCancelled}
}
