package models

// Status codes the escalation engine reads or writes. Other codes exist
// in the reference table but are only ever round-tripped.
const (
	StatusNew        = "NEW"
	StatusAssigned   = "ASSIGNED"
	StatusInProgress = "IN_PROGRESS"
	StatusResolved   = "RESOLVED"
	StatusRejected   = "REJECTED"
	StatusEscalated  = "ESCALATED"
)

// ComplaintStatus is a row of the status reference table.
type ComplaintStatus struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Code    string `gorm:"uniqueIndex;not null" json:"code"`
	Display string `json:"display"`
}

func (ComplaintStatus) TableName() string {
	return "complaint_status"
}
