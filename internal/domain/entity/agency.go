package entity

import "time"

// Agency is a travel agency. It is created pending (Approved=false) at signup
// and becomes discoverable to customers only once an admin approves it.
type Agency struct {
	UID         string     `json:"uid"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Location    string     `json:"location,omitempty"`
	Logo        string     `json:"logo,omitempty"`
	Phone       string     `json:"phone,omitempty"`
	Website     string     `json:"website,omitempty"`
	Description string     `json:"description,omitempty"`
	Approved    bool       `json:"approved"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
	ApprovedAt  *time.Time `json:"approvedAt,omitempty"`
}

// AgencyDecision is the admin's verdict on a pending agency.
type AgencyDecision string

const (
	AgencyApproved AgencyDecision = "approved"
	AgencyRejected AgencyDecision = "rejected"
)

// IsValid checks if the decision is a known value.
func (d AgencyDecision) IsValid() bool {
	return d == AgencyApproved || d == AgencyRejected
}
