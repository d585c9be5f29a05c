package model

import "time"

// AgencyModel mirrors a document in the 'agencies' collection. The document id is the agency's uid.
type AgencyModel struct {
	UID         string     `firestore:"uid"`
	Name        string     `firestore:"name"`
	Email       string     `firestore:"email"`
	Location    string     `firestore:"location,omitempty"`
	Logo        string     `firestore:"logo,omitempty"`
	Phone       string     `firestore:"phone,omitempty"`
	Website     string     `firestore:"website,omitempty"`
	Description string     `firestore:"description,omitempty"`
	Approved    bool       `firestore:"approved"`
	CreatedAt   time.Time  `firestore:"createdAt"`
	UpdatedAt   *time.Time `firestore:"updatedAt,omitempty"`
	ApprovedAt  *time.Time `firestore:"approvedAt,omitempty"`
}
