package model

import "time"

// BookingModel mirrors a document in the 'bookings' collection. The document id is the
// client-supplied booking id. Older documents carry only one of Status and Cancelled.
type BookingModel struct {
	BookingID         string     `firestore:"bookingId"`
	FullName          string     `firestore:"fullName"`
	Email             string     `firestore:"email"`
	PhoneNumber       string     `firestore:"phoneNumber"`
	Destination       string     `firestore:"destination"`
	NumberOfTravelers int        `firestore:"numberOfTravelers"`
	StartDate         string     `firestore:"startDate"`
	EndDate           string     `firestore:"endDate"`
	Accommodation     string     `firestore:"accommodation"`
	Transportation    string     `firestore:"transportation"`
	SpecialRequests   string     `firestore:"specialRequests"`
	Status            string     `firestore:"status"`
	Cancelled         bool       `firestore:"cancelled"`
	UserID            string     `firestore:"userId"`
	PackageID         string     `firestore:"packageId"`
	AgencyID          string     `firestore:"agencyId"`
	PaymentID         string     `firestore:"paymentId"`
	OrderID           string     `firestore:"orderId"`
	Amount            float64    `firestore:"amount"`
	CreatedAt         time.Time  `firestore:"createdAt"`
	UpdatedAt         *time.Time `firestore:"updatedAt,omitempty"`
	CancelledAt       *time.Time `firestore:"cancelledAt,omitempty"`
}
