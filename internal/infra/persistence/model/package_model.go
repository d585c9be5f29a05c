package model

import "time"

// ItineraryDayModel is one element of a package's itinerary array.
type ItineraryDayModel struct {
	Day         int    `firestore:"day"`
	Title       string `firestore:"title"`
	Description string `firestore:"description"`
}

// PackageModel mirrors a document in the 'packages' collection.
type PackageModel struct {
	AgencyID      string              `firestore:"agencyId"`
	AgencyName    string              `firestore:"agencyName"`
	Title         string              `firestore:"title"`
	Destination   string              `firestore:"destination"`
	Duration      string              `firestore:"duration"`
	Price         float64             `firestore:"price"`
	MaxTravellers int                 `firestore:"maxTravellers"`
	Description   string              `firestore:"description"`
	ImgURL        string              `firestore:"imgUrl"`
	Highlights    []string            `firestore:"highlights"`
	Inclusions    []string            `firestore:"inclusions"`
	Exclusions    []string            `firestore:"exclusions"`
	Itinerary     []ItineraryDayModel `firestore:"itinerary"`
	Rating        float64             `firestore:"rating"`
	ReviewCount   int                 `firestore:"reviewCount"`
	IsActive      bool                `firestore:"isActive"`
	CreatedAt     time.Time           `firestore:"createdAt"`
	UpdatedAt     *time.Time          `firestore:"updatedAt,omitempty"`
	DeactivatedAt *time.Time          `firestore:"deactivatedAt,omitempty"`
}
