package entity

import "time"

// ItineraryDay is one day of a package itinerary.
type ItineraryDay struct {
	Day         int    `json:"day"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// TourPackage is a travel package offered by exactly one agency.
// AgencyID never changes after creation; removal is a soft delete via IsActive.
type TourPackage struct {
	PackageID     string         `json:"packageId"`
	AgencyID      string         `json:"agencyId"`
	AgencyName    string         `json:"agencyName"`
	Title         string         `json:"title"`
	Destination   string         `json:"destination"`
	Duration      string         `json:"duration"`
	Price         float64        `json:"price"`
	MaxTravellers int            `json:"maxTravellers"`
	Description   string         `json:"description"`
	ImgURL        string         `json:"imgUrl"`
	Highlights    []string       `json:"highlights"`
	Inclusions    []string       `json:"inclusions"`
	Exclusions    []string       `json:"exclusions"`
	Itinerary     []ItineraryDay `json:"itinerary"`
	Rating        float64        `json:"rating"`
	ReviewCount   int            `json:"reviewCount"`
	IsActive      bool           `json:"isActive"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     *time.Time     `json:"updatedAt,omitempty"`
	DeactivatedAt *time.Time     `json:"deactivatedAt,omitempty"`
}

// IsOwnedBy reports whether the package belongs to the given agency.
func (p *TourPackage) IsOwnedBy(agencyID string) bool {
	return p.AgencyID == agencyID
}
