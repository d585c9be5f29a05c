package service

import "tripbook/internal/domain/entity"

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateBookingTicket generates a QR code e-ticket for a booking
	GenerateBookingTicket(booking *entity.Booking) ([]byte, error)

	// ParseBookingTicket parses QR code data and returns the booking ID
	ParseBookingTicket(qrData string) (string, error)
}
