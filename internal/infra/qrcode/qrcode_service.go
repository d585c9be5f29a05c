package qrcode

import (
	"encoding/json"
	"fmt"

	"tripbook/config"
	"tripbook/internal/domain/entity"
	"tripbook/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const (
	ticketType  = "booking_ticket"
	defaultSize = 256
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// TicketData is the payload encoded into a booking ticket.
type TicketData struct {
	Type      string `json:"type"`
	BookingID string `json:"booking_id"`
	PackageID string `json:"package_id"`
	Status    string `json:"status"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// NewQRCodeServiceFromConfig builds the service from the qrcode config section.
func NewQRCodeServiceFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "M")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// GenerateBookingTicket generates a PNG QR code for a booking
func (s *qrcodeService) GenerateBookingTicket(booking *entity.Booking) ([]byte, error) {
	data := TicketData{
		Type:      ticketType,
		BookingID: booking.BookingID,
		PackageID: booking.PackageID,
		Status:    string(booking.Status),
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseBookingTicket parses QR code data and returns the booking ID
func (s *qrcodeService) ParseBookingTicket(qrData string) (string, error) {
	var data TicketData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != ticketType {
		return "", fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	if data.BookingID == "" {
		return "", fmt.Errorf("missing booking ID")
	}

	return data.BookingID, nil
}
