package qrcode

import (
	"encoding/json"
	"testing"

	"tripbook/config"
	"tripbook/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBooking() *entity.Booking {
	return &entity.Booking{
		BookingID: "bk-123",
		PackageID: "pkg-9",
		Status:    entity.BookingConfirmed,
	}
}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Zero size falls back", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestNewQRCodeServiceFromConfig(t *testing.T) {
	assert.NotNil(t, NewQRCodeServiceFromConfig(&config.Config{}))
	assert.NotNil(t, NewQRCodeServiceFromConfig(&config.Config{
		QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "H"},
	}))
}

func TestQRCodeService_GenerateBookingTicket(t *testing.T) {
	service := NewQRCodeService(256, "M")

	qrBytes, err := service.GenerateBookingTicket(testBooking())
	require.NoError(t, err)
	require.NotEmpty(t, qrBytes)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateBookingTicket_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, "M")
			qrBytes, err := service.GenerateBookingTicket(testBooking())
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestQRCodeService_ParseBookingTicket(t *testing.T) {
	service := NewQRCodeService(256, "M")

	valid, err := json.Marshal(TicketData{Type: ticketType, BookingID: "bk-123", PackageID: "pkg-9", Status: "confirmed"})
	require.NoError(t, err)
	wrongType, err := json.Marshal(TicketData{Type: "subscription", BookingID: "bk-123"})
	require.NoError(t, err)
	noID, err := json.Marshal(TicketData{Type: ticketType})
	require.NoError(t, err)

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr string
	}{
		{"valid ticket", string(valid), "bk-123", ""},
		{"wrong type", string(wrongType), "", "invalid QR code type"},
		{"missing booking id", string(noID), "", "missing booking ID"},
		{"not json", "not-json", "", "failed to unmarshal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.ParseBookingTicket(tt.input)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
