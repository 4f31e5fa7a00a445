package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for delivery slip QR codes
type QRCodeService interface {
	// GenerateDeliveryQR generates a PNG QR code identifying a basket
	GenerateDeliveryQR(basketID uuid.UUID) ([]byte, error)

	// ParseDeliveryQR parses scanned QR data and returns the basket ID
	ParseDeliveryQR(qrData string) (uuid.UUID, error)
}
