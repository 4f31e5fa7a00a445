// Package qrcode renders and reads the QR code printed on delivery slips.
package qrcode

import (
	"encoding/json"

	"market/config"
	"market/internal/domain/service"
	"market/internal/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const (
	deliveryType = "delivery"
	defaultSize  = 256
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// DeliveryQRData is the payload encoded in a delivery slip QR code.
type DeliveryQRData struct {
	BasketID string `json:"basket_id"`
	Type     string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
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

// New builds the service from configuration.
func New(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "M")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// GenerateDeliveryQR generates a PNG QR code identifying a basket
func (s *qrcodeService) GenerateDeliveryQR(basketID uuid.UUID) ([]byte, error) {
	jsonData, err := json.Marshal(DeliveryQRData{
		BasketID: basketID.String(),
		Type:     deliveryType,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseDeliveryQR parses scanned QR data and returns the basket ID
func (s *qrcodeService) ParseDeliveryQR(qrData string) (uuid.UUID, error) {
	var data DeliveryQRData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != deliveryType {
		return uuid.Nil, errors.Errorf("invalid QR code type: %s", data.Type)
	}

	basketID, err := uuid.Parse(data.BasketID)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse basket ID")
	}

	return basketID, nil
}
