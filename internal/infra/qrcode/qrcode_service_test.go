package qrcode

import (
	"encoding/json"
	"testing"

	"market/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

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

func TestNew_WithoutQRCodeConfig(t *testing.T) {
	service := New(&config.Config{})

	assert.Equal(t, defaultSize, service.(*qrcodeService).size)
}

func TestQRCodeService_GenerateDeliveryQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	qrBytes, err := service.GenerateDeliveryQR(uuid.New())
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_ParseDeliveryQR(t *testing.T) {
	service := NewQRCodeService(256, "M")
	basketID := uuid.New()

	valid, err := json.Marshal(DeliveryQRData{BasketID: basketID.String(), Type: "delivery"})
	require.NoError(t, err)
	wrongType, err := json.Marshal(DeliveryQRData{BasketID: basketID.String(), Type: "subscription"})
	require.NoError(t, err)
	badID, err := json.Marshal(DeliveryQRData{BasketID: "not-a-uuid", Type: "delivery"})
	require.NoError(t, err)

	tests := []struct {
		name    string
		data    string
		want    uuid.UUID
		wantErr bool
	}{
		{name: "valid", data: string(valid), want: basketID},
		{name: "wrong type", data: string(wrongType), wantErr: true},
		{name: "invalid basket id", data: string(badID), wantErr: true},
		{name: "not json", data: "hello", wantErr: true},
		{name: "empty", data: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.ParseDeliveryQR(tt.data)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, uuid.Nil, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
