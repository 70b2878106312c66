// Package qrcode renders order receipts as scannable QR codes.
package qrcode

import (
	"encoding/json"
	"fmt"

	"cafex/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// ReceiptData represents the QR code payload for an order receipt.
type ReceiptData struct {
	OrderID string  `json:"order_id"`
	Total   float64 `json:"total"`
	Type    string  `json:"type"`
}

// NewReceiptQRService creates a new receipt QR service instance.
func NewReceiptQRService(size int, errorCorrectionLevel string) service.ReceiptQRService {
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

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateReceiptQR generates a PNG QR code carrying the order reference.
func (s *qrcodeService) GenerateReceiptQR(orderID string, total float64) ([]byte, error) {
	data := ReceiptData{
		OrderID: orderID,
		Total:   total,
		Type:    "receipt",
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

// ParseReceiptQR parses QR code payload data and returns the order ID.
func (s *qrcodeService) ParseReceiptQR(qrData string) (string, error) {
	var data ReceiptData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != "receipt" {
		return "", fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	if data.OrderID == "" {
		return "", fmt.Errorf("QR code carries no order id")
	}

	return data.OrderID, nil
}
