package service

// ReceiptQRService renders order receipts as scannable QR codes.
type ReceiptQRService interface {
	// GenerateReceiptQR returns a PNG QR code carrying the order reference.
	GenerateReceiptQR(orderID string, total float64) ([]byte, error)

	// ParseReceiptQR extracts the order ID from scanned QR payload data.
	ParseReceiptQR(qrData string) (string, error)
}
