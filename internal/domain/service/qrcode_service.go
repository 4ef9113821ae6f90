package service

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GenerateQRCode encodes content into a PNG image
	GenerateQRCode(content string) ([]byte, error)
}
