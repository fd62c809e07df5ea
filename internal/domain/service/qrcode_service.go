package service

// QRCodeService defines the interface for rendering QR code images.
type QRCodeService interface {
	// Generate renders the given content as a PNG-encoded QR code.
	Generate(content string) ([]byte, error)
}
