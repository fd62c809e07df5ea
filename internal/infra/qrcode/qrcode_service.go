// Package qrcode renders QR code images for family join codes.
package qrcode

import (
	"fitfamily/config"
	"fitfamily/internal/domain/service"
	"fitfamily/internal/errors"

	qrcodeLib "github.com/skip2/go-qrcode"
)

const defaultSize = 256

// qrCodeService implements service.QRCodeService using skip2/go-qrcode.
type qrCodeService struct {
	size  int
	level qrcodeLib.RecoveryLevel
}

// NewQRCodeService is the constructor for qrCodeService.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size := defaultSize
	level := qrcodeLib.Medium
	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		level = parseRecoveryLevel(cfg.QRCode.ErrorCorrectionLevel)
	}

	return &qrCodeService{size: size, level: level}
}

// Generate renders the given content as a PNG-encoded QR code.
func (s *qrCodeService) Generate(content string) ([]byte, error) {
	if content == "" {
		return nil, errors.New("qr code content cannot be empty")
	}

	png, err := qrcodeLib.Encode(content, s.level, s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode qr code")
	}

	return png, nil
}

func parseRecoveryLevel(level string) qrcodeLib.RecoveryLevel {
	switch level {
	case "L":
		return qrcodeLib.Low
	case "M":
		return qrcodeLib.Medium
	case "Q":
		return qrcodeLib.High
	case "H":
		return qrcodeLib.Highest
	default:
		return qrcodeLib.Medium
	}
}
