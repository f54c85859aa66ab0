package qrcode

import (
	"encoding/json"
	"strings"

	"wordtrainer/config"
	"wordtrainer/internal/domain/constants"
	"wordtrainer/internal/domain/service"
	"wordtrainer/internal/errors"

	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(errorCorrectionLevel),
	}
}

// NewQRCodeServiceFromConfig builds the service from the qrcode config section.
func NewQRCodeServiceFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateEntryQR renders the entry card as a PNG QR code.
func (s *qrcodeService) GenerateEntryQR(card service.EntryCard) ([]byte, error) {
	card.Type = constants.QRTypeDictionaryEntry

	payload, err := json.Marshal(card)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code payload")
	}

	code, err := qrcode.New(string(payload), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	png, err := code.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode QR code as PNG")
	}

	return png, nil
}

// ParseEntryQR decodes scanned QR text back into an entry card.
func (s *qrcodeService) ParseEntryQR(qrData string) (*service.EntryCard, error) {
	var card service.EntryCard
	if err := json.Unmarshal([]byte(qrData), &card); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal QR code payload")
	}

	if card.Type != constants.QRTypeDictionaryEntry {
		return nil, errors.Errorf("invalid QR code type: %q", card.Type)
	}
	if card.EntryID <= 0 {
		return nil, errors.Errorf("invalid dictionary entry id: %d", card.EntryID)
	}

	return &card, nil
}
