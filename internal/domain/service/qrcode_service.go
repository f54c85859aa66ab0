package service

// EntryCard is the payload encoded in a dictionary share QR code.
type EntryCard struct {
	EntryID  int64  `json:"entry_id"`
	Text     string `json:"text"`
	Language string `json:"language"`
	Type     string `json:"type"`
}

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateEntryQR renders a PNG QR code for a dictionary entry
	GenerateEntryQR(card EntryCard) ([]byte, error)

	// ParseEntryQR decodes the text scanned from a dictionary QR code
	ParseEntryQR(qrData string) (*EntryCard, error)
}
