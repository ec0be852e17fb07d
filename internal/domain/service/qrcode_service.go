package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation.
type QRCodeService interface {
	// GenerateComparisonQR renders a QR code PNG pointing at the share URL
	// for a saved card comparison.
	GenerateComparisonQR(comparisonID uuid.UUID) ([]byte, error)
}
