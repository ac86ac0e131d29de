package service

// QRCodeService generates and parses group invite QR codes.
type QRCodeService interface {
	// GenerateInviteQR renders a PNG QR code carrying the group join code.
	GenerateInviteQR(groupID string) ([]byte, error)

	// ParseInviteQR extracts the group join code from scanned QR payload data.
	ParseInviteQR(qrData string) (string, error)
}
