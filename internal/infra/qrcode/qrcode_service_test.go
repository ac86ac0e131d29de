package qrcode

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 0x50, 0x4e, 0x47}

func TestGenerateInviteQR_ProducesPNG(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	png, err := svc.GenerateInviteQR("ABC234")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic))
}

func TestInviteQR_PayloadRoundTrip(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	payload, err := json.Marshal(QRCodeData{GroupID: "ABC234", Type: "invite"})
	require.NoError(t, err)

	groupID, err := svc.ParseInviteQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, "ABC234", groupID)
}

func TestParseInviteQR_RejectsWrongType(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	payload, err := json.Marshal(QRCodeData{GroupID: "ABC234", Type: "subscription"})
	require.NoError(t, err)

	_, err = svc.ParseInviteQR(string(payload))
	assert.Error(t, err)
}

func TestParseInviteQR_RejectsEmptyGroup(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	payload, err := json.Marshal(QRCodeData{Type: "invite"})
	require.NoError(t, err)

	_, err = svc.ParseInviteQR(string(payload))
	assert.Error(t, err)
}

func TestParseInviteQR_RejectsGarbage(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	_, err := svc.ParseInviteQR("{not json")
	assert.Error(t, err)
}

func TestNewQRCodeService_UnknownLevelFallsBack(t *testing.T) {
	// An unrecognized level silently falls back to Medium.
	svc := NewQRCodeService(128, "X")

	png, err := svc.GenerateInviteQR("ABC234")
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
