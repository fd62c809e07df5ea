package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"fitfamily/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRCodeService_Generate(t *testing.T) {
	t.Parallel()

	svc := NewQRCodeService(&config.Config{
		QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "M"},
	})

	data, err := svc.Generate("FIT-A1B2")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())
}

func TestQRCodeService_GenerateEmptyContent(t *testing.T) {
	t.Parallel()

	svc := NewQRCodeService(&config.Config{})

	data, err := svc.Generate("")
	assert.Error(t, err)
	assert.Nil(t, data)
}
