package email

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMessage(t *testing.T) {
	server := Provider{Name: "gmail", Host: "smtp.gmail.com", Port: 587, Username: "ana.maria@gmail.com", Password: "x"}

	t.Run("derives sender name from the login address", func(t *testing.T) {
		msg, err := BuildMessage(Envelope{
			Server:  server,
			To:      "client@firma.ro",
			Subject: "Factura 001",
			Body:    "Buna ziua",
		})
		require.NoError(t, err)

		var buf bytes.Buffer
		_, err = msg.WriteTo(&buf)
		require.NoError(t, err)
		out := buf.String()
		assert.Contains(t, out, `From: "Ana Maria" <ana.maria@gmail.com>`)
		assert.Contains(t, out, "To: <client@firma.ro>")
		assert.Contains(t, out, "Subject: Factura 001")
		assert.Contains(t, out, "Buna ziua")
	})

	t.Run("attaches the file under its display name", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "0b6f1d9e")
		require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0o600))

		msg, err := BuildMessage(Envelope{
			Server:         server,
			FromName:       "Normal.ro",
			To:             "client@firma.ro",
			Subject:        "Factura",
			AttachmentPath: path,
			AttachmentName: "factura_001.pdf",
		})
		require.NoError(t, err)

		attachments := msg.GetAttachments()
		require.Len(t, attachments, 1)
		assert.Equal(t, "factura_001.pdf", attachments[0].Name)
	})

	t.Run("invalid recipient", func(t *testing.T) {
		_, err := BuildMessage(Envelope{Server: server, To: "not an address", Subject: "x"})
		assert.Error(t, err)
	})
}

func TestSMTPSender_ClientOptions(t *testing.T) {
	s := NewSMTPSender(5 * time.Second)
	assert.Len(t, s.clientOptions(Provider{Port: 587}), 6)
	assert.Len(t, s.clientOptions(Provider{Port: 465}), 6)
	assert.Len(t, NewSMTPSender(0).clientOptions(Provider{Port: 587}), 5)
}
