package smtp_client

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadFromFile(t *testing.T) {
	t.Run("valid server list", func(t *testing.T) {
		fname := filepath.Join(t.TempDir(), "smtp-servers.yaml")
		content := []byte(`from: "noreply@example.com"
sender: "AidBridge"
replyTo:
  - "support@example.com"
servers:
  - host: smtp.example.com
    port: "587"
    connections: 2
    sendTimeout: 30
    auth:
      user: mailer
      password: placeholder
`)
		if err := os.WriteFile(fname, content, 0644); err != nil {
			t.Fatalf("failed to write test file: %v", err)
		}

		var sl SmtpServerList
		if err := sl.ReadFromFile(fname); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(sl.Servers) != 1 {
			t.Fatalf("unexpected server count: %d", len(sl.Servers))
		}
		if sl.Servers[0].Address() != "smtp.example.com:587" {
			t.Errorf("unexpected address: %s", sl.Servers[0].Address())
		}
		if sl.From != "noreply@example.com" {
			t.Errorf("unexpected from: %s", sl.From)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		var sl SmtpServerList
		if err := sl.ReadFromFile("does-not-exist.yaml"); err == nil {
			t.Error("expected error for missing file")
		}
	})
}
