// Package securestore encrypts investigation log content at rest via the
// Vault transit engine. Internal investigation notes name witnesses and
// suspects, so their plaintext never reaches the database when Vault is
// configured. The complaint ID is bound into the encryption context, which
// pins each note to its complaint.
package securestore

import (
	"fmt"
	"strings"

	"campus-safety/internal/vault"
)

const (
	keyName = "investigation-logs"

	// ciphertextPrefix is the vault transit ciphertext marker. Plaintext
	// written before encryption was enabled is passed through on read.
	ciphertextPrefix = "vault:"
)

// ContentCipher encrypts and decrypts trail content
type ContentCipher interface {
	Seal(complaintID, content string) (string, error)
	Open(complaintID, stored string) (string, error)
}

// VaultCipher implements ContentCipher on the Vault transit engine
type VaultCipher struct {
	client *vault.Client
}

// NewVaultCipher creates the transit key if it does not exist yet
func NewVaultCipher(client *vault.Client) (*VaultCipher, error) {
	if err := client.CreateKey(keyName, "aes256-gcm96"); err != nil {
		return nil, fmt.Errorf("failed to create transit key: %w", err)
	}
	return &VaultCipher{client: client}, nil
}

// Seal encrypts content bound to its complaint
func (c *VaultCipher) Seal(complaintID, content string) (string, error) {
	ciphertext, err := c.client.Encrypt(keyName, []byte(content), map[string]string{
		"complaint_id": complaintID,
	})
	if err != nil {
		return "", fmt.Errorf("failed to seal content: %w", err)
	}
	return ciphertext, nil
}

// Open decrypts stored content. Plaintext rows predating encryption are
// returned unchanged.
func (c *VaultCipher) Open(complaintID, stored string) (string, error) {
	if !strings.HasPrefix(stored, ciphertextPrefix) {
		return stored, nil
	}
	plaintext, err := c.client.Decrypt(keyName, stored, map[string]string{
		"complaint_id": complaintID,
	})
	if err != nil {
		return "", fmt.Errorf("failed to open content: %w", err)
	}
	return string(plaintext), nil
}

// PlainCipher stores content unencrypted. Used when Vault is disabled.
type PlainCipher struct{}

func (PlainCipher) Seal(complaintID, content string) (string, error) { return content, nil }
func (PlainCipher) Open(complaintID, stored string) (string, error)  { return stored, nil }
