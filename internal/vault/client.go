package vault

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/hashicorp/vault/api"
)

// Client wraps the HashiCorp Vault transit engine used to encrypt
// investigation record content at rest
type Client struct {
	client       *api.Client
	transitMount string
}

// Config holds Vault configuration
type Config struct {
	Address      string
	Token        string
	TransitMount string
}

// NewClient creates a new Vault client
func NewClient(cfg *Config) (*Client, error) {
	config := api.DefaultConfig()
	config.Address = cfg.Address

	client, err := api.NewClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create vault client: %w", err)
	}

	client.SetToken(cfg.Token)

	vaultClient := &Client{
		client:       client,
		transitMount: cfg.TransitMount,
	}

	// Initialize transit engine
	if err := vaultClient.initTransitEngine(); err != nil {
		return nil, fmt.Errorf("failed to initialize transit engine: %w", err)
	}

	return vaultClient, nil
}

// initTransitEngine enables the transit secrets engine if not already enabled
func (c *Client) initTransitEngine() error {
	ctx := context.Background()

	// Check if transit engine is already mounted
	mounts, err := c.client.Sys().ListMountsWithContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to list mounts: %w", err)
	}

	mountPath := c.transitMount + "/"
	if _, exists := mounts[mountPath]; exists {
		return nil // Already mounted
	}

	// Mount transit engine
	err = c.client.Sys().MountWithContext(ctx, c.transitMount, &api.MountInput{
		Type:        "transit",
		Description: "Transit encryption for investigation records",
		Config: api.MountConfigInput{
			DefaultLeaseTTL: "768h",
			MaxLeaseTTL:     "8760h",
		},
	})
	if err != nil {
		return fmt.Errorf("failed to mount transit engine: %w", err)
	}

	return nil
}

// CreateKey creates or updates a transit encryption key
func (c *Client) CreateKey(keyName string, keyType string) error {
	ctx := context.Background()

	path := fmt.Sprintf("%s/keys/%s", c.transitMount, keyName)

	data := map[string]interface{}{
		"type":       keyType, // aes256-gcm96
		"exportable": false,   // Keys cannot be exported for security
		"derived":    false,   // No key derivation by Vault
	}

	_, err := c.client.Logical().WriteWithContext(ctx, path, data)
	if err != nil {
		return fmt.Errorf("failed to create key %s: %w", keyName, err)
	}

	return nil
}

// Encrypt encrypts data using Vault's transit engine
func (c *Client) Encrypt(keyName string, plaintext []byte, ctx map[string]string) (string, error) {
	context := context.Background()

	path := fmt.Sprintf("%s/encrypt/%s", c.transitMount, keyName)

	encodedPlaintext := base64.StdEncoding.EncodeToString(plaintext)

	data := map[string]interface{}{
		"plaintext": encodedPlaintext,
	}

	// Add context for additional authenticated data (AAD)
	if len(ctx) > 0 {
		contextStr := c.encodeContext(ctx)
		data["context"] = base64.StdEncoding.EncodeToString([]byte(contextStr))
	}

	secret, err := c.client.Logical().WriteWithContext(context, path, data)
	if err != nil {
		return "", fmt.Errorf("failed to encrypt: %w", err)
	}

	ciphertext, ok := secret.Data["ciphertext"].(string)
	if !ok {
		return "", fmt.Errorf("invalid ciphertext response")
	}

	return ciphertext, nil
}

// Decrypt decrypts data using Vault's transit engine
func (c *Client) Decrypt(keyName string, ciphertext string, ctx map[string]string) ([]byte, error) {
	context := context.Background()

	path := fmt.Sprintf("%s/decrypt/%s", c.transitMount, keyName)

	data := map[string]interface{}{
		"ciphertext": ciphertext,
	}

	// Add context for AAD verification
	if len(ctx) > 0 {
		contextStr := c.encodeContext(ctx)
		data["context"] = base64.StdEncoding.EncodeToString([]byte(contextStr))
	}

	secret, err := c.client.Logical().WriteWithContext(context, path, data)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt: %w", err)
	}

	encodedPlaintext, ok := secret.Data["plaintext"].(string)
	if !ok {
		return nil, fmt.Errorf("invalid plaintext response")
	}

	plaintext, err := base64.StdEncoding.DecodeString(encodedPlaintext)
	if err != nil {
		return nil, fmt.Errorf("failed to decode plaintext: %w", err)
	}

	return plaintext, nil
}

// Health checks Vault health status
func (c *Client) Health() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	health, err := c.client.Sys().HealthWithContext(ctx)
	if err != nil {
		return fmt.Errorf("vault health check failed: %w", err)
	}

	if !health.Initialized {
		return fmt.Errorf("vault is not initialized")
	}

	if health.Sealed {
		return fmt.Errorf("vault is sealed")
	}

	return nil
}

// encodeContext converts context map to string
func (c *Client) encodeContext(ctx map[string]string) string {
	result := ""
	for k, v := range ctx {
		result += fmt.Sprintf("%s=%s;", k, v)
	}
	return result
}
