package cloudinary

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"sort"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/printhaus/shopapi/internal/config"
	"github.com/printhaus/shopapi/pkg/errors"
)

// Client uploads product and logo images to Cloudinary and returns their
// hosted URLs. Signed uploads only; unsigned presets are not supported.
type Client struct {
	cloudName  string
	apiKey     string
	apiSecret  string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new Cloudinary client
func NewClient(cfg config.CloudinaryConfig, logger *zap.Logger) *Client {
	return &Client{
		cloudName: cfg.CloudName,
		apiKey:    cfg.APIKey,
		apiSecret: cfg.APISecret,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		logger: logger,
	}
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload sends one image to Cloudinary under the given folder and returns the
// hosted HTTPS URL.
func (c *Client) Upload(ctx context.Context, r io.Reader, filename, folder string) (string, error) {
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	signature := c.sign(map[string]string{
		"folder":    folder,
		"timestamp": timestamp,
	})

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", err
	}
	w.WriteField("folder", folder)
	w.WriteField("timestamp", timestamp)
	w.WriteField("api_key", c.apiKey)
	w.WriteField("signature", signature)
	if err := w.Close(); err != nil {
		return "", err
	}

	url := fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/upload", c.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &errors.ErrUpstream{Service: "cloudinary", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &errors.ErrUpstream{Service: "cloudinary", Err: err}
	}

	var upload uploadResponse
	if err := json.Unmarshal(raw, &upload); err != nil {
		return "", &errors.ErrUpstream{Service: "cloudinary", Err: err}
	}

	if resp.StatusCode != http.StatusOK || upload.SecureURL == "" {
		c.logger.Error("Cloudinary upload failed",
			zap.Int("status", resp.StatusCode),
			zap.String("message", upload.Error.Message),
		)
		return "", &errors.ErrUpstream{
			Service: "cloudinary",
			Err:     fmt.Errorf("upload failed: status %d: %s", resp.StatusCode, upload.Error.Message),
		}
	}

	return upload.SecureURL, nil
}

// sign produces Cloudinary's request signature: the sorted key=value pairs
// joined with &, followed by the API secret, hashed with SHA-1.
func (c *Client) sign(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b bytes.Buffer
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(params[k])
	}
	b.WriteString(c.apiSecret)

	sum := sha1.Sum(b.Bytes())
	return hex.EncodeToString(sum[:])
}
