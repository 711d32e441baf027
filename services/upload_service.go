// services/upload_service.go
package services

import (
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"
)

// UploadService pushes trip images to the Cloudinary image host and returns
// the hosted URL stored on the trip.
type UploadService struct {
	cloudName string
	apiKey    string
	apiSecret string
	baseURL   string
	client    *http.Client
}

// NewUploadService creates an image upload service. With missing credentials
// uploads are degraded: every UploadImage reports a configuration error.
func NewUploadService(cloudName, apiKey, apiSecret string) *UploadService {
	return &UploadService{
		cloudName: cloudName,
		apiKey:    apiKey,
		apiSecret: apiSecret,
		baseURL:   "https://api.cloudinary.com/v1_1",
		client:    &http.Client{Timeout: 60 * time.Second},
	}
}

// Configured reports whether image host credentials were provided
func (s *UploadService) Configured() bool {
	return s.cloudName != "" && s.apiKey != "" && s.apiSecret != ""
}

// UploadImage performs a signed upload and returns the hosted secure URL
func (s *UploadService) UploadImage(file io.Reader, filename string) (string, error) {
	if !s.Configured() {
		return "", errors.New("image host is not configured")
	}

	timestamp := strconv.FormatInt(time.Now().Unix(), 10)

	// Signed upload: SHA-1 over the sorted parameter string plus the secret
	digest := sha1.Sum([]byte("timestamp=" + timestamp + s.apiSecret))
	signature := hex.EncodeToString(digest[:])

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("failed to build upload form: %v", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("failed to read upload data: %v", err)
	}
	writer.WriteField("api_key", s.apiKey)
	writer.WriteField("timestamp", timestamp)
	writer.WriteField("signature", signature)
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize upload form: %v", err)
	}

	url := fmt.Sprintf("%s/%s/image/upload", s.baseURL, s.cloudName)
	req, err := http.NewRequest("POST", url, &body)
	if err != nil {
		return "", fmt.Errorf("failed to create upload request: %v", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call image host: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("image host returned non-200 status: %d - %s", resp.StatusCode, string(bodyBytes))
	}

	var result struct {
		SecureURL string `json:"secure_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode upload response: %v", err)
	}
	if result.SecureURL == "" {
		return "", errors.New("image host returned no URL")
	}

	return result.SecureURL, nil
}
