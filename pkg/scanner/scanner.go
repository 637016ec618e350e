package scanner

import (
	"FreshKeep-Backend/pkg/ingest"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ClassifyRequest is the wire shape the classification service accepts:
// the receipt image as a base64 data URL plus scan metadata.
type ClassifyRequest struct {
	Image       string `json:"image"`
	Timezone    string `json:"timezone"`
	PartialScan bool   `json:"partial_scan"`
	ScanGroupID string `json:"scan_group_id"`
}

type (
	// Scanner calls the remote classification service. A non-success
	// status or malformed body is returned as an error; the caller must
	// leave the item store untouched in that case.
	Scanner interface {
		Classify(ctx context.Context, req ClassifyRequest) (ingest.ClassifierResponse, error)
	}

	scanner struct {
		baseURL string
		client  *http.Client
	}
)

func NewScanner(baseURL string, timeout time.Duration) Scanner {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &scanner{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (s *scanner) Classify(ctx context.Context, req ClassifyRequest) (ingest.ClassifierResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return ingest.ClassifierResponse{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL, bytes.NewBuffer(body))
	if err != nil {
		return ingest.ClassifierResponse{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return ingest.ClassifierResponse{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return ingest.ClassifierResponse{}, fmt.Errorf("classifier error: %s - %s", resp.Status, string(bodyBytes))
	}

	var classified ingest.ClassifierResponse
	if err := json.NewDecoder(resp.Body).Decode(&classified); err != nil {
		return ingest.ClassifierResponse{}, err
	}
	return classified, nil
}
