// Package ocr provides the Yandex Vision client used to turn statement
// images into text before parsing. The parsing pipeline itself only ever
// sees the recognized text; this package is the boundary collaborator.
package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"alebedev/statement-parser/internal/logging"
)

const batchAnalyzeURL = "https://vision.api.cloud.yandex.net/vision/v1/batchAnalyze"

// Client calls the Yandex Vision text-detection API.
type Client struct {
	apiKey   string
	folderID string
	endpoint string
	http     *http.Client
	log      logging.Logger
}

// NewClient builds a Vision client. httpClient may be nil to use the
// default client; callers wanting a timeout pass one via their own client
// or the request context.
func NewClient(apiKey, folderID string, httpClient *http.Client, log logging.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if log == nil {
		log = logging.Nop()
	}
	return &Client{apiKey: apiKey, folderID: folderID, endpoint: batchAnalyzeURL, http: httpClient, log: log}
}

type analyzeRequest struct {
	FolderID     string        `json:"folderId"`
	AnalyzeSpecs []analyzeSpec `json:"analyze_specs"`
	Images       []imageData   `json:"images"`
}

type analyzeSpec struct {
	Features []feature `json:"features"`
	MimeType string    `json:"mime_type"`
}

type feature struct {
	Type   string        `json:"type"`
	Config featureConfig `json:"text_detection_config"`
}

type featureConfig struct {
	LanguageCodes []string `json:"language_codes"`
}

type imageData struct {
	Data string `json:"data"`
}

type analyzeResponse struct {
	Results []struct {
		Results []struct {
			TextDetection *struct {
				Blocks []struct {
					Lines []struct {
						Text string `json:"text"`
					} `json:"lines"`
				} `json:"blocks"`
			} `json:"textDetection"`
		} `json:"results"`
	} `json:"results"`
}

// RecognizeText sends one base64-encoded image and returns the recognized
// text, block by block, line by line, joined the way statements read.
func (c *Client) RecognizeText(ctx context.Context, imageBase64 string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("yandex vision api key not configured")
	}

	reqBody := analyzeRequest{
		FolderID: c.folderID,
		AnalyzeSpecs: []analyzeSpec{{
			Features: []feature{{
				Type:   "TEXT_DETECTION",
				Config: featureConfig{LanguageCodes: []string{"ru", "en"}},
			}},
			MimeType: "image/jpeg",
		}},
		Images: []imageData{{Data: imageBase64}},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal vision request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build vision request: %w", err)
	}
	req.Header.Set("Authorization", "Api-Key "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("vision api call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("vision api status %d: %s", resp.StatusCode, string(body))
	}

	var parsed analyzeResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode vision response: %w", err)
	}

	text := flattenText(parsed)
	if text == "" {
		return "", fmt.Errorf("vision api recognized no text")
	}

	c.log.WithField("chars", len(text)).Debug("ocr text recognized")
	return text, nil
}

func flattenText(resp analyzeResponse) string {
	var blocks []string
	for _, outer := range resp.Results {
		for _, inner := range outer.Results {
			if inner.TextDetection == nil {
				continue
			}
			for _, block := range inner.TextDetection.Blocks {
				var lines []string
				for _, line := range block.Lines {
					lines = append(lines, line.Text)
				}
				blocks = append(blocks, strings.Join(lines, "\n"))
			}
		}
	}
	return strings.Join(blocks, "\n\n")
}
