package detect

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"reporter-backend/internal/apperr"
)

// Detector turns an image into a label -> count summary of the objects
// an external model found in it.
type Detector interface {
	Detect(ctx context.Context, image []byte) (map[string]int, error)
}

// Detection is one detected object as returned by the inference service.
type Detection struct {
	Class string  `json:"class"`
	Conf  float32 `json:"confidence"`
}

// YOLOAdapter runs inference through an external YOLO HTTP service.
type YOLOAdapter struct {
	inferenceURL string
	client       *http.Client
}

func NewYOLOAdapter(inferenceURL string) *YOLOAdapter {
	return &YOLOAdapter{
		inferenceURL: inferenceURL,
		client:       http.DefaultClient,
	}
}

// Detect posts the image to the inference service and tallies the
// returned detections per class label. Zero detections yields an empty
// map. Any transport or service failure aborts the caller's workflow.
func (a *YOLOAdapter) Detect(ctx context.Context, image []byte) (map[string]int, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", "image.jpg")
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, bytes.NewReader(image)); err != nil {
		return nil, fmt.Errorf("copy image data: %w", err)
	}
	writer.Close()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.inferenceURL, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, apperr.External("detection service unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperr.External(fmt.Sprintf("detection service returned status %d", resp.StatusCode), nil)
	}

	var result struct {
		Detections []Detection `json:"detections"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, apperr.External("decode detection response", err)
	}

	counts := make(map[string]int)
	for _, det := range result.Detections {
		counts[det.Class]++
	}
	return counts, nil
}

var _ Detector = (*YOLOAdapter)(nil)
