package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"time"

	"github.com/MINJiwonJiwon/capstone-snapncook/models"
	"github.com/MINJiwonJiwon/capstone-snapncook/utils"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

var ErrUnknownFood = errors.New("detected food not registered")

type Detection struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
}

// ClassifierService calls the external food-recognition model over HTTP.
// The model is opaque and untrusted: responses are validated before use.
type ClassifierService struct {
	db      *gorm.DB
	client  *http.Client
	baseURL string
	log     zerolog.Logger
}

func NewClassifierService(db *gorm.DB, logger zerolog.Logger) *ClassifierService {
	return &ClassifierService{
		db:      db,
		client:  &http.Client{Timeout: 15 * time.Second},
		baseURL: os.Getenv("AI_MODEL_URL"),
		log:     logger,
	}
}

// Classify uploads the image to the model and returns the validated
// detections. Transport errors, non-200 responses and malformed bodies
// all surface as ErrUpstream with the upstream detail attached.
func (s *ClassifierService) Classify(ctx context.Context, filename string, image []byte) ([]Detection, error) {
	if s.baseURL == "" {
		return nil, fmt.Errorf("AI_MODEL_URL not set")
	}

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("image", filename)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(image); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/detect", &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: classifier request: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading classifier response: %v", ErrUpstream, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: classifier returned %d: %s",
			ErrUpstream, resp.StatusCode, string(respBytes))
	}

	var out struct {
		Detected []Detection `json:"detected"`
	}
	if err := json.Unmarshal(respBytes, &out); err != nil {
		preview := string(respBytes)
		if len(preview) > 200 {
			preview = preview[:200] + "..."
		}
		return nil, fmt.Errorf("%w: decoding classifier response: %v | body: %s",
			ErrUpstream, err, preview)
	}

	valid := make([]Detection, 0, len(out.Detected))
	for _, d := range out.Detected {
		if d.Name == "" || d.Confidence < 0 || d.Confidence > 100 {
			s.log.Warn().Str("name", d.Name).Float64("confidence", d.Confidence).
				Msg("dropping invalid detection from classifier")
			continue
		}
		valid = append(valid, d)
	}
	return valid, nil
}

// DetectAndStore classifies a base64 data-URI image, stores the image in
// S3, resolves the best label to a registered Food and persists the
// detection for the user.
func (s *ClassifierService) DetectAndStore(ctx context.Context, userID uint, base64Image string, imageBytes []byte) (*models.DetectionResult, error) {
	detections, err := s.Classify(ctx, "upload.jpg", imageBytes)
	if err != nil {
		return nil, err
	}
	if len(detections) == 0 {
		return nil, ErrUnknownFood
	}

	best := detections[0]
	for _, d := range detections[1:] {
		if d.Confidence > best.Confidence {
			best = d
		}
	}

	var food models.Food
	if err := s.db.Where("name = ?", best.Name).First(&food).Error; err != nil {
		return nil, ErrUnknownFood
	}

	imagePath, err := utils.UploadBase64ImageToS3(base64Image, "detections")
	if err != nil {
		return nil, err
	}

	result := models.DetectionResult{
		UserID:     userID,
		FoodID:     food.ID,
		ImagePath:  imagePath,
		Confidence: best.Confidence,
	}
	if err := s.db.Create(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}
