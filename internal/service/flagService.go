package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"mime/multipart"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
	"github.com/ds124wfegd/flagcomposer/internal/entity"
	"github.com/ds124wfegd/flagcomposer/internal/pkg/composer"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const processedPrefix = "combined_"

// ProcessedName is the name the composed image is stored under.
func ProcessedName(mainFilename string) string {
	return processedPrefix + filepath.Base(mainFilename)
}

func (s *flagService) Combine(ctx context.Context, req entity.CombineRequest) (*entity.CombineResult, error) {
	if req.Main == nil || req.Heart == nil {
		return nil, entity.InputError(entity.ErrFlagsRequired)
	}
	if req.Main.Filename == "" || req.Heart.Filename == "" {
		return nil, entity.InputError(entity.ErrFlagsEmpty)
	}
	if req.RequestID == "" {
		req.RequestID = uuid.New().String()
	}

	log := logrus.WithFields(logrus.Fields{
		"request_id": req.RequestID,
		"main_flag":  req.Main.Filename,
		"heart_flag": req.Heart.Filename,
		"template":   req.Template,
	})

	// Uploads are kept even when a later step fails.
	for _, fh := range []*multipart.FileHeader{req.Main, req.Heart} {
		if err := s.saveUpload(fh); err != nil {
			return nil, entity.ProcessingError(err)
		}
	}

	var mask *image.Alpha
	if req.Template.Masked() {
		if !s.repo.MaskExists(s.maskName) {
			log.Warn("Mask asset missing")
			return nil, entity.AssetMissingError(entity.ErrMaskNotFound)
		}
		m, err := s.loadMask()
		if err != nil {
			return nil, entity.ProcessingError(err)
		}
		mask = m
	}

	mainImg, err := s.decodeUpload(req.Main)
	if err != nil {
		return nil, entity.ProcessingError(err)
	}
	heartImg, err := s.decodeUpload(req.Heart)
	if err != nil {
		return nil, entity.ProcessingError(err)
	}

	combined := s.composer.Compose(mainImg, heartImg, mask)

	var body bytes.Buffer
	if err := s.composer.Encode(&body, combined, imaging.PNG); err != nil {
		return nil, entity.ProcessingError(fmt.Errorf("encode png: %w", err))
	}

	outputName := ProcessedName(req.Main.Filename)
	if err := s.saveProcessed(outputName, combined, body.Bytes()); err != nil {
		return nil, entity.ProcessingError(err)
	}

	event := entity.CombineEvent{
		ID:         req.RequestID,
		MainFile:   filepath.Base(req.Main.Filename),
		HeartFile:  filepath.Base(req.Heart.Filename),
		Template:   string(req.Template),
		OutputFile: outputName,
		Width:      combined.Bounds().Dx(),
		Height:     combined.Bounds().Dy(),
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.producer.SendMessage(ctx, req.RequestID, event); err != nil {
		log.WithError(err).Warn("Failed to publish combine event")
	}

	log.WithField("output", s.repo.ProcessedPath(outputName)).Info("Flags combined")

	return &entity.CombineResult{
		RequestID:  req.RequestID,
		OutputName: outputName,
		PNG:        body.Bytes(),
	}, nil
}

func (s *flagService) saveUpload(fh *multipart.FileHeader) error {
	src, err := fh.Open()
	if err != nil {
		return fmt.Errorf("open %s: %w", fh.Filename, err)
	}
	defer src.Close()

	if err := s.repo.SaveUpload(fh.Filename, src); err != nil {
		return fmt.Errorf("save %s: %w", fh.Filename, err)
	}
	return nil
}

func (s *flagService) decodeUpload(fh *multipart.FileHeader) (image.Image, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", fh.Filename, err)
	}
	defer src.Close()

	img, err := s.composer.Decode(src)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", fh.Filename, err)
	}
	return img, nil
}

func (s *flagService) loadMask() (*image.Alpha, error) {
	r, err := s.repo.OpenMask(s.maskName)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	mask, err := s.composer.LoadMask(r)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.maskName, err)
	}
	return mask, nil
}

// saveProcessed stores img in the format its name implies; pngBody is reused
// when that format is PNG.
func (s *flagService) saveProcessed(name string, img image.Image, pngBody []byte) error {
	format := composer.OutputFormat(name)
	if format == imaging.PNG {
		return s.repo.SaveProcessed(name, bytes.NewReader(pngBody))
	}

	var buf bytes.Buffer
	if err := s.composer.Encode(&buf, img, format); err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	return s.repo.SaveProcessed(name, &buf)
}
