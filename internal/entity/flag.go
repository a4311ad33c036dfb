package entity

import (
	"mime/multipart"
	"time"
)

// Template selects how the heart flag is clipped before it is overlaid.
type Template string

const TemplateHeart Template = "heart"

// Masked reports whether the template clips the heart flag with the mask
// asset. Every other value, the empty one included, is a plain stretch.
func (t Template) Masked() bool {
	return t == TemplateHeart
}

type CombineRequest struct {
	RequestID string
	Main      *multipart.FileHeader
	Heart     *multipart.FileHeader
	Template  Template
}

type CombineResult struct {
	RequestID  string
	OutputName string
	PNG        []byte
}

// CombineEvent is published after every successful combine.
type CombineEvent struct {
	ID         string    `json:"id"`
	MainFile   string    `json:"main_file"`
	HeartFile  string    `json:"heart_file"`
	Template   string    `json:"template"`
	OutputFile string    `json:"output_file"`
	Width      int       `json:"width"`
	Height     int       `json:"height"`
	CreatedAt  time.Time `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
