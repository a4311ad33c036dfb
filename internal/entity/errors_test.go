package entity

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		kind   ErrorKind
		status int
	}{
		{name: "input", err: InputError(ErrFlagsRequired), kind: KindInput, status: http.StatusBadRequest},
		{name: "asset missing", err: AssetMissingError(ErrMaskNotFound), kind: KindAssetMissing, status: http.StatusNotFound},
		{name: "too large", err: TooLargeError(ErrUploadTooLarge), kind: KindTooLarge, status: http.StatusRequestEntityTooLarge},
		{name: "processing", err: ProcessingError(errors.New("boom")), kind: KindProcessing, status: http.StatusInternalServerError},
		{name: "wrapped input", err: fmt.Errorf("combine: %w", InputError(ErrFlagsEmpty)), kind: KindInput, status: http.StatusBadRequest},
		{name: "plain error", err: errors.New("disk full"), kind: KindProcessing, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, KindOf(tt.err))
			assert.Equal(t, tt.status, KindOf(tt.err).HTTPStatus())
		})
	}
}

func TestComposeErrorKeepsMessage(t *testing.T) {
	err := AssetMissingError(ErrMaskNotFound)

	assert.Equal(t, "Heart base image not found", err.Error())
	assert.ErrorIs(t, err, ErrMaskNotFound)
}

func TestTemplateMasked(t *testing.T) {
	assert.True(t, TemplateHeart.Masked())
	assert.True(t, Template("heart").Masked())
	assert.False(t, Template("").Masked())
	assert.False(t, Template("square").Masked())
	assert.False(t, Template("Heart").Masked())
}
