package composer

import (
	"github.com/disintegration/imaging"

	// WebP uploads decode through image.Decode once registered.
	_ "golang.org/x/image/webp"
)

// OutputFormat picks the encoding for a saved file from its extension,
// falling back to PNG when the extension is unknown.
func OutputFormat(filename string) imaging.Format {
	format, err := imaging.FormatFromFilename(filename)
	if err != nil {
		return imaging.PNG
	}
	return format
}
