package composer

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/disintegration/imaging"
)

const (
	MainWidth    = 36
	MainHeight   = 21
	CanvasWidth  = MainWidth + 2
	CanvasHeight = MainHeight + 2
	HeartWidth   = 24
	HeartHeight  = 18
)

// DefaultMaxPixels caps width*height of a decoded image, matching
// Pillow's decompression bomb limit.
const DefaultMaxPixels int64 = 89478485

var ErrTooManyPixels = errors.New("image exceeds pixel limit")

// HeartOffset is where the heart flag lands on the framed canvas.
var HeartOffset = image.Point{X: 0, Y: 0}

var (
	frameColor  = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	canvasColor = color.NRGBA{R: 255, G: 255, B: 255, A: 0}
)

type FlagComposer interface {
	// Compose frames main and overlays heart on it. A nil mask stretches
	// heart to HeartWidth x HeartHeight instead of clipping it.
	Compose(main, heart image.Image, mask *image.Alpha) *image.NRGBA
	Decode(r io.Reader) (image.Image, error)
	LoadMask(r io.Reader) (*image.Alpha, error)
	Encode(w io.Writer, img image.Image, format imaging.Format) error
}

type flagComposer struct {
	maxPixels int64
}

// NewFlagComposer rejects images larger than maxPixels before decoding
// them; a non-positive value selects DefaultMaxPixels.
func NewFlagComposer(maxPixels int64) FlagComposer {
	if maxPixels <= 0 {
		maxPixels = DefaultMaxPixels
	}
	return &flagComposer{maxPixels: maxPixels}
}

func (c *flagComposer) Compose(main, heart image.Image, mask *image.Alpha) *image.NRGBA {
	framed := FrameMain(main)

	var overlay *image.NRGBA
	if mask != nil {
		overlay = ClipToMask(heart, mask)
	} else {
		overlay = imaging.Resize(heart, HeartWidth, HeartHeight, imaging.Lanczos)
	}

	out := imaging.Clone(framed)
	PasteMasked(out, overlay, AlphaMask(overlay), HeartOffset)
	return out
}

func (c *flagComposer) Decode(r io.Reader) (image.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if pixels := int64(cfg.Width) * int64(cfg.Height); pixels > c.maxPixels {
		return nil, fmt.Errorf("%w: %dx%d is more than %d pixels", ErrTooManyPixels, cfg.Width, cfg.Height, c.maxPixels)
	}

	return imaging.Decode(bytes.NewReader(data))
}

func (c *flagComposer) LoadMask(r io.Reader) (*image.Alpha, error) {
	img, err := c.Decode(r)
	if err != nil {
		return nil, err
	}
	return AlphaMask(img), nil
}

func (c *flagComposer) Encode(w io.Writer, img image.Image, format imaging.Format) error {
	return imaging.Encode(w, img, format)
}

// FrameMain stretches img to MainWidth x MainHeight and places it inside a
// transparent canvas with a one pixel white frame whose corners are notched.
func FrameMain(img image.Image) *image.NRGBA {
	resized := imaging.Resize(img, MainWidth, MainHeight, imaging.Lanczos)
	canvas := imaging.New(CanvasWidth, CanvasHeight, canvasColor)
	canvas = imaging.Paste(canvas, resized, image.Pt(1, 1))

	for _, p := range FramePoints() {
		canvas.SetNRGBA(p.X, p.Y, frameColor)
	}
	return canvas
}

// FramePoints lists the canvas pixels painted white by FrameMain: the outer
// ring without its four corners, plus the pixel diagonally inside each corner.
func FramePoints() []image.Point {
	const right, bottom = CanvasWidth - 1, CanvasHeight - 1

	points := make([]image.Point, 0, 2*(right-1)+2*(bottom-1)+4)
	for x := 1; x < right; x++ {
		points = append(points, image.Pt(x, 0), image.Pt(x, bottom))
	}
	for y := 1; y < bottom; y++ {
		points = append(points, image.Pt(0, y), image.Pt(right, y))
	}
	return append(points,
		image.Pt(1, 1),
		image.Pt(right-1, 1),
		image.Pt(1, bottom-1),
		image.Pt(right-1, bottom-1),
	)
}

// ClipToMask stretches img to the mask size and keeps it only where the mask is set.
func ClipToMask(img image.Image, mask *image.Alpha) *image.NRGBA {
	w, h := mask.Bounds().Dx(), mask.Bounds().Dy()
	resized := imaging.Resize(img, w, h, imaging.Lanczos)
	clipped := imaging.New(w, h, color.NRGBA{})
	PasteMasked(clipped, resized, mask, image.Point{})
	return clipped
}

// AlphaMask extracts the alpha channel of img, anchored at (0,0).
func AlphaMask(img image.Image) *image.Alpha {
	src := imaging.Clone(img)
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+w*4]
		for x := 0; x < w; x++ {
			mask.Pix[y*mask.Stride+x] = row[x*4+3]
		}
	}
	return mask
}

// PasteMasked blends src onto dst at pt, weighting every channel (alpha
// included) by the mask value: 0 keeps dst, 255 copies src. Pixels outside
// dst or outside the mask are left alone.
func PasteMasked(dst, src *image.NRGBA, mask *image.Alpha, pt image.Point) {
	sb, mb := src.Bounds(), mask.Bounds()
	area := image.Rect(0, 0, sb.Dx(), sb.Dy()).
		Intersect(image.Rect(0, 0, mb.Dx(), mb.Dy())).
		Add(pt).
		Intersect(dst.Bounds())

	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			dx, dy := x-pt.X, y-pt.Y
			m := mask.AlphaAt(mb.Min.X+dx, mb.Min.Y+dy).A
			if m == 0 {
				continue
			}
			di := dst.PixOffset(x, y)
			si := src.PixOffset(sb.Min.X+dx, sb.Min.Y+dy)
			if m == 0xff {
				copy(dst.Pix[di:di+4], src.Pix[si:si+4])
				continue
			}
			for i := 0; i < 4; i++ {
				dst.Pix[di+i] = blend(dst.Pix[di+i], src.Pix[si+i], m)
			}
		}
	}
}

// blend returns round((d*(255-m) + s*m) / 255).
func blend(d, s, m uint8) uint8 {
	v := uint32(d)*uint32(0xff-m) + uint32(s)*uint32(m) + 0x80
	return uint8((v>>8 + v) >> 8)
}
