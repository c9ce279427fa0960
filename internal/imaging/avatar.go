package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	domain "github.com/BruksfildServices01/gobarber/internal/domain/user"
)

const (
	DefaultAvatarSize = 256
	DefaultQuality    = 80

	// uploads above this are refused before decoding
	MaxUploadBytes = 5 << 20
	MaxPixels      = 4096 * 4096
)

var ErrInvalidImage = errors.New("invalid image")

// AvatarProcessor decodes PNG, JPEG or WebP input, scales it down to fit a
// Size x Size box keeping the aspect ratio and re-encodes it as WebP.
type AvatarProcessor struct {
	Size    int
	Quality float32
}

func NewAvatarProcessor() *AvatarProcessor {
	return &AvatarProcessor{Size: DefaultAvatarSize, Quality: DefaultQuality}
}

func (p *AvatarProcessor) Process(r io.Reader) ([]byte, string, string, error) {
	raw, err := io.ReadAll(io.LimitReader(r, MaxUploadBytes+1))
	if err != nil {
		return nil, "", "", fmt.Errorf("read upload: %w", err)
	}
	if len(raw) > MaxUploadBytes {
		return nil, "", "", fmt.Errorf("%w: larger than %d bytes", ErrInvalidImage, MaxUploadBytes)
	}

	// the header is checked first so a small file cannot declare a huge raster
	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, "", "", fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.Width*cfg.Height > MaxPixels {
		return nil, "", "", fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrInvalidImage, cfg.Width, cfg.Height, MaxPixels)
	}

	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, "", "", fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	dst := p.scale(src)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, dst, &webp.Options{Quality: p.Quality}); err != nil {
		return nil, "", "", fmt.Errorf("encode webp: %w", err)
	}
	return buf.Bytes(), "image/webp", ".webp", nil
}

func (p *AvatarProcessor) scale(src image.Image) image.Image {
	b := src.Bounds()
	w, h := fit(b.Dx(), b.Dy(), p.Size)

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

// fit returns w x h shrunk to fit a box x box square. Smaller images are kept.
func fit(w, h, box int) (int, int) {
	if w <= box && h <= box {
		return w, h
	}
	if w >= h {
		return box, max(1, h*box/w)
	}
	return max(1, w*box/h), box
}

var _ domain.ImageProcessor = (*AvatarProcessor)(nil)
