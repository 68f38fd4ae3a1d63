package raster

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // decoders for embedded images
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // CCITT and other bilevel scans are extracted as TIFF
)

// ErrNoImage is returned when no backend could produce an image of the page.
var ErrNoImage = errors.New("no page image available")

// Method identifies the backend that produced a page image.
type Method int

const (
	// MethodRender is a full-page rasterization by pdftoppm.
	MethodRender Method = iota
	// MethodEmbedded is the page's largest embedded image.
	MethodEmbedded
)

// String returns the method name used in logs and warnings
func (m Method) String() string {
	switch m {
	case MethodRender:
		return "pdftoppm"
	case MethodEmbedded:
		return "embedded"
	default:
		return "unknown"
	}
}

// DefaultPdftoppm is the renderer binary looked up on PATH.
const DefaultPdftoppm = "pdftoppm"

// maxUpscaleSide is the longest side, in pixels, below which embedded images
// are upscaled by the requested scale. Larger scans already carry enough
// resolution for OCR.
const maxUpscaleSide = 1700

// Options configures a Renderer.
type Options struct {
	// Pdftoppm is the pdftoppm binary (default: DefaultPdftoppm).
	Pdftoppm string

	// DisableRender skips pdftoppm and uses embedded images only.
	DisableRender bool
}

// Image is an encoded page image.
type Image struct {
	PNG    []byte
	Width  int
	Height int
	Method Method
}

// Renderer produces page images from one PDF file.
type Renderer struct {
	path    string
	options Options
}

// New creates a renderer for the PDF at path.
func New(path string, options Options) *Renderer {
	if options.Pdftoppm == "" {
		options.Pdftoppm = DefaultPdftoppm
	}
	return &Renderer{path: path, options: options}
}

// RenderPage renders the page at the given 0-based index. Scale 1 is 72 DPI.
func (r *Renderer) RenderPage(ctx context.Context, index int, scale float64) (*Image, error) {
	if scale <= 0 {
		scale = 1
	}

	if !r.options.DisableRender {
		img, err := r.renderWithPdftoppm(ctx, index, scale)
		if err == nil {
			return img, nil
		}
		if !errors.Is(err, exec.ErrNotFound) {
			return nil, err
		}
	}

	return r.extractEmbedded(index, scale)
}

// renderWithPdftoppm renders a single page using pdftoppm (poppler-utils).
func (r *Renderer) renderWithPdftoppm(ctx context.Context, index int, scale float64) (*Image, error) {
	bin, err := exec.LookPath(r.options.Pdftoppm)
	if err != nil {
		return nil, err
	}

	tmpDir, err := os.MkdirTemp("", "pdfoutline-page-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	outputPrefix := filepath.Join(tmpDir, "page")
	pageStr := strconv.Itoa(index + 1)

	// -singlefile: don't add page number suffix
	cmd := exec.CommandContext(ctx, bin,
		"-png",
		"-f", pageStr,
		"-l", pageStr,
		"-r", strconv.FormatFloat(72*scale, 'f', -1, 64),
		"-singlefile",
		r.path,
		outputPrefix,
	)
	output, err := cmd.CombinedOutput()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("pdftoppm failed: %w (output: %s)", err, bytes.TrimSpace(output))
	}

	data, err := os.ReadFile(outputPrefix + ".png")
	if err != nil {
		return nil, fmt.Errorf("pdftoppm did not create expected output: %w", err)
	}

	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("invalid pdftoppm output: %w", err)
	}

	return &Image{PNG: data, Width: cfg.Width, Height: cfg.Height, Method: MethodRender}, nil
}

// extractEmbedded returns the largest image on the page as PNG.
func (r *Renderer) extractEmbedded(index int, scale float64) (*Image, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	pages, err := api.ExtractImagesRaw(f, []string{strconv.Itoa(index + 1)}, conf)
	if err != nil {
		return nil, fmt.Errorf("failed to extract images: %w", err)
	}

	var candidates []model.Image
	for _, byObj := range pages {
		for _, img := range byObj {
			candidates = append(candidates, img)
		}
	}
	best, ok := largest(candidates)
	if !ok {
		return nil, fmt.Errorf("page %d: %w", index+1, ErrNoImage)
	}

	src, _, err := image.Decode(best)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s image: %w", best.FileType, err)
	}

	dst := upscale(src, scale)
	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}

	b := dst.Bounds()
	return &Image{PNG: buf.Bytes(), Width: b.Dx(), Height: b.Dy(), Method: MethodEmbedded}, nil
}

// largest picks the image with the most pixels. Ties keep the lowest object
// number so the choice does not depend on map iteration order.
func largest(images []model.Image) (model.Image, bool) {
	var (
		best  model.Image
		found bool
	)
	for _, img := range images {
		if img.Reader == nil {
			continue
		}
		area, bestArea := img.Width*img.Height, best.Width*best.Height
		if !found || area > bestArea || (area == bestArea && img.ObjNr < best.ObjNr) {
			best, found = img, true
		}
	}
	return best, found
}

// upscale enlarges small images by scale using Catmull-Rom resampling.
func upscale(src image.Image, scale float64) image.Image {
	b := src.Bounds()
	longest := b.Dx()
	if b.Dy() > longest {
		longest = b.Dy()
	}
	if scale <= 1 || longest >= maxUpscaleSide {
		return src
	}

	w := int(float64(b.Dx())*scale + 0.5)
	h := int(float64(b.Dy())*scale + 0.5)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}
