package integrations

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// PosterOptions controls how a poster is turned into terminal cells.
type PosterOptions struct {
	// Width in terminal columns. Each row of cells shows two pixel rows.
	Width     int
	Grayscale bool
	// Contrast of 1.0 leaves the image as is.
	Contrast float64
}

var DefaultPosterOptions = PosterOptions{Width: 40, Contrast: 1.0}

// PosterRenderer draws catalog posters with half-block characters.
type PosterRenderer struct {
	client  *http.Client
	options PosterOptions
}

func NewPosterRenderer(client *http.Client, options PosterOptions) *PosterRenderer {
	if client == nil {
		client = http.DefaultClient
	}
	if options.Width <= 0 {
		options.Width = DefaultPosterOptions.Width
	}
	if options.Contrast == 0 {
		options.Contrast = 1.0
	}
	return &PosterRenderer{client: client, options: options}
}

// Fetch downloads the image at url.
func (p *PosterRenderer) Fetch(ctx context.Context, url string) (ImageData, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return ImageData{}, err
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return ImageData{}, fmt.Errorf("failed to fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ImageData{}, fmt.Errorf("bad status: %s", resp.Status)
	}

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return ImageData{}, fmt.Errorf("failed to read image content: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}
	return ImageData{Content: content, ContentType: contentType}, nil
}

// Render fetches url and returns the poster as terminal art.
func (p *PosterRenderer) Render(ctx context.Context, url string) (string, error) {
	img, err := p.Fetch(ctx, url)
	if err != nil {
		return "", err
	}
	return p.RenderData(img.Content)
}

func (p *PosterRenderer) RenderData(content []byte) (string, error) {
	img, _, err := image.Decode(bytes.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}
	return p.RenderImage(img), nil
}

func (p *PosterRenderer) RenderImage(img image.Image) string {
	bounds := img.Bounds()
	width, height := p.calculateDimensions(bounds.Dx(), bounds.Dy())
	if width == 0 || height == 0 {
		return ""
	}

	var processed image.Image = p.resize(img, width, height)
	if p.options.Grayscale {
		processed = toGrayscale(processed)
	}
	if p.options.Contrast != 1.0 {
		processed = adjustContrast(processed, p.options.Contrast)
	}

	var b strings.Builder
	for y := 0; y < height; y += 2 {
		for x := 0; x < width; x++ {
			top := hexColor(processed.At(x, y))
			bottom := top
			if y+1 < height {
				bottom = hexColor(processed.At(x, y+1))
			}
			cell := lipgloss.NewStyle().
				Foreground(lipgloss.Color(top)).
				Background(lipgloss.Color(bottom))
			b.WriteString(cell.Render("▀"))
		}
		if y+2 < height {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// calculateDimensions scales to the configured width, keeping the aspect
// ratio, with an even pixel height so rows pair up.
func (p *PosterRenderer) calculateDimensions(width, height int) (int, int) {
	if width == 0 || height == 0 {
		return 0, 0
	}
	newWidth := p.options.Width
	newHeight := int(float64(height) * float64(newWidth) / float64(width))
	if newHeight%2 == 1 {
		newHeight++
	}
	if newHeight == 0 {
		newHeight = 2
	}
	return newWidth, newHeight
}

func (p *PosterRenderer) resize(img image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}

func toGrayscale(img image.Image) image.Image {
	bounds := img.Bounds()
	gray := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			gray.Set(x, y, img.At(x, y))
		}
	}
	return gray
}

func adjustContrast(img image.Image, factor float64) image.Image {
	bounds := img.Bounds()
	adjusted := image.NewRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			adjusted.SetRGBA(x, y, color.RGBA{
				adjustChannel(uint8(r>>8), factor),
				adjustChannel(uint8(g>>8), factor),
				adjustChannel(uint8(b>>8), factor),
				uint8(a >> 8),
			})
		}
	}
	return adjusted
}

func adjustChannel(value uint8, factor float64) uint8 {
	adjusted := (float64(value)-128)*factor + 128
	if adjusted < 0 {
		return 0
	}
	if adjusted > 255 {
		return 255
	}
	return uint8(adjusted)
}

func hexColor(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
