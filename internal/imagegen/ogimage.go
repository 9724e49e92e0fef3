package imagegen

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strings"
	"sync"
	"time"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// OGWidth and OGHeight are the standard Open Graph image dimensions.
const (
	OGWidth  = 1200
	OGHeight = 630
)

// ogScale: text is drawn small with the bitmap face and scaled up with
// nearest-neighbour, giving the banner a deliberate chunky-pixel look.
const ogScale = 6

// OGImageData contains the dynamic data for the OG image.
type OGImageData struct {
	Location    string
	Temperature string // pre-formatted, ASCII only (basicfont has no degree glyph)
	Condition   string
}

// Render draws the banner and returns it PNG-encoded.
func Render(data OGImageData) ([]byte, error) {
	small := image.NewRGBA(image.Rect(0, 0, OGWidth/ogScale, OGHeight/ogScale))

	bg := color.RGBA{R: 0x0f, G: 0x0f, B: 0x1a, A: 0xff}
	accent := color.RGBA{R: 0x4f, G: 0xc3, B: 0xf7, A: 0xff}
	muted := color.RGBA{R: 0x88, G: 0x88, B: 0xa0, A: 0xff}
	white := color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}

	draw.Draw(small, small.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	w := small.Bounds().Dx()
	h := small.Bounds().Dy()

	drawCentered(small, face, ascii(strings.ToUpper(data.Location)), w/2, h/2-20, muted)
	drawCentered(small, face, ascii(data.Temperature), w/2, h/2, accent)
	drawCentered(small, face, ascii(data.Condition), w/2, h/2+20, white)

	big := image.NewRGBA(image.Rect(0, 0, OGWidth, OGHeight))
	xdraw.NearestNeighbor.Scale(big, big.Bounds(), small, small.Bounds(), xdraw.Src, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, big); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func drawCentered(dst draw.Image, face font.Face, s string, cx, baseline int, c color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
	}
	width := d.MeasureString(s)
	d.Dot = fixed.P(cx, baseline)
	d.Dot.X -= width / 2
	d.DrawString(s)
}

// ascii drops anything outside the printable ASCII range the bitmap face
// covers.
func ascii(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= 0x20 && r <= 0x7e {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// OGImageCache caches the generated OG image for a short period.
type OGImageCache struct {
	mu        sync.RWMutex
	data      []byte
	expiresAt time.Time
	cacheTTL  time.Duration
}

// NewOGImageCache creates a new OG image cache with the specified TTL.
func NewOGImageCache(ttl time.Duration) *OGImageCache {
	return &OGImageCache{
		cacheTTL: ttl,
	}
}

// Get returns the cached OG image if still valid.
func (c *OGImageCache) Get() ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.data == nil || time.Now().After(c.expiresAt) {
		return nil, false
	}
	return c.data, true
}

// Set stores a new OG image in the cache.
func (c *OGImageCache) Set(data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data = data
	c.expiresAt = time.Now().Add(c.cacheTTL)
}
