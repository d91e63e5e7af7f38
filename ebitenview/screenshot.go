package ebitenview

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/evergreen"
)

// shot describes one captured frame. Its fields name the file so a run's
// screenshots sort by frame and show the morph state they caught.
type shot struct {
	label       string
	frame       uint64
	arrangement evergreen.Arrangement
	progress    float64
}

// fileName is "<frame>_<label>_<arrangement>_p<progress>.png".
func (s shot) fileName() string {
	return fmt.Sprintf("%06d_%s_%s_p%.3f.png", s.frame, labelSlug(s.label), s.arrangement, s.progress)
}

// labelSlug lower-cases label and keeps letters, digits and dashes.
func labelSlug(label string) string {
	slug := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			return unicode.ToLower(r)
		case r == '-':
			return r
		}
		return '_'
	}, strings.TrimSpace(label))
	if slug == "" {
		return "shot"
	}
	return slug
}

// Screenshot asks for the next drawn frame to be saved under label, from
// the P key or a script's screenshot step.
func (v *View) Screenshot(label string) {
	v.shots = append(v.shots, label)
}

// flushScreenshots saves the frame just drawn once per queued label,
// stamped with the buffer's frame counter and the current morph state.
func (v *View) flushScreenshots(screen *ebiten.Image) {
	if len(v.shots) == 0 {
		return
	}
	b := screen.Bounds()
	// ebiten pixels are premultiplied, as image.RGBA expects.
	img := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	screen.ReadPixels(img.Pix)

	for _, label := range v.shots {
		s := shot{
			label:       label,
			frame:       v.buf.Frame(),
			arrangement: v.arrangement(),
			progress:    v.scene.Progress(),
		}
		if _, err := saveShot(v.ScreenshotDir, s, img); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[evergreen] screenshot %q: %v\n", label, err)
		}
	}
	v.shots = v.shots[:0]
}

// saveShot encodes img as PNG into dir and returns the file path.
func saveShot(dir string, s shot, img image.Image) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot dir: %w", err)
	}
	path := filepath.Join(dir, s.fileName())
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
