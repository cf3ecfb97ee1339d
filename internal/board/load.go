package board

import (
	"bufio"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"reso/internal/palette"

	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// TextExt is the file extension of text boards.
const TextExt = ".txt"

// ImageReadError reports that a board source could not be opened or decoded.
type ImageReadError struct {
	Path string
	Err  error
}

func (e *ImageReadError) Error() string {
	return fmt.Sprintf("board: read %s: %v", e.Path, e.Err)
}

func (e *ImageReadError) Unwrap() error { return e.Err }

// Load reads and builds the board stored at path, named after the file.
func Load(path string) (*Board, error) {
	return LoadWithConfig(path, DefaultConfig())
}

// LoadWithConfig reads and builds the board stored at path. An empty
// cfg.Name is replaced by the file name without extension.
func LoadWithConfig(path string, cfg Config) (*Board, error) {
	img, err := ReadImage(path)
	if err != nil {
		return nil, err
	}
	if cfg.Name == "" {
		cfg.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return NewWithConfig(img, cfg)
}

// ReadImage decodes the board source at path. Text boards are recognised by
// their extension; everything else goes through the registered image
// decoders (PNG, GIF, BMP, TIFF).
func ReadImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &ImageReadError{Path: path, Err: err}
	}
	defer file.Close()

	if strings.EqualFold(filepath.Ext(path), TextExt) {
		img, err := DecodeText(file)
		if err != nil {
			return nil, &ImageReadError{Path: path, Err: err}
		}
		return img, nil
	}

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, &ImageReadError{Path: path, Err: errors.Wrap(err, "decode")}
	}
	return img, nil
}

// DecodeText parses a text board: one image row per line, one palette glyph
// per pixel. Lines starting with '#' are comments, short rows are padded with
// empty pixels and trailing blank lines are dropped.
func DecodeText(r io.Reader) (image.Image, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.HasPrefix(line, "#") {
			continue
		}
		rows = append(rows, line)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "board: scan text")
	}
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return nil, errors.New("board: text board has no rows")
	}

	w := 0
	for _, row := range rows {
		w = max(w, utf8.RuneCountInString(row))
	}
	img := image.NewRGBA(image.Rect(0, 0, w, len(rows)))
	empty := palette.Render(palette.Empty)
	for y, row := range rows {
		x := 0
		for _, ch := range row {
			res, err := palette.ParseGlyph(ch)
			if err != nil {
				return nil, errors.Wrapf(err, "board: line %d column %d", y+1, x+1)
			}
			img.SetRGBA(x, y, palette.Render(res))
			x++
		}
		for ; x < w; x++ {
			img.SetRGBA(x, y, empty)
		}
	}
	return img, nil
}

// EncodeText writes the current state of b as a text board.
func EncodeText(w io.Writer, b *Board) error {
	bw := bufio.NewWriter(w)
	size := b.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			res := palette.Empty
			if id, ok := b.regions.At(x, y); ok {
				if e, ok := b.circuit.Element(id); ok {
					res = palette.Resel{Class: e.Class(), Active: e.Active()}
				}
			}
			bw.WriteRune(palette.Glyph(res))
		}
		bw.WriteByte('\n')
	}
	return errors.Wrap(bw.Flush(), "board: write text")
}
