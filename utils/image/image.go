package imagex

import (
	"bytes"
	"errors"

	"github.com/disintegration/imaging"
)

// ErrDecode is returned when the input cannot be parsed as a raster image.
var ErrDecode = errors.New("unsupported image format")

const (
	avatarWidth  = 250
	avatarHeight = 250
	jpegQuality  = 80
)

// ProcessAvatar decodes buf, stretches it to 250x250 (aspect ratio is not
// preserved) and re-encodes it as JPEG. The encoder quality is fixed so
// identical input produces identical output.
func ProcessAvatar(buf []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(buf))
	if err != nil {
		return nil, ErrDecode
	}

	resized := imaging.Resize(img, avatarWidth, avatarHeight, imaging.Lanczos)

	var out bytes.Buffer
	if err := imaging.Encode(&out, resized, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}
