package storage

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"

	"github.com/BruksfildServices01/kezya-clinic/internal/httperr"
)

const (
	MaxImageSide = 1600
	webpQuality  = 80

	ContentTypeWebP = "image/webp"
	ContentTypePDF  = "application/pdf"
)

var imageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
}

// Prepared é o conteúdo pronto para gravação.
type Prepared struct {
	Body        []byte
	ContentType string
	Ext         string
}

// Prepare converte imagens para webp (reduzindo o lado maior para
// MaxImageSide). PDF e webp seguem como vieram; outros tipos são recusados.
func Prepare(contentType string, data []byte) (Prepared, error) {
	switch {
	case contentType == ContentTypePDF:
		return Prepared{Body: data, ContentType: ContentTypePDF, Ext: ".pdf"}, nil
	case contentType == ContentTypeWebP:
		return Prepared{Body: data, ContentType: ContentTypeWebP, Ext: ".webp"}, nil
	case imageTypes[contentType]:
		body, err := toWebP(data)
		if err != nil {
			return Prepared{}, err
		}
		return Prepared{Body: body, ContentType: ContentTypeWebP, Ext: ".webp"}, nil
	}
	return Prepared{}, httperr.ErrBusiness("unsupported_attachment")
}

func toWebP(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_image")
	}

	img := downscale(src, MaxImageSide)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func downscale(src image.Image, maxSide int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxSide && h <= maxSide {
		return src
	}

	if w >= h {
		h = h * maxSide / w
		w = maxSide
	} else {
		w = w * maxSide / h
		h = maxSide
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
