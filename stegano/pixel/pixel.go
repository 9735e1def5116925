package pixel

import (
	"image"
	"image/draw"
)

// number of stored channels per pixel (R, G, B, A)
const ChannelsPerPixel = 4

/*
 * Buffer is an in-memory pixel grid: width x height pixels,
 * four 8-bit channels each, stored row-major. It is the only
 * representation the codec works with; file formats are the
 * business of the img package.
 *
 * Channels are stored non-premultiplied. With a premultiplied grid
 * the writers would rescale R, G and B against any alpha the codec
 * touched, destroying the embedded bits.
 */
type Buffer struct {
	Width	int
	Height	int
	Pix	[]uint8	// non-premultiplied RGBA, 4 bytes per pixel
}

func NewBuffer( width, height int ) *Buffer {
	return &Buffer{
		Width: width,
		Height: height,
		Pix: make( []uint8, width * height * ChannelsPerPixel ),
	}
}

// flatten any decoded image into the canonical grid
func FromImage( img image.Image ) *Buffer {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	nrgba := image.NewNRGBA( image.Rect( 0, 0, width, height ) )
	draw.Draw( nrgba, nrgba.Bounds(), img, bounds.Min, draw.Src )

	return &Buffer{
		Width: width,
		Height: height,
		Pix: nrgba.Pix,
	}
}

// hand the grid back as a drawable image for the writers
func(b *Buffer) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix: b.Pix,
		Stride: b.Width * ChannelsPerPixel,
		Rect: image.Rect( 0, 0, b.Width, b.Height ),
	}
}

func(b *Buffer) Clone() *Buffer {
	pix := make( []uint8, len( b.Pix ) )
	copy( pix, b.Pix )
	return &Buffer{
		Width: b.Width,
		Height: b.Height,
		Pix: pix,
	}
}
