package img

import (
	"bytes"
	"image/png"

	"pixveil/stegano/pixel"
)

func LoadPNG( data []byte ) (*pixel.Buffer, error) {
	im, err := png.Decode( bytes.NewReader( data ) )
	if err != nil {
		return nil, err
	}
	return pixel.FromImage( im ), nil
}

func SavePNG( buf *pixel.Buffer ) ([]byte, error) {
	out := new( bytes.Buffer )
	if err := png.Encode( out, buf.Image() ); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
