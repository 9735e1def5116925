package img

import (
	"bytes"

	"golang.org/x/image/bmp"

	"pixveil/stegano/pixel"
)

func LoadBMP( data []byte ) (*pixel.Buffer, error) {
	im, err := bmp.Decode( bytes.NewReader( data ) )
	if err != nil {
		return nil, err
	}
	return pixel.FromImage( im ), nil
}

func SaveBMP( buf *pixel.Buffer ) ([]byte, error) {
	out := new( bytes.Buffer )
	if err := bmp.Encode( out, buf.Image() ); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
