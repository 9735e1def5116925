package img

import (
	"fmt"

	"pixveil/stegano/pixel"
)

const (
	FormatPNG = "png"
	FormatBMP = "bmp"
	FormatJPEG = "jpeg"
	FormatGIF = "gif"
	FormatUnknown = ""
)

// recognize the container by its magic bytes
func Sniff( data []byte ) string {
	if len( data ) >= 8 &&
		data[0] == 0x89 && data[1] == 0x50 && data[2] == 0x4e &&
		data[3] == 0x47 && data[4] == 0x0d && data[5] == 0x0a &&
		data[6] == 0x1a && data[7] == 0x0a {
		return FormatPNG
	}
	if len( data ) >= 2 && data[0] == 0x42 && data[1] == 0x4d {
		return FormatBMP
	}
	if len( data ) >= 3 && data[0] == 0xff && data[1] == 0xd8 && data[2] == 0xff {
		return FormatJPEG
	}
	if len( data ) >= 3 && data[0] == 0x47 && data[1] == 0x49 && data[2] == 0x46 {
		return FormatGIF
	}
	return FormatUnknown
}

// Load decodes raw file bytes into a pixel buffer and reports the
// detected format so Save can write the result back the same way.
func Load( data []byte ) (*pixel.Buffer, string, error) {
	format := Sniff( data )
	switch format {
	case FormatPNG:
		buf, err := LoadPNG( data )
		return buf, format, err
	case FormatBMP:
		buf, err := LoadBMP( data )
		return buf, format, err
	case FormatJPEG, FormatGIF:
		// hidden bits would not survive re-compression or palette mapping
		return nil, format, fmt.Errorf( "Format %s is not supported: lossy and palette-based images cannot carry LSB data.", format )
	}
	return nil, format, fmt.Errorf( "Unsupported image format." )
}

func Save( buf *pixel.Buffer, format string ) ([]byte, error) {
	switch format {
	case FormatPNG:
		return SavePNG( buf )
	case FormatBMP:
		return SaveBMP( buf )
	}
	return nil, fmt.Errorf( "Unsupported image format." )
}
