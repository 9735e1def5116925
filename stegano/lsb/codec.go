package lsb

import (
	"encoding/binary"
	"unicode/utf8"

	"pixveil/stegano/pixel"
)

/*
 * Encode hides payload inside a copy of buf and returns the copy.
 * The bit stream is a 32-bit big-endian byte length followed by the
 * payload bytes, most significant bit first. Pixels are walked
 * row-major, channels in R, G, B, A order (alpha only if the policy
 * says so), and each consumed channel gets its least significant bit
 * overwritten. Channels past the end of the stream are left alone.
 */
func Encode( buf *pixel.Buffer, payload []byte, policy ChannelPolicy ) (*pixel.Buffer, error) {
	channels := policy.ChannelsUsed()
	available := MaxPayloadBytes( buf.Width, buf.Height, channels )
	if len( payload ) > available {
		return nil, &CapacityError{ Required: len( payload ), Available: available }
	}

	bits := frameBits( payload )
	out := buf.Clone()
	for i, bit := range bits {
		idx := channelIndex( i, channels )
		out.Pix[ idx ] = (out.Pix[ idx ] & 0xfe) | bit
	}
	return out, nil
}

/*
 * Decode walks buf in the exact order Encode used, reads the 32-bit
 * length first and then exactly that many payload bytes. A length the
 * image could not possibly hold means the image was never encoded (the
 * header bits are pixel noise) or was damaged after encoding.
 */
func Decode( buf *pixel.Buffer, policy ChannelPolicy ) ([]byte, int, error) {
	channels := policy.ChannelsUsed()
	if buf.Width * buf.Height * channels < HeaderBits {
		return nil, 0, ErrCorruptImage
	}

	header := bytesFromBits( readBits( buf, 0, HeaderBits, channels ) )
	length := int( binary.BigEndian.Uint32( header ) )
	if length > MaxPayloadBytes( buf.Width, buf.Height, channels ) {
		return nil, 0, ErrCorruptImage
	}

	payload := bytesFromBits( readBits( buf, HeaderBits, length * 8, channels ) )
	if utf8.Valid( payload ) == false {
		return nil, 0, ErrInvalidEncoding
	}
	return payload, length, nil
}

// map a position in the logical bit stream to an index into Buffer.Pix.
// only the first `channels` channels of each pixel carry bits.
func channelIndex( pos, channels int ) int {
	return (pos / channels) * pixel.ChannelsPerPixel + pos % channels
}

func frameBits( payload []byte ) []uint8 {
	header := make( []byte, HeaderBits / 8 )
	binary.BigEndian.PutUint32( header, uint32(len( payload )) )

	bits := make( []uint8, 0, (len( header ) + len( payload )) * 8 )
	bits = appendBits( bits, header )
	bits = appendBits( bits, payload )
	return bits
}

func appendBits( bits []uint8, data []byte ) []uint8 {
	for _, b := range data {
		for shift := 7; shift >= 0; shift-- {
			bits = append( bits, (b >> uint(shift)) & 0x1 )
		}
	}
	return bits
}

func readBits( buf *pixel.Buffer, start, count, channels int ) []uint8 {
	bits := make( []uint8, count )
	for i := 0; i < count; i++ {
		bits[ i ] = buf.Pix[ channelIndex( start + i, channels ) ] & 0x1
	}
	return bits
}

func bytesFromBits( bits []uint8 ) []byte {
	result := make( []byte, 0, len( bits ) / 8 )
	for i := 0; i + 8 <= len( bits ); i += 8 {
		b := byte(0)
		for j := 0; j < 8; j++ {
			b = b << 1 | bits[ i + j ]
		}
		result = append( result, b )
	}
	return result
}
