package lsb

import (
	"bytes"
	"errors"
	"testing"

	"pixveil/stegano/pixel"
)

// deterministic pixel fill so every run sees the same "photo"
func testBuffer( width, height int ) *pixel.Buffer {
	buf := pixel.NewBuffer( width, height )
	for i := range buf.Pix {
		buf.Pix[ i ] = uint8( (i*31 + 17) % 251 )
	}
	return buf
}

func TestRoundTrip( t *testing.T ) {
	tests := [][]byte{
		nil,
		[]byte{},
		[]byte("Hello world!"),
		[]byte("тайное сообщение"),
		bytes.Repeat([]byte("a"), 4096),
		bytes.Repeat([]byte("A"), 10000),
	}

	policies := []ChannelPolicy{
		{ IncludeAlpha: false },
		{ IncludeAlpha: true },
	}

	for _, data := range tests {
		for _, policy := range policies {
			buf := testBuffer( 200, 200 )
			enc, err := Encode( buf, data, policy )
			if err != nil {
				t.Errorf("Failed to encode data: %v", err)
				continue
			}
			dec, length, err := Decode( enc, policy )
			if err != nil {
				t.Errorf("Failed to extract data: %v", err)
			} else if bytes.Equal( data, dec ) == false {
				t.Errorf("Steganography spoiled the data. %v != %v", data, dec)
			} else if length != len( data ) {
				t.Errorf("Wrong recovered length: %d != %d", length, len( data ))
			}
		}
	}
}

func TestHelloScenario( t *testing.T ) {
	// 10x10 RGB: 300 bits, minus the 32-bit header, is 33 bytes
	policy := ChannelPolicy{ IncludeAlpha: false }
	if got := MaxPayloadBytes( 10, 10, policy.ChannelsUsed() ); got != 33 {
		t.Fatalf("Wrong capacity for 10x10 RGB: %d != 33", got)
	}

	buf := testBuffer( 10, 10 )
	enc, err := Encode( buf, []byte("Hello"), policy )
	if err != nil {
		t.Fatalf("Failed to encode: %v", err)
	}
	dec, length, err := Decode( enc, policy )
	if err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	if string( dec ) != "Hello" || length != 5 {
		t.Errorf("Recovered (%q, %d), want (%q, 5)", dec, length, "Hello")
	}

	var capErr *CapacityError
	_, err = Encode( buf, bytes.Repeat([]byte("x"), 34), policy )
	if errors.As( err, &capErr ) == false {
		t.Fatalf("Expected CapacityError for 34 bytes, got %v", err)
	}
	if capErr.Required != 34 || capErr.Available != 33 {
		t.Errorf("Wrong diagnostics: required %d, available %d", capErr.Required, capErr.Available)
	}
}

func TestEncodeOnlyTouchesLSBs( t *testing.T ) {
	buf := testBuffer( 64, 64 )
	enc, err := Encode( buf, []byte("bounded distortion"), ChannelPolicy{} )
	if err != nil {
		t.Fatalf("Failed to encode: %v", err)
	}
	for i := range buf.Pix {
		diff := int( buf.Pix[i] ) - int( enc.Pix[i] )
		if diff < -1 || diff > 1 {
			t.Fatalf("Channel %d moved by more than one: %d -> %d", i, buf.Pix[i], enc.Pix[i])
		}
	}
}

func TestUntouchedTail( t *testing.T ) {
	payload := []byte("Hi")
	policy := ChannelPolicy{ IncludeAlpha: false }
	channels := policy.ChannelsUsed()

	buf := testBuffer( 32, 32 )
	enc, err := Encode( buf, payload, policy )
	if err != nil {
		t.Fatalf("Failed to encode: %v", err)
	}

	// mark every storage index the bit stream may have written
	written := map[int]bool{}
	for pos := 0; pos < HeaderBits + 8 * len( payload ); pos++ {
		written[ channelIndex( pos, channels ) ] = true
	}
	for i := range buf.Pix {
		if written[ i ] {
			continue
		}
		if buf.Pix[i] != enc.Pix[i] {
			t.Fatalf("Channel %d beyond the payload was modified: %d -> %d", i, buf.Pix[i], enc.Pix[i])
		}
	}
}

func TestEncodeDoesNotMutateInput( t *testing.T ) {
	buf := testBuffer( 16, 16 )
	orig := make( []uint8, len( buf.Pix ) )
	copy( orig, buf.Pix )

	if _, err := Encode( buf, []byte("pure transform"), ChannelPolicy{} ); err != nil {
		t.Fatalf("Failed to encode: %v", err)
	}
	if bytes.Equal( orig, buf.Pix ) == false {
		t.Error("Encode modified the caller's buffer")
	}
}

func TestDecodeGarbage( t *testing.T ) {
	// all LSBs set: the header reads as 0xffffffff, far past any capacity
	buf := pixel.NewBuffer( 50, 50 )
	for i := range buf.Pix {
		buf.Pix[ i ] = 0xff
	}
	_, _, err := Decode( buf, ChannelPolicy{} )
	if errors.Is( err, ErrCorruptImage ) == false {
		t.Errorf("Expected corrupt image error, got %v", err)
	}
}

func TestDecodeTooSmallForHeader( t *testing.T ) {
	// 3x3 RGB is 27 bits, not even enough for the header
	buf := testBuffer( 3, 3 )
	_, _, err := Decode( buf, ChannelPolicy{} )
	if errors.Is( err, ErrCorruptImage ) == false {
		t.Errorf("Expected corrupt image error, got %v", err)
	}
}

func TestDecodeInvalidText( t *testing.T ) {
	// a well-framed payload that is not valid utf-8
	buf := testBuffer( 20, 20 )
	enc, err := Encode( buf, []byte{ 0xff, 0xfe, 0xfd }, ChannelPolicy{} )
	if err != nil {
		t.Fatalf("Failed to encode: %v", err)
	}
	_, _, err = Decode( enc, ChannelPolicy{} )
	if errors.Is( err, ErrInvalidEncoding ) == false {
		t.Errorf("Expected invalid encoding error, got %v", err)
	}
}
