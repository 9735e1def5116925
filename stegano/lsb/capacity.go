package lsb

// the length header occupies the first 32 embedded bits
const HeaderBits = 32

// no payload longer than the header can express is embeddable,
// however large the image
const maxHeaderValue = 1<<HeaderBits - 1

/*
 * ChannelPolicy decides which channels of a pixel carry data.
 * Red, green and blue always do; alpha only when IncludeAlpha is set.
 * The same policy must be used for encoding and extraction, otherwise
 * extraction silently reassembles the wrong bits.
 */
type ChannelPolicy struct {
	IncludeAlpha	bool
}

func(p ChannelPolicy) ChannelsUsed() int {
	if p.IncludeAlpha {
		return 4
	}
	return 3
}

// MaxPayloadBytes reports how many payload bytes an image of the given
// dimensions can carry once the length header is accounted for.
// Images too small for the header alone have capacity 0, not negative.
func MaxPayloadBytes( width, height, channelsUsed int ) int {
	totalBits := width * height * channelsUsed
	if totalBits < HeaderBits {
		return 0
	}
	maxBytes := (totalBits - HeaderBits) / 8
	if int64(maxBytes) > maxHeaderValue {
		return maxHeaderValue
	}
	return maxBytes
}

func Fits( payloadLen, width, height, channelsUsed int ) bool {
	return payloadLen <= MaxPayloadBytes( width, height, channelsUsed )
}
