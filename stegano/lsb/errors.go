package lsb

import (
	"errors"
	"fmt"
)

var (
	// the recovered length header implies more data than the image can hold,
	// so the image was never encoded or has been altered since
	ErrCorruptImage = errors.New("Image contains no valid hidden message.")

	// the recovered bytes are not valid text, which points at bit corruption
	// or a channel policy mismatch between encode and decode
	ErrInvalidEncoding = errors.New("Hidden payload is not valid text.")
)

type CapacityError struct {
	Required	int	// payload size in bytes
	Available	int	// what the image can hold under the chosen policy
}

func(e *CapacityError) Error() string {
	return fmt.Sprintf( "Message is too long for this image: need %d bytes, have %d.",
		e.Required, e.Available )
}
