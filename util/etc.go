package util

import (
	"golang.org/x/text/unicode/norm"
)

// bring recovered text to NFC before showing it to the user;
// the bits round-trip exactly, display should too
func FixUnicode( in string ) string {
	return norm.NFC.String( in )
}
