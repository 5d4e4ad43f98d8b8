// Package format provides the means to format types into human readable strings.
package format

import "fmt"

const (
	kibibyte float64 = 1024
	mebibyte         = kibibyte * 1024
	gibibyte         = mebibyte * 1024
	tebibyte         = gibibyte * 1024
	pebibyte         = tebibyte * 1024
)

// Bytes returns the given number of bytes formatted using the largest possible binary unit, to two decimal places.
func Bytes(bytes uint64) string {
	value := float64(bytes)

	for _, unit := range []struct {
		size   float64
		suffix string
	}{
		{pebibyte, "PiB"},
		{tebibyte, "TiB"},
		{gibibyte, "GiB"},
		{mebibyte, "MiB"},
		{kibibyte, "KiB"},
	} {
		if value >= unit.size {
			return fmt.Sprintf("%.2f%s", value/unit.size, unit.suffix)
		}
	}

	return fmt.Sprintf("%dB", bytes)
}
