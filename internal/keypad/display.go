package keypad

import "unicode/utf8"

// Size is a display font tier chosen from the entry length.
type Size int

const (
	SizeHuge Size = iota
	SizeLarge
	SizeMedium
	SizeSmall
	SizeTiny
	SizeMinimal
)

var sizeTiers = []struct {
	maxLen int
	size   Size
	px     int
}{
	{maxLen: 6, size: SizeHuge, px: 64},
	{maxLen: 8, size: SizeLarge, px: 52},
	{maxLen: 10, size: SizeMedium, px: 44},
	{maxLen: 12, size: SizeSmall, px: 36},
	{maxLen: 14, size: SizeTiny, px: 30},
}

// DisplaySize picks the tier for entry; longer entries get smaller type.
func DisplaySize(entry string) Size {
	n := utf8.RuneCountInString(entry)
	if n == 0 {
		n = 1
	}
	for _, tier := range sizeTiers {
		if n <= tier.maxLen {
			return tier.size
		}
	}
	return SizeMinimal
}

// Pixels is the CSS font size for the tier.
func (s Size) Pixels() int {
	for _, tier := range sizeTiers {
		if tier.size == s {
			return tier.px
		}
	}
	return 26
}
