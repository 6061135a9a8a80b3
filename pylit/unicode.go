package pylit

import "sort"

// Inclusive, sorted, non-overlapping ranges of Unicode scalar values with
// no printable form: general categories Cc, Cf, Cs, Co, Cn plus the Zl
// and Zp separators, extracted from UnicodeData.txt. Covers the C0/C1
// controls, soft hyphen, Arabic and Mongolian format controls, zero-width
// and bidi characters, line/paragraph separators, surrogates, the BOM,
// interlinear annotation, Egyptian hieroglyph and shorthand format
// controls, musical notation controls, tag and variation-selector ranges,
// and the private-use planes.
var needEscapeRanges = [...][2]rune{
	{0x0, 0x1f},
	{0x7f, 0x9f},
	{0xad, 0xad},
	{0x600, 0x605},
	{0x61c, 0x61c},
	{0x6dd, 0x6dd},
	{0x70f, 0x70f},
	{0x890, 0x891},
	{0x8e2, 0x8e2},
	{0x180e, 0x180e},
	{0x200b, 0x200f},
	{0x2028, 0x202e},
	{0x2060, 0x2064},
	{0x2066, 0x206f},
	{0xd800, 0xf8ff},
	{0xfeff, 0xfeff},
	{0xfff9, 0xfffb},
	{0x110bd, 0x110bd},
	{0x110cd, 0x110cd},
	{0x13430, 0x13438},
	{0x1bca0, 0x1bca3},
	{0x1d173, 0x1d17a},
	{0xe0001, 0xe0001},
	{0xe0020, 0xe007f},
	{0xf0000, 0xffffd},
	{0x100000, 0x10fffc},
}

// needEscape reports whether ch must be written as a \u or \U escape.
// Anything outside the table is printable and passes through as-is. The
// same predicate governs what the writer escapes and what a reader may
// expect to find escaped, so round-trips are byte-exact.
func needEscape(ch rune) bool {
	i := sort.Search(len(needEscapeRanges), func(i int) bool {
		return needEscapeRanges[i][1] >= ch
	})
	return i < len(needEscapeRanges) && ch >= needEscapeRanges[i][0]
}
