package alignment

import (
	"strconv"
	"strings"
)

// RulerInterval is the spacing between position numerals
const RulerInterval = 10

// Ruler builds the column header for an alignment maxLen columns wide.
// Column 0 is a gutter space; every multiple of RulerInterval gets its
// 1-based position written starting at that column. The result is always
// maxLen+1 characters, so a numeral near the right edge may be cut short.
func Ruler(maxLen int) string {
	if maxLen < 0 {
		maxLen = 0
	}

	var b strings.Builder
	b.Grow(maxLen + 4)
	b.WriteByte(' ')

	for i := 1; i <= maxLen; i++ {
		if i%RulerInterval == 0 {
			num := strconv.Itoa(i)
			b.WriteString(num)
			i += len(num) - 1
		} else {
			b.WriteByte(' ')
		}
	}

	ruler := b.String()
	if len(ruler) > maxLen+1 {
		ruler = ruler[:maxLen+1]
	}
	return ruler
}
