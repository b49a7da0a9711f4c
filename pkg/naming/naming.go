// Package naming maps arbitrary design-tool names onto identifiers that are
// safe to use in stylesheets and on the filesystem.
package naming

import (
	"strings"
	"unicode"
)

// Placeholder is substituted when sanitizing leaves nothing usable.
const Placeholder = "unnamed"

// emojiRanges covers the Unicode blocks Figma names commonly carry emoji from.
// Emoji are stripped outright instead of being replaced with a separator.
var emojiRanges = [][2]rune{
	{0x1F000, 0x1F0FF}, // mahjong, dominoes, playing cards
	{0x1F300, 0x1F5FF}, // misc symbols and pictographs
	{0x1F600, 0x1F64F}, // emoticons
	{0x1F680, 0x1F6FF}, // transport and map
	{0x1F900, 0x1F9FF}, // supplemental symbols
	{0x1FA70, 0x1FAFF}, // symbols and pictographs extended
	{0x2600, 0x27BF},   // misc symbols, dingbats
	{0x2B00, 0x2BFF},   // misc symbols and arrows
	{0xFE00, 0xFE0F},   // variation selectors
	{0x200D, 0x200D},   // zero width joiner
}

func isEmoji(r rune) bool {
	for _, rng := range emojiRanges {
		if r >= rng[0] && r <= rng[1] {
			return true
		}
	}
	return false
}

// Identifier sanitizes s into a valid stylesheet identifier.
// The result always matches ^[a-zA-Z_][a-zA-Z0-9_-]*$ or equals Placeholder.
func Identifier(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case isEmoji(r):
			// dropped entirely
		case r == '/':
			b.WriteByte('-')
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('-')
		}
	}

	out := collapseDashes(b.String())
	out = strings.Trim(out, "-")

	if out == "" {
		return Placeholder
	}
	if out[0] >= '0' && out[0] <= '9' {
		out = "_" + out
	}
	return out
}

// Kebab converts s to kebab-case: camelCase boundaries, whitespace and
// underscores all become hyphens, everything else non-alphanumeric is dropped.
func Kebab(s string) string {
	var b strings.Builder
	var prev rune
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			if prev != 0 && (unicode.IsLower(prev) || unicode.IsDigit(prev)) {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
		case unicode.IsLower(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '_' || r == '-' || r == '/' || r == ':':
			b.WriteByte('-')
		}
		prev = r
	}

	return strings.Trim(collapseDashes(b.String()), "-")
}

// FolderName derives a filesystem-safe folder name from a component display
// name, keeping the original casing but replacing spaces with underscores.
func FolderName(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, " ", "_")

	var b strings.Builder
	for _, r := range s {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '_' || r == '-' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return Placeholder
	}
	return b.String()
}

func collapseDashes(s string) string {
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return s
}
