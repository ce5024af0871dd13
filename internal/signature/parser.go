// Package signature implements the channel signature pipeline: parsing the
// administrator-configured signature markup into Telegram entities, the
// offset arithmetic for appending it to an existing post, and the
// write-through store that keeps signatures durable.
//
// All entity offsets and lengths are expressed in UTF-16 code units, which is
// the unit the Telegram Bot API addresses text in.
package signature

import (
	"regexp"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Separator is inserted between the original post body and the signature.
const Separator = "\n\n"

// SeparatorLen is the separator length in UTF-16 code units.
const SeparatorLen = 2

// hyperlinkPattern matches one [label](url) fragment. This is the only inline
// markup form a signature supports.
var hyperlinkPattern = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)

// Parsed is the display form of a signature: the text with hyperlink markup
// substituted away, plus the text_link entities addressing it.
type Parsed struct {
	Text     string
	Entities []tgbotapi.MessageEntity
}

// Parse converts a raw signature into its display text and link entities.
// Each [label](url) fragment is replaced by label, and a text_link entity is
// recorded at the label's position in the substituted text. Entities come out
// in source order. A signature without hyperlink markup parses to itself with
// no entities.
func Parse(raw string) Parsed {
	matches := hyperlinkPattern.FindAllStringSubmatchIndex(raw, -1)
	if len(matches) == 0 {
		return Parsed{Text: raw}
	}

	var (
		out      strings.Builder
		entities []tgbotapi.MessageEntity
		outLen   int // running length of out in UTF-16 units
		prev     int // byte offset into raw
	)

	for _, m := range matches {
		start, end := m[0], m[1]
		label := raw[m[2]:m[3]]
		url := raw[m[4]:m[5]]

		out.WriteString(raw[prev:start])
		outLen += utf16Len(raw[prev:start])

		entities = append(entities, tgbotapi.MessageEntity{
			Type:   "text_link",
			Offset: outLen,
			Length: utf16Len(label),
			URL:    url,
		})

		out.WriteString(label)
		outLen += utf16Len(label)
		prev = end
	}

	out.WriteString(raw[prev:])

	return Parsed{Text: out.String(), Entities: entities}
}

// utf16Len returns the length of s in UTF-16 code units.
func utf16Len(s string) int {
	n := 0

	for _, r := range s {
		if r > 0xFFFF {
			n += 2
		} else {
			n++
		}
	}

	return n
}
