package signature

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TextLen returns the length of a post body in UTF-16 code units.
func TextLen(s string) int {
	return utf16Len(s)
}

// Append produces the augmented post body and merged entity set for
// original + Separator + sig.Text.
//
// Entities of the original body keep their offsets: they are bounded by the
// body length, so appending cannot move them. An entity whose offset somehow
// falls past the body end is shifted by the appended length, matching how a
// suffix-relative span would have to move. Signature entities are shifted by
// the body length plus the separator, preserving their relative layout. The
// merged sequence keeps original entities first, signature entities after, in
// their source orders.
func Append(original string, entities []tgbotapi.MessageEntity, sig Parsed) (string, []tgbotapi.MessageEntity) {
	originalLen := utf16Len(original)
	appendLen := SeparatorLen + utf16Len(sig.Text)

	merged := make([]tgbotapi.MessageEntity, 0, len(entities)+len(sig.Entities))

	for _, e := range entities {
		if e.Offset >= originalLen {
			e.Offset += appendLen
		}

		merged = append(merged, e)
	}

	for _, e := range sig.Entities {
		e.Offset += originalLen + SeparatorLen
		merged = append(merged, e)
	}

	return original + Separator + sig.Text, merged
}
