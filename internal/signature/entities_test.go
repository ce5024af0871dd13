package signature

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func TestAppend_PlainSignature(t *testing.T) {
	text, entities := Append("hello", nil, Parse("@channel"))

	if text != "hello\n\n@channel" {
		t.Errorf("text = %q, want %q", text, "hello\n\n@channel")
	}

	if len(entities) != 0 {
		t.Errorf("entities = %d, want 0", len(entities))
	}
}

func TestAppend_PreservesOriginalEntities(t *testing.T) {
	original := "bold text here"
	existing := []tgbotapi.MessageEntity{
		{Type: "bold", Offset: 0, Length: 4},
		{Type: "italic", Offset: 5, Length: 4},
	}

	text, merged := Append(original, existing, Parse("[A](http://x)"))

	if text != "bold text here\n\nA" {
		t.Errorf("text = %q", text)
	}

	if len(merged) != 3 {
		t.Fatalf("merged entities = %d, want 3", len(merged))
	}

	// Original entities are first and bit-identical.
	for i, e := range existing {
		if merged[i] != e {
			t.Errorf("entity %d = %+v, want %+v", i, merged[i], e)
		}
	}

	// Signature entity shifted by len(original) + separator.
	link := merged[2]
	wantOffset := TextLen(original) + SeparatorLen

	if link.Offset != wantOffset || link.Length != 1 || link.URL != "http://x" {
		t.Errorf("link entity = %+v, want offset %d length 1 url http://x", link, wantOffset)
	}
}

func TestAppend_SignatureEntityShiftIsExact(t *testing.T) {
	// Spec property: every signature entity moves by exactly L + 2.
	sig := Parse("[A](u1) [B](u2)")
	original := "some post"

	_, merged := Append(original, nil, sig)

	shift := TextLen(original) + SeparatorLen
	for i, e := range merged {
		want := sig.Entities[i].Offset + shift
		if e.Offset != want {
			t.Errorf("entity %d offset = %d, want %d", i, e.Offset, want)
		}
	}
}

func TestAppend_EntityCount(t *testing.T) {
	existing := []tgbotapi.MessageEntity{
		{Type: "bold", Offset: 0, Length: 2},
	}
	sig := Parse("[A](u1) [B](u2)")

	_, merged := Append("post", existing, sig)

	if len(merged) != len(existing)+len(sig.Entities) {
		t.Errorf("merged = %d entities, want %d", len(merged), len(existing)+len(sig.Entities))
	}
}

func TestAppend_UTF16OriginalLength(t *testing.T) {
	// Rocket emoji is two UTF-16 units; the signature link must land after it.
	original := "\U0001F680"

	_, merged := Append(original, nil, Parse("[A](u)"))

	if len(merged) != 1 {
		t.Fatalf("merged = %d entities, want 1", len(merged))
	}

	if merged[0].Offset != 2+SeparatorLen {
		t.Errorf("offset = %d, want %d", merged[0].Offset, 2+SeparatorLen)
	}
}

func TestAppend_OutOfRangeEntityShifts(t *testing.T) {
	// An entity past the body end is the defensive identity case: it moves
	// with the appended suffix instead of staying behind.
	existing := []tgbotapi.MessageEntity{
		{Type: "bold", Offset: 10, Length: 1},
	}

	_, merged := Append("post", existing, Parse("sig"))

	appendLen := SeparatorLen + 3
	if merged[0].Offset != 10+appendLen {
		t.Errorf("offset = %d, want %d", merged[0].Offset, 10+appendLen)
	}
}
