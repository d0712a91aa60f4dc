package cursor

import (
	"encoding/base64"
	"errors"
	"testing"
	"time"
)

func TestDecodeEncodedCursor(t *testing.T) {
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	c, err := DecodeCursor(EncodeCursor(7, at, "post-1"))
	if err != nil {
		t.Fatalf("DecodeCursor() error = %v", err)
	}
	if c.Seq != 7 || c.ID != "post-1" || c.CreatedAt != at.UnixMilli() {
		t.Fatalf("DecodeCursor() = %+v", c)
	}
}

func TestDecodeCursorRejectsGarbage(t *testing.T) {
	noSeq := base64.RawURLEncoding.EncodeToString([]byte(`{"createdAt":1,"id":"p1"}`))
	for _, s := range []string{"", "!!!", "bm90LWpzb24", noSeq} {
		if _, err := DecodeCursor(s); !errors.Is(err, ErrInvalidCursor) {
			t.Errorf("DecodeCursor(%q) error = %v, want ErrInvalidCursor", s, err)
		}
	}
}
