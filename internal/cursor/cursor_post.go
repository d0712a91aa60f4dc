package cursor

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"time"
)

var ErrInvalidCursor = errors.New("invalid cursor")

// Cursor marks the last post of a feed page. Seq is the post's insertion
// order and stays unique when several posts share a createdAt.
type Cursor struct {
	Seq       uint64 `json:"seq"`
	CreatedAt int64  `json:"createdAt"`
	ID        string `json:"id"`
}

func EncodeCursor(seq uint64, t time.Time, id string) string {
	b, _ := json.Marshal(Cursor{
		Seq:       seq,
		CreatedAt: t.UnixMilli(),
		ID:        id,
	})
	return base64.RawURLEncoding.EncodeToString(b)
}

func DecodeCursor(s string) (Cursor, error) {
	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return Cursor{}, ErrInvalidCursor
	}
	var p Cursor
	if err := json.Unmarshal(raw, &p); err != nil {
		return Cursor{}, ErrInvalidCursor
	}
	if p.ID == "" || p.Seq == 0 {
		return Cursor{}, ErrInvalidCursor
	}
	return p, nil
}
