package model

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/goodnatureofminers/tangleinsight-backend/internal/tangle/trinary"
)

// Cursor is the keyset position after which an archival page continues. The zero Cursor starts
// from the first page.
type Cursor struct {
	Timestamp uint64 `json:"t"`
	Hash      string `json:"h"`
}

// Encode renders the cursor as an opaque URL-safe token.
func (c Cursor) Encode() string {
	raw, _ := json.Marshal(c)
	return base64.RawURLEncoding.EncodeToString(raw)
}

// ParseCursor decodes a token produced by Cursor.Encode.
func ParseCursor(token string) (Cursor, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, fmt.Errorf("%w: %v", ErrMalformedCursor, err)
	}
	var c Cursor
	if err := json.Unmarshal(raw, &c); err != nil {
		return Cursor{}, fmt.Errorf("%w: %v", ErrMalformedCursor, err)
	}
	if c.IsStart() {
		return c, nil
	}
	if !trinary.ValidHash(c.Hash) {
		return Cursor{}, fmt.Errorf("%w: invalid position hash", ErrMalformedCursor)
	}
	return c, nil
}

// IsStart reports whether c points before the first row.
func (c Cursor) IsStart() bool {
	return c == Cursor{}
}
