package models

import (
	"encoding/json"
	"time"
)

type Activity struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Detail    json.RawMessage `json:"detail"`
	CreatedAt time.Time       `json:"created_at"`
}
