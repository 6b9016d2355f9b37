package models

import (
	"encoding/json"
	"time"
)

// Dashboard is a user-owned named layout. Layout is an opaque JSON document;
// the server stores and returns it without inspecting its shape.
type Dashboard struct {
	ID        int             `json:"id"`
	OwnerID   int             `json:"-"`
	Name      string          `json:"name"`
	Layout    json.RawMessage `json:"layout"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
