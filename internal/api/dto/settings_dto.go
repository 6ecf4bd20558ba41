package dto

import "encoding/json"

// UpsertSettingRequest payload. Value accepts any JSON shape.
type UpsertSettingRequest struct {
	Key   string          `json:"key" validate:"required,min=1,max=120"`
	Value json.RawMessage `json:"value" validate:"required"`
}

// SettingResponse is one settings entry.
type SettingResponse struct {
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}
