package domain

import "encoding/json"

// SettingKeyTelegram holds the chat-bot configuration whose sensitive fields
// are redacted for non-admin readers.
const SettingKeyTelegram = "telegram_config"

// Setting is one entry of the key to arbitrary-JSON settings store.
type Setting struct {
	Key   string
	Value json.RawMessage
}
