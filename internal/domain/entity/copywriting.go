package entity

// CopyRequest describes the product the marketing copy is for.
type CopyRequest struct {
	ProductName string `json:"productName"`
	Features    string `json:"features"`
	Tone        string `json:"tone"`
}

// CopyResult holds one copy variant per channel. When the upstream text could
// not be parsed, every channel carries the raw text and Degraded is set.
type CopyResult struct {
	Instagram string `json:"instagram"`
	WhatsApp  string `json:"whatsapp"`
	Landing   string `json:"landing"`

	Degraded bool `json:"degraded,omitempty"`
}
