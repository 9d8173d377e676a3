package entity

// ImageRequest asks for a product photo. SourceImage, when present, switches
// the studio into vision-guided recreation of the uploaded product shot.
type ImageRequest struct {
	Prompt      string `json:"prompt"`
	Style       string `json:"style"`
	SourceImage []byte `json:"-"`
}

// ImageResult carries the generated photo as a base64 data URI so the browser
// never has to touch the external generator directly.
type ImageResult struct {
	ImageURL       string `json:"imageUrl"`
	EnhancedPrompt string `json:"enhancedPrompt"`
	Fallback       bool   `json:"fallback"`
	Seed           int    `json:"seed"`
}
