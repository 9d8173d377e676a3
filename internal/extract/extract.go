// Package extract pulls the single JSON object the model was asked for out of
// whatever text it actually returned. The model is prompted to emit pure JSON
// but routinely wraps it in commentary or code fences, so the raw text is
// treated as untrusted input: any string yields either a parsed result or a
// degraded one, never a panic or a hard error.
package extract

import (
	"encoding/json"
	"strings"

	"halalassist-core/internal/domain/entity"
)

// JSONObject scans raw for the span between the first '{' and the last '}'
// and reports whether that span parses as a JSON object.
func JSONObject(raw string) (json.RawMessage, bool) {
	start := strings.IndexByte(raw, '{')
	end := strings.LastIndexByte(raw, '}')
	if start < 0 || end <= start {
		return nil, false
	}
	candidate := []byte(raw[start : end+1])
	if !json.Valid(candidate) {
		return nil, false
	}
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(candidate, &probe); err != nil {
		return nil, false
	}
	return candidate, true
}

// analysisWire mirrors the JSON shape the analysis prompts ask for.
type analysisWire struct {
	Status         string   `json:"status"`
	HalalID        string   `json:"halalId"`
	Analysis       string   `json:"analysis"`
	Producer       string   `json:"producer"`
	LPHName        string   `json:"lphName"`
	IssueDate      string   `json:"issueDate"`
	CriticalPoints []string `json:"criticalPoints"`
	Recommendation string   `json:"recommendation"`
}

// AnalysisFrom decodes an analysis reply. On any parse failure it returns the
// degraded shape: raw text echoed into every text-bearing field so the caller
// always has something to render.
func AnalysisFrom(raw string) *entity.AnalysisResult {
	candidate, ok := JSONObject(raw)
	if ok {
		var wire analysisWire
		if err := json.Unmarshal(candidate, &wire); err == nil {
			return &entity.AnalysisResult{
				Status:         entity.NormalizeStatus(wire.Status),
				Analysis:       wire.Analysis,
				Recommendation: wire.Recommendation,
				CertificateID:  wire.HalalID,
				Producer:       wire.Producer,
				IssuingBody:    wire.LPHName,
				IssueDate:      wire.IssueDate,
				CriticalPoints: wire.CriticalPoints,
			}
		}
	}
	return &entity.AnalysisResult{
		Status:         entity.StatusCaution,
		Analysis:       raw,
		Recommendation: raw,
		Degraded:       true,
	}
}

// CopyFrom decodes a copywriting reply, degrading to the raw text in all
// three channels when the model did not return clean JSON.
func CopyFrom(raw string) *entity.CopyResult {
	candidate, ok := JSONObject(raw)
	if ok {
		var res entity.CopyResult
		if err := json.Unmarshal(candidate, &res); err == nil {
			return &res
		}
	}
	return &entity.CopyResult{
		Instagram: raw,
		WhatsApp:  raw,
		Landing:   raw,
		Degraded:  true,
	}
}

// CleanPromptText strips the decoration the model tends to add around a
// generated image prompt: markdown markers, wrapping quotes, and the
// "Here is ..." style preamble.
func CleanPromptText(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.Map(func(r rune) rune {
		switch r {
		case '*', '#', '`':
			return -1
		}
		return r
	}, s)
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"`)
	if i := strings.Index(strings.ToLower(s), "here is"); i == 0 {
		if colon := strings.IndexByte(s, ':'); colon >= 0 {
			s = s[colon+1:]
		}
	}
	return strings.TrimSpace(s)
}
