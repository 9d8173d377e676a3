package entity

// AnalysisMode selects what kind of halal lookup the user asked for.
type AnalysisMode string

const (
	ModeCertificateCheck AnalysisMode = "certificate-check"
	ModeIngredientAudit  AnalysisMode = "ingredient-audit"
)

// HalalStatus is the normalized verdict. The upstream model is prompted with
// the Indonesian wire values (halal/warning/haram); NormalizeStatus maps them.
type HalalStatus string

const (
	StatusCompliant    HalalStatus = "compliant"
	StatusCaution      HalalStatus = "caution"
	StatusNonCompliant HalalStatus = "non-compliant"
)

// NormalizeStatus maps an upstream verdict string onto the HalalStatus enum.
// Unknown verdicts degrade to caution rather than guessing either way.
func NormalizeStatus(wire string) HalalStatus {
	switch wire {
	case "halal", string(StatusCompliant):
		return StatusCompliant
	case "haram", string(StatusNonCompliant):
		return StatusNonCompliant
	default:
		return StatusCaution
	}
}

// AnalysisRequest is constructed per lookup and discarded after rendering.
type AnalysisRequest struct {
	Query string       `json:"query"`
	Mode  AnalysisMode `json:"mode"`
}

// AnalysisResult is the shared shape for both analysis modes. Certificate
// checks fill the registry fields; ingredient audits fill CriticalPoints.
// Degraded marks a best-effort result built from unparsable upstream text.
type AnalysisResult struct {
	Status         HalalStatus `json:"status"`
	Analysis       string      `json:"analysis"`
	Recommendation string      `json:"recommendation"`

	CertificateID string `json:"halalId,omitempty"`
	Producer      string `json:"producer,omitempty"`
	IssuingBody   string `json:"lphName,omitempty"`
	IssueDate     string `json:"issueDate,omitempty"`

	CriticalPoints []string `json:"criticalPoints,omitempty"`

	Degraded bool `json:"degraded,omitempty"`
	Cached   bool `json:"cached,omitempty"`
}
