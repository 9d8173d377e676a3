package extract_test

import (
	"encoding/json"
	"testing"

	"halalassist-core/internal/domain/entity"
	"halalassist-core/internal/extract"

	"github.com/stretchr/testify/assert"
)

func TestJSONObjectPureJSON(t *testing.T) {
	raw := `{"status":"halal","analysis":"aman"}`

	candidate, ok := extract.JSONObject(raw)
	assert.True(t, ok)

	var direct, extracted map[string]any
	assert.NoError(t, json.Unmarshal([]byte(raw), &direct))
	assert.NoError(t, json.Unmarshal(candidate, &extracted))
	assert.Equal(t, direct, extracted)
}

func TestJSONObjectStripsCommentary(t *testing.T) {
	raw := "Tentu, berikut hasilnya:\n```json\n{\"status\":\"warning\"}\n```\nSemoga membantu."

	candidate, ok := extract.JSONObject(raw)
	assert.True(t, ok)
	assert.JSONEq(t, `{"status":"warning"}`, string(candidate))
}

func TestJSONObjectTotality(t *testing.T) {
	for _, raw := range []string{
		"",
		"Sorry, I cannot help.",
		"}{",
		"{not json}",
		"{\"unterminated\": ",
	} {
		_, ok := extract.JSONObject(raw)
		assert.False(t, ok, "input %q should not parse", raw)
	}
}

func TestAnalysisFromParsed(t *testing.T) {
	raw := `{"status":"halal","analysis":"gelatin sapi bersertifikat","criticalPoints":["sumber gelatin"],"recommendation":"gunakan pemasok bersertifikat"}`

	res := extract.AnalysisFrom(raw)
	assert.False(t, res.Degraded)
	assert.Equal(t, entity.StatusCompliant, res.Status)
	assert.Len(t, res.CriticalPoints, 1)
	assert.Equal(t, "sumber gelatin", res.CriticalPoints[0])
}

func TestAnalysisFromNormalizesVerdicts(t *testing.T) {
	cases := map[string]entity.HalalStatus{
		"halal":   entity.StatusCompliant,
		"warning": entity.StatusCaution,
		"haram":   entity.StatusNonCompliant,
		"unknown": entity.StatusCaution,
	}
	for wire, want := range cases {
		res := extract.AnalysisFrom(`{"status":"` + wire + `","analysis":"x"}`)
		assert.Equal(t, want, res.Status, "wire verdict %q", wire)
	}
}

func TestAnalysisFromDegraded(t *testing.T) {
	prose := "Sorry, I cannot help."

	res := extract.AnalysisFrom(prose)
	assert.True(t, res.Degraded)
	assert.Equal(t, prose, res.Analysis)
	assert.Equal(t, entity.StatusCaution, res.Status)
}

func TestCopyFromParsed(t *testing.T) {
	raw := "```json\n{\"instagram\":\"ig\",\"whatsapp\":\"wa\",\"landing\":\"web\"}\n```"

	res := extract.CopyFrom(raw)
	assert.False(t, res.Degraded)
	assert.Equal(t, "ig", res.Instagram)
	assert.Equal(t, "wa", res.WhatsApp)
	assert.Equal(t, "web", res.Landing)
}

func TestCopyFromDegraded(t *testing.T) {
	prose := "Maaf, saya tidak bisa membuat iklan itu."

	res := extract.CopyFrom(prose)
	assert.True(t, res.Degraded)
	assert.Equal(t, prose, res.Instagram)
	assert.Equal(t, prose, res.WhatsApp)
	assert.Equal(t, prose, res.Landing)
}

func TestCleanPromptText(t *testing.T) {
	cases := map[string]string{
		"  plain prompt  ":                      "plain prompt",
		"**bold** and `code` and # heading":     "bold and code and  heading",
		`"quoted prompt"`:                       "quoted prompt",
		"Here is the prompt: studio shot, 8k":   "studio shot, 8k",
	}
	for in, want := range cases {
		assert.Equal(t, want, extract.CleanPromptText(in))
	}
}
