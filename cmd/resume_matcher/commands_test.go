package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jonathan/resume-matcher/internal/fetch"
	"github.com/jonathan/resume-matcher/internal/types"
)

func TestParseJDCommand(t *testing.T) {
	in := writeFile(t, t.TempDir(), "jd.txt", testJD)

	stdout, _, err := execute(t, "parse-jd", "--in", in)
	require.NoError(t, err)

	var jd types.ParsedJD
	require.NoError(t, json.Unmarshal([]byte(stdout), &jd))
	assert.Equal(t, "Backend Engineer", types.Deref(jd.Title))
	assert.Equal(t, []types.Requirement{
		{Skill: "Go", Priority: types.PriorityNice},
		{Skill: "Kubernetes", Priority: types.PriorityMust},
		{Skill: "Python", Priority: types.PriorityMust},
	}, jd.Requirements)
}

func TestParseJDCommand_OutFile(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "jd.txt", testJD)
	out := filepath.Join(dir, "jd.json")

	stdout, _, err := execute(t, "parse-jd", "--in", in, "--out", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Output: "+out)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"requirements"`)
}

func TestParseJDCommand_URL(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, `<html><body><nav>Jobs Home</nav><main>
			<h1>Backend Engineer</h1>
			<h2>Requirements</h2>
			<ul><li>Proficient in Python</li><li>Docker experience</li></ul>
		</main></body></html>`)
	}))
	defer ts.Close()

	stdout, _, err := execute(t, "parse-jd", "--url", ts.URL)
	require.NoError(t, err)

	var jd types.ParsedJD
	require.NoError(t, json.Unmarshal([]byte(stdout), &jd))
	assert.Equal(t, []types.Requirement{
		{Skill: "Docker", Priority: types.PriorityMust},
		{Skill: "Python", Priority: types.PriorityMust},
	}, jd.Requirements)
}

func TestParseJDCommand_BrowserFallback(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, `<html><body><div id="root">Loading...</div></body></html>`)
	}))
	defer ts.Close()

	rendered := `<html><body><main>
		<h1>Backend Engineer</h1>
		<h2>About the Role</h2><p>` + strings.Repeat("We build reliable hiring tools for recruiters. ", 15) + `</p>
		<h2>Requirements</h2>
		<ul><li>Proficient in Python</li><li>Docker experience</li></ul>
	</main></body></html>`

	original := newRenderer
	t.Cleanup(func() { newRenderer = original })
	var renderedURL string
	newRenderer = func() fetch.RenderFunc {
		return func(_ context.Context, urlStr string) (string, error) {
			renderedURL = urlStr
			return rendered, nil
		}
	}

	stdout, _, err := execute(t, "parse-jd", "--url", ts.URL, "--browser")
	require.NoError(t, err)
	assert.Equal(t, ts.URL, renderedURL)

	var jd types.ParsedJD
	require.NoError(t, json.Unmarshal([]byte(stdout), &jd))
	assert.Equal(t, []types.Requirement{
		{Skill: "Docker", Priority: types.PriorityMust},
		{Skill: "Python", Priority: types.PriorityMust},
	}, jd.Requirements)
}

func TestParseJDCommand_FlagsValidation(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		errorString string
	}{
		{"neither input", []string{"parse-jd"}, "at least one of the flags"},
		{"both inputs", []string{"parse-jd", "--in", "a.txt", "--url", "http://example.com"}, "none of the others can be"},
		{"missing file", []string{"parse-jd", "--in", "/nonexistent/jd.txt"}, "file not found"},
		{"browser without url", []string{"parse-jd", "--in", "a.txt", "--browser"}, "must all be set"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorString)
		})
	}
}

func TestParseResumeCommand(t *testing.T) {
	in := writeFile(t, t.TempDir(), "resume.txt", testResume)

	stdout, _, err := execute(t, "parse-resume", "--in", in)
	require.NoError(t, err)

	var doc types.ResumeDocument
	require.NoError(t, json.Unmarshal([]byte(stdout), &doc))
	assert.Equal(t, "Jane Doe", types.Deref(doc.Basics.Name))
	require.Len(t, doc.Experience, 1)
	assert.Equal(t, "Acme Corp", types.Deref(doc.Experience[0].Company))
	assert.Contains(t, doc.Skills, "Kubernetes")
}

func TestParseResumeCommand_EmptyDocument(t *testing.T) {
	in := writeFile(t, t.TempDir(), "resume.txt", "   \n")

	_, _, err := execute(t, "parse-resume", "--in", in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "document contains no text")
}

func TestAnalyzeCommand(t *testing.T) {
	tests := []struct {
		name    string
		extra   []string
		wantPct float64
	}{
		{"skills section counted", nil, 100},
		{"bullets only", []string{"--no-skills-section"}, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			jd := writeFile(t, dir, "jd.txt", testJD)
			cv := writeFile(t, dir, "resume.txt", testResume)

			args := append([]string{"analyze", "--jd", jd, "--resume", cv}, tt.extra...)
			stdout, _, err := execute(t, args...)
			require.NoError(t, err)

			var a types.Analysis
			require.NoError(t, json.Unmarshal([]byte(stdout), &a))
			assert.Equal(t, tt.wantPct, a.CoveragePct)
			assert.Equal(t, 2, a.MustTotal)
			assert.Equal(t, 1, a.NiceTotal)
		})
	}
}

func TestAnalyzeCommand_JSONInputsAndWorkbook(t *testing.T) {
	dir := t.TempDir()
	jdJSON := writeFile(t, dir, "jd.json", `{
		"title": null, "company": null, "seniority": null,
		"requirements": [{"skill": "Go", "priority": "must"}, {"skill": "Rust", "priority": "nice"}],
		"responsibilities": []
	}`)
	resumeJSON := writeFile(t, dir, "resume.json", `{
		"basics": {"name": null, "email": null, "links": []},
		"experience": [{"company": null, "title": null, "start": null, "end": null, "stack": [],
			"bullets": [{"id": "b_1", "text": "Wrote Go services", "skills": ["Go"]}]}],
		"projects": [], "skills": [], "education": []
	}`)
	out := filepath.Join(dir, "analysis.json")
	xlsx := filepath.Join(dir, "report.xlsx")

	_, _, err := execute(t, "analyze", "--jd", jdJSON, "--resume", resumeJSON, "--out", out, "--xlsx", xlsx)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var a types.Analysis
	require.NoError(t, json.Unmarshal(data, &a))
	assert.Equal(t, 66.7, a.CoveragePct)

	f, err := excelize.OpenFile(xlsx)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"Summary", "Requirements"}, f.GetSheetList())
}

func TestAnalyzeCommand_BadJSON(t *testing.T) {
	dir := t.TempDir()
	jdJSON := writeFile(t, dir, "jd.json", `{not json`)
	cv := writeFile(t, dir, "resume.txt", testResume)

	_, _, err := execute(t, "analyze", "--jd", jdJSON, "--resume", cv)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestValidateCommand(t *testing.T) {
	schema := filepath.Join("..", "..", "schemas", "analysis.schema.json")
	dir := t.TempDir()

	valid := writeFile(t, dir, "valid.json", `{
		"results": [], "coverage_pct": 0,
		"must_found": 0, "must_total": 0, "nice_found": 0, "nice_total": 0
	}`)
	invalid := writeFile(t, dir, "invalid.json", `{"results": 5}`)

	stdout, _, err := execute(t, "validate", "--schema", schema, "--json", valid)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Validation passed")

	stdout, _, err = execute(t, "validate", "--schema", schema, "--json", invalid)
	require.Error(t, err)
	assert.Contains(t, stdout, "Validation failed")
	assert.Contains(t, err.Error(), "validation failed with")
}

func TestValidateCommand_MissingFlags(t *testing.T) {
	_, _, err := execute(t, "validate", "--json", "x.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
}

func TestConfigFlag(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "config.json", `{"log_level": "loud"}`)
	in := writeFile(t, dir, "jd.txt", testJD)

	_, _, err := execute(t, "--config", cfg, "parse-jd", "--in", in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config error")
}

func TestVerboseFlag(t *testing.T) {
	in := writeFile(t, t.TempDir(), "jd.txt", testJD)

	_, stderr, err := execute(t, "--verbose", "parse-jd", "--in", in)
	require.NoError(t, err)
	assert.Contains(t, stderr, "PARSED JOB DESCRIPTION")
	assert.Contains(t, stderr, "skill dictionary loaded")
}

func TestMissingDictionary(t *testing.T) {
	in := writeFile(t, t.TempDir(), "jd.txt", testJD)

	_, _, err := execute(t, "--skills", "/nonexistent/skills.csv", "parse-jd", "--in", in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load skill dictionary")
}
