package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRules = `
name:
  - required
age:
  - number: {min: 18}
`

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
	return dir
}

func TestRun_Valid(t *testing.T) {
	writeFiles(t, map[string]string{
		"rules.yaml": testRules,
		"doc.json":   `{"name":"Ann","age":30}`,
	})
	var out, errOut bytes.Buffer
	code := run([]string{"validate", "-rules", "rules.yaml", "-data", "doc.json"}, &out, &errOut)
	assert.Equal(t, exitValid, code, errOut.String())
	assert.Empty(t, out.String())
}

func TestRun_InvalidText(t *testing.T) {
	writeFiles(t, map[string]string{
		"rules.yaml": testRules,
		"doc.yaml":   "name: ''\nage: 12\n",
	})
	var out, errOut bytes.Buffer
	code := run([]string{"validate", "-rules", "rules.yaml", "-data", "doc.yaml"}, &out, &errOut)
	assert.Equal(t, exitInvalid, code, errOut.String())
	assert.Equal(t, "age: Age must be no less than 18.\nname: Name cannot be blank.\n", out.String())
}

func TestRun_JSONOutputJapanese(t *testing.T) {
	writeFiles(t, map[string]string{
		"rules.yaml": testRules,
		"doc.json":   `{"age":30}`,
	})
	var out, errOut bytes.Buffer
	code := run([]string{"validate", "-rules", "rules.yaml", "-data", "doc.json", "-format", "json", "-locale", "ja"}, &out, &errOut)
	assert.Equal(t, exitInvalid, code, errOut.String())
	assert.JSONEq(t, `{"name":["Nameが渡されていません。"]}`, out.String())
}

func TestRun_EnvConfig(t *testing.T) {
	writeFiles(t, map[string]string{
		"rules.yaml":  "items:\n  - each: {rules: [{number: {max: 1}}]}\n",
		"doc.json":    `{"items":[1,2]}`,
		"custom.env":  "RULEKIT_SEPARATOR=/\nRULEKIT_FORMAT=json\n",
		"catalog.yml": "en:\n  \"{Property} must be no greater than {max}.\": \"too big\"\n",
	})
	t.Setenv("RULEKIT_CATALOG", "catalog.yml")
	// godotenv sets variables process-wide.
	t.Cleanup(func() {
		_ = os.Unsetenv("RULEKIT_SEPARATOR")
		_ = os.Unsetenv("RULEKIT_FORMAT")
	})
	var out, errOut bytes.Buffer
	code := run([]string{"validate", "-env", "custom.env", "-rules", "rules.yaml", "-data", "doc.json"}, &out, &errOut)
	assert.Equal(t, exitInvalid, code, errOut.String())
	assert.JSONEq(t, `{"items/1":["too big"]}`, out.String())
}

func TestRun_UsageErrors(t *testing.T) {
	writeFiles(t, map[string]string{
		"rules.yaml": "name: [frobnicate]\n",
		"doc.json":   `{}`,
	})
	tests := map[string][]string{
		"no command":      nil,
		"unknown command": {"lint"},
		"missing flags":   {"validate", "-rules", "rules.yaml"},
		"bad format":      {"validate", "-rules", "rules.yaml", "-data", "doc.json", "-format", "xml"},
		"bad rules":       {"validate", "-rules", "rules.yaml", "-data", "doc.json"},
		"missing data":    {"validate", "-rules", "rules.yaml", "-data", "nope.json"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			assert.Equal(t, exitUsage, run(args, &out, &errOut))
			assert.NotEmpty(t, errOut.String())
		})
	}
}

func TestRun_ListRules(t *testing.T) {
	var out, errOut bytes.Buffer
	require.Equal(t, exitValid, run([]string{"rules"}, &out, &errOut))
	assert.Contains(t, out.String(), "filled_at_least\n")
}
