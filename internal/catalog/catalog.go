// Package catalog holds the fixed table of supported conversion pairs.
package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"text/template"
)

// Tier is the declared complexity of a conversion pair.
type Tier string

const (
	TierLow    Tier = "low"
	TierMedium Tier = "medium"
	TierHigh   Tier = "high"
)

var ErrUnsupportedConversion = errors.New("catalog: unsupported conversion type")

// Spec is the immutable definition of one (source, target) language pair.
// Instances come from the package-level table and are never mutated.
type Spec struct {
	ID         string
	SourceLang string
	TargetLang string
	// Extensions accepted as input, lowercase with leading dot.
	Extensions []string
	TargetExt  string
	Complexity Tier
	// PreferredBackends is ranked; entries not present in the backend
	// registry are skipped by the selector.
	PreferredBackends []string

	prompt *template.Template
}

// RenderPrompt fills the pair's prompt template with the file content.
func (s Spec) RenderPrompt(sourceCode string) (string, error) {
	if s.prompt == nil {
		return "", fmt.Errorf("catalog: no prompt template for %s", s.ID)
	}
	var buf bytes.Buffer
	if err := s.prompt.Execute(&buf, struct{ SourceCode string }{sourceCode}); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Lookup returns the spec for a conversion id.
func Lookup(id string) (Spec, error) {
	s, ok := specs[id]
	if !ok {
		return Spec{}, fmt.Errorf("%w: %s", ErrUnsupportedConversion, id)
	}
	return s, nil
}

// IDs lists all supported conversion ids in sorted order.
func IDs() []string {
	out := make([]string, 0, len(specs))
	for id := range specs {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

var specs = map[string]Spec{}

func register(s Spec, promptBody string) {
	s.prompt = template.Must(template.New(s.ID).Parse(promptBody))
	specs[s.ID] = s
}

func init() {
	register(Spec{
		ID:                "c_to_python",
		SourceLang:        "C",
		TargetLang:        "Python",
		Extensions:        []string{".c", ".h"},
		TargetExt:         ".py",
		Complexity:        TierMedium,
		PreferredBackends: []string{"gemma-3n-2b", "claude-3-sonnet", "gpt-4"},
	}, cToPythonPrompt)
	register(Spec{
		ID:                "python_to_javascript",
		SourceLang:        "Python",
		TargetLang:        "JavaScript",
		Extensions:        []string{".py"},
		TargetExt:         ".js",
		Complexity:        TierMedium,
		PreferredBackends: []string{"gemma-3n-2b", "claude-3-sonnet", "gpt-4"},
	}, pythonToJSPrompt)
	register(Spec{
		ID:                "python_to_java",
		SourceLang:        "Python",
		TargetLang:        "Java",
		Extensions:        []string{".py"},
		TargetExt:         ".java",
		Complexity:        TierHigh,
		PreferredBackends: []string{"claude-3-sonnet", "gpt-4", "gemma-3n-2b"},
	}, pythonToJavaPrompt)
	register(Spec{
		ID:                "java_to_python",
		SourceLang:        "Java",
		TargetLang:        "Python",
		Extensions:        []string{".java"},
		TargetExt:         ".py",
		Complexity:        TierHigh,
		PreferredBackends: []string{"claude-3-sonnet", "gpt-4", "gemma-3n-2b"},
	}, javaToPythonPrompt)
	register(Spec{
		ID:                "javascript_to_python",
		SourceLang:        "JavaScript",
		TargetLang:        "Python",
		Extensions:        []string{".js", ".ts", ".jsx", ".tsx"},
		TargetExt:         ".py",
		Complexity:        TierMedium,
		PreferredBackends: []string{"gemma-3n-2b", "claude-3-sonnet", "gpt-4"},
	}, jsToPythonPrompt)
	register(Spec{
		ID:                "typescript_to_python",
		SourceLang:        "TypeScript",
		TargetLang:        "Python",
		Extensions:        []string{".ts", ".tsx"},
		TargetExt:         ".py",
		Complexity:        TierMedium,
		PreferredBackends: []string{"gemma-3n-2b", "claude-3-sonnet", "gpt-4"},
	}, tsToPythonPrompt)
	register(Spec{
		ID:                "java_to_javascript",
		SourceLang:        "Java",
		TargetLang:        "JavaScript",
		Extensions:        []string{".java"},
		TargetExt:         ".js",
		Complexity:        TierHigh,
		PreferredBackends: []string{"claude-3-sonnet", "gpt-4", "gemma-3n-2b"},
	}, javaToJSPrompt)
	register(Spec{
		ID:                "javascript_to_java",
		SourceLang:        "JavaScript",
		TargetLang:        "Java",
		Extensions:        []string{".js", ".ts", ".jsx", ".tsx"},
		TargetExt:         ".java",
		Complexity:        TierHigh,
		PreferredBackends: []string{"claude-3-sonnet", "gpt-4", "gemma-3n-2b"},
	}, jsToJavaPrompt)
}
