// Package rules is the pattern-substitution converter: per language
// pair, an ordered chain of find-and-replace rules applied to whole-file
// content. The chains are context-free text rewrites with no grammar
// behind them; nested braces, multi-line expressions and string
// literals containing rule-matching text will come out wrong. That is
// the accepted contract: the output is a best-effort scaffold flagged
// for manual review, never validated for syntax.
package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/hafidaso/CodeTransEval/internal/catalog"
)

// Rule is one ordered rewrite step. Replace uses ${n} group references.
// ReplaceFunc, when set, takes the submatch groups and may decline the
// rewrite by returning ok=false (used where the original pattern relied
// on backreferences RE2 does not support).
type Rule struct {
	Pattern     *regexp.Regexp
	Replace     string
	ReplaceFunc func(groups []string) (string, bool)
}

func (r Rule) apply(s string) string {
	if r.ReplaceFunc == nil {
		return r.Pattern.ReplaceAllString(s, r.Replace)
	}
	return r.Pattern.ReplaceAllStringFunc(s, func(m string) string {
		groups := r.Pattern.FindStringSubmatch(m)
		if out, ok := r.ReplaceFunc(groups); ok {
			return out
		}
		return m
	})
}

// Ruleset is the full conversion recipe for one pair: either a flat
// chain plus a generated header, or a custom line-oriented transform
// (the *_to_java pairs wrap output in a class skeleton).
type Ruleset struct {
	ID         string
	SourceLang string
	Chain      []Rule
	header     func(filename string) string
	custom     func(source, filename string) string
}

var rulesets = map[string]Ruleset{}

func register(rs Ruleset) { rulesets[rs.ID] = rs }

// Convert rewrites source under the pair's rule chain and prepends the
// generated review header. It is total for known conversion ids: any
// input string, including empty, yields a string.
func Convert(source, filename, conversionID string) (string, error) {
	rs, ok := rulesets[conversionID]
	if !ok {
		return "", fmt.Errorf("%w: %s", catalog.ErrUnsupportedConversion, conversionID)
	}
	if rs.custom != nil {
		return rs.custom(source, filename), nil
	}
	out := source
	for _, r := range rs.Chain {
		out = r.apply(out)
	}
	return rs.header(filename) + out, nil
}

func rule(pattern, replace string) Rule {
	return Rule{Pattern: regexp.MustCompile(pattern), Replace: replace}
}

// commentHeader renders the standard two-line banner naming the source
// file and disclaiming that manual review is required.
func commentHeader(prefix, sourceLang, filename string) string {
	return fmt.Sprintf("%s Converted from %s: %s\n%s Note: This is an automated conversion and may require manual adjustments\n\n",
		prefix, sourceLang, filename, prefix)
}

func pythonHeader(sourceLang string) func(string) string {
	return func(filename string) string { return commentHeader("#", sourceLang, filename) }
}

func jsHeader(sourceLang string) func(string) string {
	return func(filename string) string { return commentHeader("//", sourceLang, filename) }
}

// counterForLoop matches C-style counting loops where the loop variable
// repeats (`for (int i = 0; i < 10; i++)`). The repetition check lives
// in the func because RE2 has no backreferences.
func counterForLoop(decl, bodyStart string, build func(v, start, end string) string) Rule {
	re := regexp.MustCompile(`for\s*\(\s*` + decl + `\s+(\w+)\s*=\s*(\d+)\s*;\s*(\w+)\s*<\s*(\d+)\s*;\s*(\w+)\+\+\s*\)` + bodyStart)
	return Rule{
		Pattern: re,
		ReplaceFunc: func(g []string) (string, bool) {
			if len(g) < 6 || g[1] != g[3] || g[1] != g[5] {
				return "", false
			}
			return build(g[1], g[2], g[4]), true
		},
	}
}

// titleWord mimics str.title() on a single token: first letter of each
// alpha run uppercased, the rest lowered.
func titleWord(s string) string {
	var b strings.Builder
	prevAlpha := false
	for _, r := range s {
		isAlpha := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		switch {
		case isAlpha && !prevAlpha:
			b.WriteString(strings.ToUpper(string(r)))
		case isAlpha:
			b.WriteString(strings.ToLower(string(r)))
		default:
			b.WriteRune(r)
		}
		prevAlpha = isAlpha
	}
	return b.String()
}

// classNameFor derives a Java class name from the source filename.
func classNameFor(filename string) string {
	stem := filename
	if i := strings.LastIndex(stem, "/"); i >= 0 {
		stem = stem[i+1:]
	}
	if i := strings.LastIndex(stem, "."); i > 0 {
		stem = stem[:i]
	}
	return titleWord(strings.ReplaceAll(stem, "_", ""))
}
