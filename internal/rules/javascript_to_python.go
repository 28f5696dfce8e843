package rules

import "fmt"

// jsToPythonChain is shared by the JavaScript and TypeScript pairs; the
// TypeScript ruleset strips type syntax first and then runs this chain.
func jsToPythonChain() []Rule {
	return []Rule{
		rule(`console\.log\s*\(\s*([^)]+)\s*\)`, `print(${1})`),
		rule(`function\s+(\w+)\s*\(([^)]*)\)\s*{`, `def ${1}(${2}):`),
		rule(`const\s+(\w+)\s*=\s*\(([^)]*)\)\s*=>\s*{`, `def ${1}(${2}):`),
		rule(`let\s+(\w+)\s*=\s*\(([^)]*)\)\s*=>\s*{`, `def ${1}(${2}):`),
		rule(`const\s+(\w+)\s*=\s*([^;]+);`, `${1} = ${2}`),
		rule(`let\s+(\w+)\s*=\s*([^;]+);`, `${1} = ${2}`),
		rule(`var\s+(\w+)\s*=\s*([^;]+);`, `${1} = ${2}`),
		rule(`if\s*\(([^)]+)\)\s*{`, `if ${1}:`),
		rule(`}?\s*else\s+if\s*\(([^)]+)\)\s*{`, `elif ${1}:`),
		rule(`}?\s*else\s*{`, `else:`),
		counterForLoop(`let`, `\s*{`, func(v, start, end string) string {
			return fmt.Sprintf("for %s in range(%s, %s):", v, start, end)
		}),
		rule(`for\s*\(\s*let\s+(\w+)\s+of\s+([^)]+)\s*\)\s*{`, `for ${1} in ${2}:`),
		rule(`while\s*\(([^)]+)\)\s*{`, `while ${1}:`),
		rule(`try\s*{`, `try:`),
		rule(`}\s*catch\s*\([^)]+\)\s*{`, `except:`),
		rule(`"([^"]*)"`, `'${1}'`),
		rule(`\btrue\b`, `True`),
		rule(`\bfalse\b`, `False`),
		rule(`\bnull\b`, `None`),
		rule(`(?m);\s*$`, ""),
		rule(`(?m){\s*$`, ""),
		rule(`(?m)^\s*}\s*$`, ""),
	}
}

func init() {
	register(Ruleset{
		ID:         "javascript_to_python",
		SourceLang: "JavaScript",
		header:     pythonHeader("JavaScript"),
		Chain:      jsToPythonChain(),
	})
}
