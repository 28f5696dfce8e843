package rules

import "fmt"

func init() {
	register(Ruleset{
		ID:         "java_to_python",
		SourceLang: "Java",
		header:     pythonHeader("Java"),
		Chain: []Rule{
			// (a) import boilerplate
			rule(`import\s+[^;]+;`, ""),
			rule(`package\s+[^;]+;`, ""),
			// (b) class shell and entry point
			rule(`public\s+class\s+(\w+)`, `class ${1}`),
			rule(`public\s+static\s+void\s+main\s*\([^)]*\)\s*{`, `if __name__ == "__main__":`),
			rule(`public\s+static\s+(\w+)\s+(\w+)\s*\(([^)]*)\)\s*{`, `def ${2}(${3}):`),
			rule(`public\s+(\w+)\s+(\w+)\s*\(([^)]*)\)\s*{`, `def ${2}(self, ${3}):`),
			rule(`private\s+(\w+)\s+(\w+)\s*\(([^)]*)\)\s*{`, `def ${2}(self, ${3}):`),
			// (c) print / declarations
			rule(`System\.out\.println\s*\(\s*([^)]+)\s*\)\s*;`, `print(${1})`),
			rule(`(\w+)\s+(\w+)\s*=\s*([^;]+);`, `${2} = ${3}`),
			rule(`(\w+)\s+(\w+)\s*;`, `${2} = None`),
			// (d) control structures
			rule(`if\s*\(([^)]+)\)\s*{`, `if ${1}:`),
			rule(`else\s+if\s*\(([^)]+)\)\s*{`, `elif ${1}:`),
			rule(`else\s*{`, `else:`),
			counterForLoop(`int`, `\s*{`, func(v, start, end string) string {
				return fmt.Sprintf("for %s in range(%s, %s):", v, start, end)
			}),
			rule(`for\s*\(\s*(\w+)\s+(\w+)\s*:\s*([^)]+)\s*\)\s*{`, `for ${2} in ${3}:`),
			rule(`while\s*\(([^)]+)\)\s*{`, `while ${1}:`),
			rule(`try\s*{`, `try:`),
			rule(`}\s*catch\s*\([^)]+\)\s*{`, `except:`),
			// (e) literals
			rule(`"([^"]*)"`, `'${1}'`),
			rule(`\btrue\b`, `True`),
			rule(`\bfalse\b`, `False`),
			rule(`\bnull\b`, `None`),
			// (f) structural leftovers
			rule(`(?m);\s*$`, ""),
			rule(`(?m){\s*$`, ""),
			rule(`(?m)^\s*}\s*$`, ""),
		},
	})
}
