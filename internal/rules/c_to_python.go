package rules

import "fmt"

func init() {
	register(Ruleset{
		ID:         "c_to_python",
		SourceLang: "C",
		header:     pythonHeader("C"),
		Chain: []Rule{
			// (a) preprocessor boilerplate
			rule(`#include\s*<[^>]+>`, ""),
			rule(`#include\s*"[^"]+"`, ""),
			rule(`#define\s+\w+\s+.*`, ""),
			rule(`#ifndef\s+\w+`, ""),
			rule(`#define\s+\w+`, ""),
			rule(`#endif`, ""),
			// (b) entry point
			rule(`int\s+main\s*\([^)]*\)\s*{`, `if __name__ == "__main__":`),
			// (c) declarations / print / input
			rule(`int\s+(\w+)\s*;`, `${1} = 0`),
			rule(`float\s+(\w+)\s*;`, `${1} = 0.0`),
			rule(`char\s+(\w+)\s*;`, `${1} = ""`),
			rule(`double\s+(\w+)\s*;`, `${1} = 0.0`),
			rule(`printf\s*\(\s*"([^"]*)"\s*\)\s*;`, `print("${1}")`),
			rule(`printf\s*\(\s*"([^"]*)"\s*,\s*([^)]+)\s*\)\s*;`, `print("${1}" % (${2}))`),
			rule(`scanf\s*\(\s*"([^"]*)"\s*,\s*&(\w+)\s*\)\s*;`, `${2} = input("${1}: ")`),
			// (d) control structures
			counterForLoop(`int`, ``, func(v, start, end string) string {
				return fmt.Sprintf("for %s in range(%s, %s):", v, start, end)
			}),
			rule(`while\s*\(([^)]+)\)\s*{`, `while ${1}:`),
			rule(`if\s*\(([^)]+)\)\s*{`, `if ${1}:`),
			rule(`else\s*{`, `else:`),
			// switch has no Python counterpart; left as commented markers
			rule(`switch\s*\(([^)]+)\)\s*{`, `# switch ${1}:`),
			rule(`case\s+([^:]+):`, `# case ${1}:`),
			rule(`break;`, `# break`),
			rule(`default:`, `# default:`),
			// (f) structural leftovers
			rule(`(?m);\s*$`, ""),
			rule(`(?m){\s*$`, ""),
			rule(`(?m)^\s*}\s*$`, ""),
		},
	})
}
