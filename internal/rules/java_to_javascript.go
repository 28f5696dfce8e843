package rules

import "fmt"

func init() {
	register(Ruleset{
		ID:         "java_to_javascript",
		SourceLang: "Java",
		header:     jsHeader("Java"),
		Chain: []Rule{
			rule(`import\s+[^;]+;`, ""),
			rule(`package\s+[^;]+;`, ""),
			rule(`public\s+class\s+(\w+)`, `class ${1} {`),
			rule(`public\s+static\s+void\s+main\s*\([^)]*\)\s*{`, `// Main function`),
			rule(`public\s+static\s+(\w+)\s+(\w+)\s*\(([^)]*)\)\s*{`, `static ${2}(${3}) {`),
			rule(`public\s+(\w+)\s+(\w+)\s*\(([^)]*)\)\s*{`, `${2}(${3}) {`),
			rule(`System\.out\.println\s*\(\s*([^)]+)\s*\)\s*;`, `console.log(${1});`),
			rule(`(\w+)\s+(\w+)\s*=\s*([^;]+);`, `let ${2} = ${3};`),
			rule(`(\w+)\s+(\w+)\s*;`, `let ${2};`),
			rule(`if\s*\(([^)]+)\)\s*{`, `if (${1}) {`),
			rule(`else\s+if\s*\(([^)]+)\)\s*{`, `} else if (${1}) {`),
			rule(`else\s*{`, `} else {`),
			counterForLoop(`int`, `\s*{`, func(v, start, end string) string {
				return fmt.Sprintf("for (let %s = %s; %s < %s; %s++) {", v, start, v, end, v)
			}),
			rule(`while\s*\(([^)]+)\)\s*{`, `while (${1}) {`),
			rule(`try\s*{`, `try {`),
			rule(`}\s*catch\s*\([^)]+\)\s*{`, `} catch (error) {`),
		},
	})
}
