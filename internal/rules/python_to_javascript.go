package rules

func init() {
	register(Ruleset{
		ID:         "python_to_javascript",
		SourceLang: "Python",
		header:     jsHeader("Python"),
		Chain: []Rule{
			rule(`print\s*\(\s*([^)]+)\s*\)`, `console.log(${1})`),
			rule(`def\s+(\w+)\s*\(([^)]*)\):`, `function ${1}(${2}) {`),
			rule(`if\s+([^:]+):`, `if (${1}) {`),
			rule(`elif\s+([^:]+):`, `} else if (${1}) {`),
			rule(`else:`, `} else {`),
			rule(`for\s+(\w+)\s+in\s+range\s*\(([^)]+)\):`, `for (let ${1} = 0; ${1} < ${2}; ${1}++) {`),
			rule(`for\s+(\w+)\s+in\s+([^:]+):`, `for (let ${1} of ${2}) {`),
			rule(`while\s+([^:]+):`, `while (${1}) {`),
			rule(`(?m)^(\s*)(\w+)\s*=\s*([^#\n]+)`, `${1}let ${2} = ${3}`),
			rule(`'([^']*)'`, `"${1}"`),
			rule(`\bTrue\b`, `true`),
			rule(`\bFalse\b`, `false`),
			rule(`\bNone\b`, `null`),
			rule(`try:`, `try {`),
			rule(`except\s+(\w+)\s+as\s+(\w+):`, `} catch (${2}) {`),
			rule(`except\s+(\w+):`, `} catch (${1}) {`),
			rule(`except:`, `} catch (error) {`),
		},
	})
}
