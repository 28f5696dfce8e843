package rules

var jsToJavaChain = []Rule{
	rule(`console\.log\s*\(\s*([^)]+)\s*\)`, `System.out.println(${1})`),
	rule(`function\s+(\w+)\s*\(([^)]*)\)\s*{`, `    public static Object ${1}(${2}) {`),
	rule(`const\s+(\w+)\s*=\s*\(([^)]*)\)\s*=>\s*{`, `    public static Object ${1}(${2}) {`),
	rule(`const\s+(\w+)\s*=\s*([^;]+);`, `        Object ${1} = ${2};`),
	rule(`let\s+(\w+)\s*=\s*([^;]+);`, `        Object ${1} = ${2};`),
	rule(`var\s+(\w+)\s*=\s*([^;]+);`, `        Object ${1} = ${2};`),
	rule(`if\s*\(([^)]+)\)\s*{`, `        if (${1}) {`),
	rule(`}?\s*else\s+if\s*\(([^)]+)\)\s*{`, `        } else if (${1}) {`),
	rule(`}?\s*else\s*{`, `        } else {`),
	counterForLoop(`let`, `\s*{`, func(v, start, end string) string {
		return "        for (int " + v + " = " + start + "; " + v + " < " + end + "; " + v + "++) {"
	}),
	rule(`while\s*\(([^)]+)\)\s*{`, `        while (${1}) {`),
	rule(`try\s*{`, `        try {`),
	rule(`}\s*catch\s*\([^)]+\)\s*{`, `        } catch (Exception e) {`),
	rule(`\btrue\b`, `true`),
	rule(`\bfalse\b`, `false`),
	rule(`\bnull\b`, `null`),
}

// javascriptToJava wraps the rewritten body in a class skeleton named
// after the source file.
func javascriptToJava(source, filename string) string {
	body := source
	for _, r := range jsToJavaChain {
		body = r.apply(body)
	}
	return javaClassHeader("JavaScript", filename) + body + "\n}\n"
}

func init() {
	register(Ruleset{
		ID:         "javascript_to_java",
		SourceLang: "JavaScript",
		custom:     javascriptToJava,
	})
}
