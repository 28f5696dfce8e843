package rules

func init() {
	// TypeScript goes through the JavaScript chain after stripping type
	// syntax, so the generated header names JavaScript as the source.
	// That mirrors the historical behavior of this conversion.
	chain := []Rule{
		rule(`:\s*\w+(?:<[^>]+>)?(?:\s*\|\s*\w+)*`, ""),
		rule(`interface\s+\w+\s*{[^}]*}`, ""),
		rule(`type\s+\w+\s*=\s*[^;]+;`, ""),
		rule(`enum\s+\w+\s*{[^}]*}`, ""),
	}
	chain = append(chain, jsToPythonChain()...)
	register(Ruleset{
		ID:         "typescript_to_python",
		SourceLang: "TypeScript",
		header:     pythonHeader("JavaScript"),
		Chain:      chain,
	})
}
