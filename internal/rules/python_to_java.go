package rules

import (
	"fmt"
	"regexp"
	"strings"
)

// The *_to_java pairs cannot be expressed as a flat rule chain: the
// output is wrapped in a class skeleton and the body indentation is
// derived from the Python indentation, so they run as line-oriented
// custom transforms.

var (
	pyDefRe      = regexp.MustCompile(`def\s+(\w+)\s*\(([^)]*)\):`)
	pyPrintRe    = regexp.MustCompile(`print\s*\(\s*([^)]+)\s*\)`)
	pyIfRe       = regexp.MustCompile(`if\s+([^:]+):`)
	pyElifRe     = regexp.MustCompile(`elif\s+([^:]+):`)
	pyRangeForRe = regexp.MustCompile(`for\s+(\w+)\s+in\s+range\s*\(([^)]+)\):`)
	pyForRe      = regexp.MustCompile(`for\s+(\w+)\s+in\s+([^:]+):`)
	pyWhileRe    = regexp.MustCompile(`while\s+([^:]+):`)
	pyAssignRe   = regexp.MustCompile(`^(\s*)(\w+)\s*=\s*([^#\n]+)`)
	pySingleQRe  = regexp.MustCompile(`'([^']*)'`)
	pyListRe     = regexp.MustCompile(`\[([^\]]*)\]`)
	wordTrueRe   = regexp.MustCompile(`\bTrue\b`)
	wordFalseRe  = regexp.MustCompile(`\bFalse\b`)
	wordNoneRe   = regexp.MustCompile(`\bNone\b`)
)

func javaClassHeader(sourceLang, filename string) string {
	return fmt.Sprintf(`// Converted from %s: %s
// Note: This is an automated conversion and may require manual adjustments

import java.util.*;
import java.io.*;

public class %s {
`, sourceLang, filename, classNameFor(filename))
}

func indentOf(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t"))
}

// pythonToJava walks the source line by line, rewriting statements into
// Java idioms and translating indentation into the class/method nesting.
// A dedent back to the def's own level closes the method and consumes
// that line rather than emitting it. Blank lines are dropped.
func pythonToJava(source, filename string) string {
	var b strings.Builder
	b.WriteString(javaClassHeader("Python", filename))

	inFunction := false
	functionIndent := 0

	for _, line := range strings.Split(source, "\n") {
		trimmed := strings.TrimSpace(line)
		lead := line[:indentOf(line)]
		if strings.HasPrefix(trimmed, "#!") ||
			strings.HasPrefix(trimmed, `"""`) ||
			strings.HasPrefix(trimmed, "'''") {
			continue
		}

		if m := pyDefRe.FindStringSubmatch(line); m != nil {
			var params []string
			for _, p := range strings.Split(m[2], ",") {
				p = strings.TrimSpace(p)
				if p != "" {
					params = append(params, "Object "+p)
				}
			}
			fmt.Fprintf(&b, "    public static Object %s(%s) {\n", m[1], strings.Join(params, ", "))
			inFunction = true
			functionIndent = indentOf(line)
			continue
		}

		if strings.Contains(line, "print(") {
			line = pyPrintRe.ReplaceAllString(line, `System.out.println(${1})`)
		}

		switch {
		case strings.HasPrefix(trimmed, "if ") && strings.HasSuffix(trimmed, ":"):
			line = pyIfRe.ReplaceAllString(line, `if (${1}) {`)
		case strings.HasPrefix(trimmed, "elif ") && strings.HasSuffix(trimmed, ":"):
			line = pyElifRe.ReplaceAllString(line, `} else if (${1}) {`)
		case trimmed == "else:":
			line = lead + "} else {"
		}

		if strings.Contains(line, "for ") && strings.Contains(line, " in ") && strings.HasSuffix(trimmed, ":") {
			if strings.Contains(line, "range(") {
				if m := pyRangeForRe.FindStringSubmatch(trimmed); m != nil {
					v, rangeExpr := m[1], m[2]
					if start, end, ok := strings.Cut(rangeExpr, ","); ok {
						line = fmt.Sprintf("%sfor (int %s = %s; %s < %s; %s++) {", lead, v, start, v, end, v)
					} else {
						line = fmt.Sprintf("%sfor (int %s = 0; %s < %s; %s++) {", lead, v, v, rangeExpr, v)
					}
				}
			} else if m := pyForRe.FindStringSubmatch(trimmed); m != nil {
				line = fmt.Sprintf("%sfor (Object %s : %s) {", lead, m[1], m[2])
			}
		}

		if strings.HasPrefix(trimmed, "while ") && strings.HasSuffix(trimmed, ":") {
			line = pyWhileRe.ReplaceAllString(line, `while (${1}) {`)
		}

		if m := pyAssignRe.FindStringSubmatch(line); m != nil {
			line = fmt.Sprintf("%sObject %s = %s;", m[1], m[2], m[3])
		}

		line = pySingleQRe.ReplaceAllString(line, `"${1}"`)
		line = wordTrueRe.ReplaceAllString(line, "true")
		line = wordFalseRe.ReplaceAllString(line, "false")
		line = wordNoneRe.ReplaceAllString(line, "null")
		line = pyListRe.ReplaceAllString(line, `new Object[]{${1}}`)

		trimmed = strings.TrimSpace(line)
		if trimmed == "try:" {
			line = lead + "try {"
		} else if strings.HasPrefix(trimmed, "except") {
			line = lead + "} catch (Exception e) {"
		}

		if strings.TrimSpace(line) == "" {
			continue
		}
		if inFunction {
			current := indentOf(line)
			if current <= functionIndent {
				inFunction = false
				b.WriteString("    }\n")
			} else {
				depth := (current - functionIndent - 4) / 4
				if depth < 0 {
					depth = 0
				}
				b.WriteString("        " + strings.Repeat("    ", depth) + strings.TrimSpace(line) + "\n")
			}
		} else {
			b.WriteString("    " + strings.TrimSpace(line) + "\n")
		}
	}

	b.WriteString("}\n")
	return b.String()
}

func init() {
	register(Ruleset{
		ID:         "python_to_java",
		SourceLang: "Python",
		custom:     pythonToJava,
	})
}
