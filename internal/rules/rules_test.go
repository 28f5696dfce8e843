package rules

import (
	"errors"
	"strings"
	"testing"

	"github.com/hafidaso/CodeTransEval/internal/catalog"
)

func TestConvertUnknownID(t *testing.T) {
	_, err := Convert("x", "x.c", "c_to_rust")
	if !errors.Is(err, catalog.ErrUnsupportedConversion) {
		t.Fatalf("expected ErrUnsupportedConversion, got %v", err)
	}
}

// Every registered pair must produce a header-bearing string for any
// input, including empty input and input with no rule matches.
func TestConvertTotal(t *testing.T) {
	for _, id := range catalog.IDs() {
		for _, src := range []string{"", "plain text, nothing to match"} {
			out, err := Convert(src, "sample.src", id)
			if err != nil {
				t.Fatalf("%s: unexpected error: %v", id, err)
			}
			if !strings.Contains(out, "Converted from") {
				t.Errorf("%s: output missing header:\n%s", id, out)
			}
			if !strings.Contains(out, "may require manual adjustments") {
				t.Errorf("%s: output missing review note:\n%s", id, out)
			}
		}
	}
}

func TestConvertCToPython(t *testing.T) {
	src := `#include <stdio.h>

int main() {
    printf("Hello, World!\n");
    for (int i = 0; i < 3; i++) {
        printf("%d\n", i);
    }
    return 0;
}`
	out, err := Convert(src, "main.c", "c_to_python")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"# Converted from C: main.c",
		`if __name__ == "__main__":`,
		`print("Hello, World!\n")`,
		"for i in range(0, 3):",
		`print("%d\n" % (i))`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "#include") {
		t.Errorf("preprocessor line survived:\n%s", out)
	}
}

// Loops whose counter variable is inconsistent across the three clauses
// are left untouched instead of being rewritten wrongly.
func TestCounterLoopMismatchedVariable(t *testing.T) {
	out, err := Convert("for (int i = 0; j < 10; i++) {\n}", "odd.c", "c_to_python")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "for (int i = 0; j < 10; i++)") {
		t.Fatalf("mismatched loop was rewritten:\n%s", out)
	}
}

func TestConvertPythonToJavaScript(t *testing.T) {
	src := `def greet(name):
    print('Hello')
    ok = True`
	out, err := Convert(src, "greet.py", "python_to_javascript")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"// Converted from Python: greet.py",
		"function greet(name) {",
		`console.log("Hello")`,
		"let ok = true",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestConvertJavaToPython(t *testing.T) {
	src := `import java.util.*;

public class Demo {
    public static void main(String[] args) {
        System.out.println("hi");
        boolean done = false;
    }
}`
	out, err := Convert(src, "Demo.java", "java_to_python")
	if err != nil {
		t.Fatal(err)
	}
	// The quote-swap rule runs after the entry-point rewrite, so the
	// generated __main__ guard comes out single-quoted.
	for _, want := range []string{
		"# Converted from Java: Demo.java",
		"if __name__ == '__main__':",
		"print('hi')",
		"done = False",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "import java") {
		t.Errorf("import survived:\n%s", out)
	}
}

func TestConvertJavaScriptToPython(t *testing.T) {
	src := `function add(a, b) {
    let total = a + b;
    console.log(total);
    return total;
}`
	out, err := Convert(src, "add.js", "javascript_to_python")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"# Converted from JavaScript: add.js",
		"def add(a, b):",
		"total = a + b",
		"print(total)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

// The TypeScript pair strips type syntax and then reuses the JavaScript
// chain, including its header wording.
func TestConvertTypeScriptToPython(t *testing.T) {
	src := `function greet(name: string): void {
    console.log(name);
}`
	out, err := Convert(src, "greet.ts", "typescript_to_python")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"# Converted from JavaScript: greet.ts",
		"def greet(name):",
		"print(name)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, ": string") {
		t.Errorf("type annotation survived:\n%s", out)
	}
}

func TestConvertJavaToJavaScript(t *testing.T) {
	src := `public class Demo {
    public static void main(String[] args) {
        System.out.println("hi");
        int x = 5;
    }
}`
	out, err := Convert(src, "Demo.java", "java_to_javascript")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"// Converted from Java: Demo.java",
		"class Demo {",
		"// Main function",
		`console.log("hi");`,
		"let x = 5;",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

// Cramped control structures get their spacing regularized on the way
// through.
func TestConvertJavaToJavaScriptNormalizesSpacing(t *testing.T) {
	src := `public class Demo {
    public static void main(String[] args) {
        if(x > 0){
            System.out.println("pos");
        }
        while(x < 10){
            x = x + 1;
        }
        try{
            System.out.println("ok");
        } catch (Exception e) {
        }
    }
}`
	out, err := Convert(src, "Demo.java", "java_to_javascript")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"if (x > 0) {",
		"while (x < 10) {",
		"try {",
		"} catch (error) {",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
	for _, stale := range []string{"if(x", "while(x", "try{"} {
		if strings.Contains(out, stale) {
			t.Errorf("unnormalized %q survived in:\n%s", stale, out)
		}
	}
}

func TestConvertPythonToJava(t *testing.T) {
	src := `def greet(name):
    print('Hello')
    count = 3
    for i in range(3):
        print(i)

greet('World')`
	out, err := Convert(src, "my_script.py", "python_to_java")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"// Converted from Python: my_script.py",
		"import java.util.*;",
		"public class Myscript {",
		"public static Object greet(Object name) {",
		`System.out.println("Hello")`,
		"Object count = 3;",
		"for (int i = 0; i < 3; i++) {",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
	// The dedent that ends the method closes it and consumes that line.
	if !strings.Contains(out, "    }\n}") {
		t.Errorf("method not closed before class end:\n%s", out)
	}
	if strings.Contains(out, "greet(\"World\")") {
		t.Errorf("dedent line was emitted:\n%s", out)
	}
}

func TestConvertJavaScriptToJava(t *testing.T) {
	src := `function add(a, b) {
  return a + b;
}
console.log(add(1, 2));`
	out, err := Convert(src, "math_utils.js", "javascript_to_java")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"// Converted from JavaScript: math_utils.js",
		"public class Mathutils {",
		"public static Object add(a, b) {",
		"System.out.println(add(1, 2));",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestClassNameFor(t *testing.T) {
	cases := map[string]string{
		"my_script.py":   "Myscript",
		"sub/tool.js":    "Tool",
		"UPPER_CASE.py":  "Uppercase",
		"plain":          "Plain",
		"dotted.name.py": "Dotted.Name",
	}
	for in, want := range cases {
		if got := classNameFor(in); got != want {
			t.Errorf("classNameFor(%q) = %q, want %q", in, got, want)
		}
	}
}
