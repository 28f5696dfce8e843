package orchestrate

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/hafidaso/CodeTransEval/internal/llm"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)
	return l
}

func newConverter(t *testing.T, opts Options) *Converter {
	t.Helper()
	c, err := New(nil, nil, quietLogger(), opts)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(c.Close)
	return c
}

const helloC = `#include <stdio.h>

int main() {
    printf("Hello!\n");
    return 0;
}
`

func TestConvertProjectPatternOnly(t *testing.T) {
	src, dst := t.TempDir(), t.TempDir()
	writeTree(t, src, map[string]string{
		"a.c": helloC,
		"b.c": "int x;\n",
	})

	c := newConverter(t, Options{UseAI: false})
	res, err := c.ConvertProject(context.Background(), src, dst, "c_to_python")
	if err != nil {
		t.Fatalf("ConvertProject: %v", err)
	}
	if res.Converted() != 2 || len(res.Errors) != 0 {
		t.Fatalf("converted=%d errors=%v", res.Converted(), res.Errors)
	}
	if res.AIUsed {
		t.Error("AIUsed should be false")
	}

	for _, name := range []string{"a.py", "b.py"} {
		b, err := os.ReadFile(filepath.Join(dst, name))
		if err != nil {
			t.Fatalf("missing %s: %v", name, err)
		}
		if !strings.Contains(string(b), "Converted from C") {
			t.Errorf("%s missing header:\n%s", name, b)
		}
	}
	for _, name := range []string{"requirements.txt", "README.md"} {
		if _, err := os.Stat(filepath.Join(dst, name)); err != nil {
			t.Errorf("missing scaffold %s: %v", name, err)
		}
	}

	if res.Files[0].Source != "a.c" || res.Files[0].Target != "a.py" {
		t.Errorf("unexpected first entry: %+v", res.Files[0])
	}
	if res.Files[0].Backend != PatternBackend {
		t.Errorf("backend = %q", res.Files[0].Backend)
	}
}

// A permanently failing model must leave the output byte-identical to
// an AI-disabled run, with no project-level error.
func TestConvertProjectAIFailureMatchesPatternRun(t *testing.T) {
	src := t.TempDir()
	writeTree(t, src, map[string]string{"a.c": helloC, "sub/b.c": "int y;\n"})

	plainDst := t.TempDir()
	plain := newConverter(t, Options{UseAI: false})
	if _, err := plain.ConvertProject(context.Background(), src, plainDst, "c_to_python"); err != nil {
		t.Fatal(err)
	}

	aiDst := t.TempDir()
	ai := newConverter(t, Options{UseAI: true, ForceBackend: "gemma-3n-2b"})
	ai.SetDialer(func(ctx context.Context, backendID string) (llm.Client, error) {
		return &llm.FakeClient{Err: errors.New("model down")}, nil
	})
	res, err := ai.ConvertProject(context.Background(), src, aiDst, "c_to_python")
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Errors) != 0 {
		t.Fatalf("AI failure surfaced as project errors: %v", res.Errors)
	}
	for _, fr := range res.Files {
		if fr.AIUsed || fr.Backend != PatternBackend {
			t.Errorf("file %s did not fall back: %+v", fr.Source, fr)
		}
	}

	for _, name := range []string{"a.py", "sub/b.py", "requirements.txt", "README.md"} {
		want, err := os.ReadFile(filepath.Join(plainDst, filepath.FromSlash(name)))
		if err != nil {
			t.Fatal(err)
		}
		got, err := os.ReadFile(filepath.Join(aiDst, filepath.FromSlash(name)))
		if err != nil {
			t.Fatal(err)
		}
		if string(want) != string(got) {
			t.Errorf("%s differs between runs", name)
		}
	}
}

func TestConvertProjectAISuccess(t *testing.T) {
	src, dst := t.TempDir(), t.TempDir()
	writeTree(t, src, map[string]string{"a.c": helloC, "b.c": helloC})

	c := newConverter(t, Options{UseAI: true, ForceBackend: "gemma-3n-2b"})
	fake := &llm.FakeClient{Reply: "print('Hello!')"}
	c.SetDialer(func(ctx context.Context, backendID string) (llm.Client, error) {
		if backendID != "gemma-3n-2b" {
			t.Errorf("dialed %q", backendID)
		}
		return fake, nil
	})

	res, err := c.ConvertProject(context.Background(), src, dst, "c_to_python")
	if err != nil {
		t.Fatal(err)
	}
	if res.Converted() != 2 {
		t.Fatalf("converted=%d", res.Converted())
	}
	for _, fr := range res.Files {
		if !fr.AIUsed || fr.Backend != "gemma-3n-2b" {
			t.Errorf("expected AI result: %+v", fr)
		}
	}
	b, _ := os.ReadFile(filepath.Join(dst, "a.py"))
	if string(b) != "print('Hello!')" {
		t.Errorf("a.py = %q", b)
	}
	// Identical content: the second file must come from the cache.
	if fake.Calls != 1 {
		t.Errorf("model calls = %d, want 1", fake.Calls)
	}
}

// One unreadable file fails alone; the rest of the batch still lands.
func TestConvertProjectFileErrorIsolated(t *testing.T) {
	src, dst := t.TempDir(), t.TempDir()
	writeTree(t, src, map[string]string{"good.c": helloC})
	if err := os.Symlink(filepath.Join(src, "nowhere"), filepath.Join(src, "broken.c")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	c := newConverter(t, Options{})
	res, err := c.ConvertProject(context.Background(), src, dst, "c_to_python")
	if err != nil {
		t.Fatal(err)
	}
	if res.Converted() != 1 {
		t.Fatalf("converted=%d", res.Converted())
	}
	if len(res.Errors) != 1 || res.Errors[0].File != "broken.c" {
		t.Fatalf("errors = %v", res.Errors)
	}
	// A read failure is not a decode failure; it keeps the generic class.
	if !strings.Contains(res.Errors[0].Error, "reading source") {
		t.Errorf("error class = %q", res.Errors[0].Error)
	}
	if strings.Contains(res.Errors[0].Error, "UndecodableFile") {
		t.Errorf("read failure mislabeled as decode failure: %q", res.Errors[0].Error)
	}
	if _, err := os.Stat(filepath.Join(dst, "good.py")); err != nil {
		t.Errorf("good.py missing: %v", err)
	}
}

func TestConvertProjectUnknownConversion(t *testing.T) {
	c := newConverter(t, Options{})
	if _, err := c.ConvertProject(context.Background(), t.TempDir(), t.TempDir(), "c_to_rust"); err == nil {
		t.Fatal("expected error")
	}
}

func TestConvertProjectMissingSourceRoot(t *testing.T) {
	c := newConverter(t, Options{})
	missing := filepath.Join(t.TempDir(), "does-not-exist")
	if _, err := c.ConvertProject(context.Background(), missing, t.TempDir(), "c_to_python"); err == nil {
		t.Fatal("expected error for missing source root")
	}
}

func TestConvertProjectSanitizesMetadata(t *testing.T) {
	src, dst := t.TempDir(), t.TempDir()
	writeTree(t, src, map[string]string{
		"a.c":          helloC,
		"__MACOSX/b.c": helloC,
		"._a.c":        "junk",
		".hidden/c.c":  helloC,
	})

	c := newConverter(t, Options{Workers: 4})
	res, err := c.ConvertProject(context.Background(), src, dst, "c_to_python")
	if err != nil {
		t.Fatal(err)
	}
	if res.Converted() != 1 || res.Files[0].Source != "a.c" {
		t.Fatalf("unexpected results: %+v", res.Files)
	}
	if _, err := os.Stat(filepath.Join(src, "__MACOSX")); !os.IsNotExist(err) {
		t.Error("metadata directory survived sanitize")
	}
}

func TestScaffoldJavaScriptTarget(t *testing.T) {
	src, dst := t.TempDir(), t.TempDir()
	writeTree(t, src, map[string]string{"m.py": "print('x')\n"})

	c := newConverter(t, Options{})
	if _, err := c.ConvertProject(context.Background(), src, dst, "python_to_javascript"); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(filepath.Join(dst, "package.json"))
	if err != nil {
		t.Fatalf("package.json: %v", err)
	}
	if !strings.Contains(string(b), `"converted-project"`) {
		t.Errorf("package.json content:\n%s", b)
	}
	if _, err := os.Stat(filepath.Join(dst, "README.md")); err != nil {
		t.Error("README.md missing")
	}
}

// The non-C to-Python conversions ship a stray pom.xml alongside the
// Python scaffolding.
func TestScaffoldPythonTargetFromJava(t *testing.T) {
	src, dst := t.TempDir(), t.TempDir()
	writeTree(t, src, map[string]string{"A.java": "class A {}\n"})

	c := newConverter(t, Options{})
	if _, err := c.ConvertProject(context.Background(), src, dst, "java_to_python"); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"requirements.txt", "README.md", "pom.xml"} {
		if _, err := os.Stat(filepath.Join(dst, name)); err != nil {
			t.Errorf("missing %s", name)
		}
	}
	b, _ := os.ReadFile(filepath.Join(dst, "pom.xml"))
	if !strings.Contains(string(b), "converted from Python") {
		t.Errorf("pom.xml description:\n%s", b)
	}
}
