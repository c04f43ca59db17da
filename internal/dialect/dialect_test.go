package dialect

import (
	"os"
	"path/filepath"
	"testing"

	"compsim/internal/lang"
)

func TestDetectSnippets(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want lang.Language
	}{
		{"js", "const f = (x) => x === undefined;\nconsole.log(f(1));", lang.JavaScript},
		{"python", "def f(x):\n    if x is None:\n        return 0\n    return x\n", lang.Python},
		{"c", "#include <stdio.h>\nint main(void) { printf(\"hi\"); return 0; }", lang.C},
		{"cpp", "#include <iostream>\nint main() { std::cout << 1; }", lang.Cpp},
		{"java", "public class A {\n  public static void main(String[] args) { System.out.println(1); }\n}", lang.Java},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, c, ok := Detect([]byte(tc.src))
			if !ok || got != tc.want {
				t.Fatalf("Detect = %v (ok=%v), classification %+v", got, ok, c)
			}
			if c.Confidence <= 0 || c.Confidence > 1 {
				t.Fatalf("confidence = %v", c.Confidence)
			}
		})
	}
}

func TestDetectWeakEvidence(t *testing.T) {
	for _, src := range []string{"", "1 + 2 * 3", "x = y"} {
		if l, c, ok := Detect([]byte(src)); ok {
			t.Fatalf("%q detected as %v (%+v)", src, l, c)
		}
	}
}

func TestClassifyTieKeepsFirst(t *testing.T) {
	e := NewEvidence()
	e.Add(Hint{Language: lang.C, Score: 3})
	e.Add(Hint{Language: lang.Cpp, Score: 3})
	e.Add(Hint{Language: lang.Invalid, Score: 9})
	c := Classify(e)
	if c.Language != lang.C || c.RunnerUp != lang.Cpp || c.TotalScore != 6 || c.ObservedSignals != 3 {
		t.Fatalf("classification = %+v", c)
	}
}

func TestHintSpansPointAtEvidence(t *testing.T) {
	src := []byte("let a = 1\n")
	for _, h := range Collect(src).Hints() {
		if string(src[h.Span.Start:h.Span.End]) != "let" {
			t.Fatalf("hint %+v spans %q", h, src[h.Span.Start:h.Span.End])
		}
	}
}

func TestDetectSamples(t *testing.T) {
	dir := filepath.Join("..", "..", "testdata", "samples")
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Skipf("no samples: %v", err)
	}
	for _, e := range entries {
		want, ok := lang.ForPath(e.Name())
		if !ok {
			continue
		}
		src, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		if got, c, ok := Detect(src); !ok || got != want {
			t.Errorf("%s: Detect = %v (ok=%v) %+v", e.Name(), got, ok, c)
		}
	}
}
