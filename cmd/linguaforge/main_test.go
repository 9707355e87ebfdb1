package main

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	perr "linguaforge/internal/platform/errors"
	kit "linguaforge/internal/platform/testkit"
)

func runCLI(t *testing.T, stdin io.Reader, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if stdin != nil {
		cmd.SetIn(stdin)
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, _, err := runCLI(t, nil, args...)
	if err != nil {
		t.Fatalf("%v: %v", args, err)
	}
	return out
}

func TestDetect(t *testing.T) {
	in := kit.TempFile(t, "de.txt", "Der Hund und die Katze\n")
	out := mustRun(t, "detect", "--input", in)
	kit.MustContain(t, out, "de  German                confidence=")
	kit.MustContain(t, out, "script=Latin")
	if n := strings.Count(out, "\n"); n != 1 {
		t.Fatalf("expected one line, got %d: %q", n, out)
	}

	ko := kit.TempFile(t, "ko.txt", "안녕하세요")
	out = mustRun(t, "detect", "--input", ko, "--top-k", "3")
	if out != "ko  Korean                confidence=90.00%  script=Hangul\n" {
		t.Fatalf("anchor line = %q", out)
	}

	out = mustRun(t, "detect", "--input", in, "--top-k", "3")
	if n := strings.Count(out, "\n"); n != 3 {
		t.Fatalf("expected three lines, got %d: %q", n, out)
	}
}

func TestDetect_JSON(t *testing.T) {
	in := kit.TempFile(t, "es.txt", "el perro y la casa de los gatos")
	out := mustRun(t, "-f", "json", "detect", "--input", in, "--top-k", "2")

	var got []struct {
		Language struct {
			Code string `json:"code"`
		} `json:"language"`
		Confidence float64 `json:"confidence"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if len(got) != 2 || got[0].Language.Code != "es" {
		t.Fatalf("got %+v", got)
	}
}

func TestTokenize(t *testing.T) {
	in := kit.TempFile(t, "zh.txt", "你好世界")
	out := mustRun(t, "tokenize", "--input", in, "--language", "zh")
	want := "Language: Chinese (zh)\nTokens (4):\n你 | 好 | 世 | 界\n"
	if out != want {
		t.Fatalf("got %q want %q", out, want)
	}

	en := kit.TempFile(t, "en.txt", "Hello, world!")
	out = mustRun(t, "tokenize", "--input", en)
	kit.MustContain(t, out, "Language: English (en)")
	kit.MustContain(t, out, "Hello | , | world | !")
}

func TestTransliterate(t *testing.T) {
	in := kit.TempFile(t, "hi.txt", "क")
	out := mustRun(t, "transliterate", "--input", in, "--from", "devanagari", "--to", "latin")
	if out != "ka\n" {
		t.Fatalf("got %q", out)
	}

	_, _, err := runCLI(t, nil, "transliterate", "--input", in, "--from", "latin", "--to", "bengali")
	if err == nil {
		t.Fatal("expected unsupported pair error")
	}
	if perr.ExitCode(err) != 1 || !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("exit=%d code=%v", perr.ExitCode(err), perr.CodeOf(err))
	}
	kit.MustContain(t, err.Error(), "supported pairs: Devanagari->Latin, Latin->Devanagari")
}

func TestNormalize(t *testing.T) {
	in := kit.TempFile(t, "en.txt", "  hello   world  ")
	out := mustRun(t, "normalize", "--input", in, "--language", "en")
	if out != "hello world\n" {
		t.Fatalf("got %q", out)
	}

	_, _, err := runCLI(t, nil, "normalize", "--input", in)
	if perr.ExitCode(err) != 2 {
		t.Fatalf("missing language should be a usage error, got %v", err)
	}
}

func TestScript_Stdin(t *testing.T) {
	out, _, err := runCLI(t, strings.NewReader("नमस्ते दुनिया\n"), "script", "--input", "-")
	if err != nil {
		t.Fatal(err)
	}
	if out != "Devanagari\n" {
		t.Fatalf("got %q", out)
	}
}

func TestSanitize(t *testing.T) {
	in := kit.TempFile(t, "ctl.txt", "a\x00b")
	out := mustRun(t, "--sanitize", "normalize", "--input", in, "--language", "en")
	if out != "ab\n" {
		t.Fatalf("got %q", out)
	}
}

func TestLanguages(t *testing.T) {
	out := mustRun(t, "languages", "--script", "Tamil")
	kit.MustContain(t, out, "ta")
	kit.MustContain(t, out, "Tamil")
	kit.MustNotContain(t, out, "Hindi")

	out = mustRun(t, "-f", "table", "languages", "--family", "Dravidian")
	kit.MustContain(t, out, "╭")
	kit.MustContain(t, out, "Telugu")
	kit.MustNotContain(t, out, "German")

	out = mustRun(t, "languages", "--families")
	kit.MustContain(t, out, "Dravidian\n")

	_, _, err := runCLI(t, nil, "languages", "--scripts", "--families")
	if perr.ExitCode(err) != 2 {
		t.Fatalf("exclusive listing flags should be a usage error, got %v", err)
	}

	out = mustRun(t, "languages", "--scripts")
	kit.MustContain(t, out, "Devanagari")

	out = mustRun(t, "-f", "json", "languages", "--script", "Nope")
	if strings.TrimSpace(out) != "[]" {
		t.Fatalf("got %q", out)
	}
}

func TestVersion(t *testing.T) {
	out := mustRun(t, "version")
	kit.MustContain(t, out, "linguaforge dev")
}

func TestConfigFile(t *testing.T) {
	in := kit.TempFile(t, "de.txt", "Der Hund und die Katze")
	cfg := kit.TempFile(t, "lingua.toml", "top_k = 2\nformat = \"json\"\n")

	out := mustRun(t, "--config", cfg, "detect", "--input", in)
	var got []map[string]any
	if err := json.Unmarshal([]byte(out), &got); err != nil || len(got) != 2 {
		t.Fatalf("file defaults not applied: %v %q", err, out)
	}

	t.Setenv("LINGUA_TOP_K", "3")
	out = mustRun(t, "--config", cfg, "detect", "--input", in)
	if err := json.Unmarshal([]byte(out), &got); err != nil || len(got) != 3 {
		t.Fatalf("env should win over the file: %v %q", err, out)
	}

	out = mustRun(t, "--config", cfg, "-f", "text", "detect", "--input", in, "--top-k", "1")
	if strings.Count(out, "\n") != 1 {
		t.Fatalf("flags should win: %q", out)
	}

	t.Setenv("LINGUA_CONFIG", cfg)
	out = mustRun(t, "detect", "--input", in, "--top-k", "1")
	kit.MustContain(t, out, `"code": "de"`)
}

func TestErrors(t *testing.T) {
	in := kit.TempFile(t, "x.txt", "x")
	cases := []struct {
		name string
		args []string
		exit int
		code perr.ErrorCode
	}{
		{"missing input flag", []string{"detect"}, 2, perr.ErrorCodeValidation},
		{"missing file", []string{"detect", "--input", "/nonexistent/lingua.txt"}, 1, perr.ErrorCodeNotFound},
		{"top-k zero", []string{"detect", "--input", in, "--top-k", "0"}, 2, perr.ErrorCodeValidation},
		{"unknown flag", []string{"detect", "--bogus"}, 2, perr.ErrorCodeValidation},
		{"unknown command", []string{"frobnicate"}, 2, perr.ErrorCodeValidation},
		{"stray argument", []string{"script", "--input", in, "extra"}, 2, perr.ErrorCodeValidation},
		{"bad format", []string{"-f", "yaml", "script", "--input", in}, 2, perr.ErrorCodeValidation},
		{"missing pair", []string{"transliterate", "--input", in, "--from", "latin"}, 2, perr.ErrorCodeValidation},
		{"missing config", []string{"--config", "/nonexistent/lingua.toml", "version"}, 1, perr.ErrorCodeNotFound},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, _, err := runCLI(t, nil, c.args...)
			if err == nil {
				t.Fatal("expected error")
			}
			if got := perr.ExitCode(err); got != c.exit {
				t.Fatalf("exit = %d, want %d (%v)", got, c.exit, err)
			}
			if got := perr.CodeOf(err); got != c.code {
				t.Fatalf("code = %v, want %v", got, c.code)
			}
		})
	}
}
