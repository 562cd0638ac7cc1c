package categorizer

import (
	"bytes"
	"errors"
	"testing"
)

func TestRecordWriter_PandasQuoting(t *testing.T) {
	var buf bytes.Buffer
	w := NewRecordWriter(&buf)
	if err := w.Write([]string{" leading space", "a,b", `say "hi"`, "two\nlines", "", "plain"}); err != nil {
		t.Fatal(err)
	}
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}
	want := " leading space,\"a,b\",\"say \"\"hi\"\"\",\"two\nlines\",,plain\n"
	if got := buf.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestIsMissing(t *testing.T) {
	for _, v := range []string{"", "NaN", "nan", "NA", "null", "None", "#N/A"} {
		if !IsMissing(v) {
			t.Fatalf("expected %q to be missing", v)
		}
	}
	for _, v := range []string{" ", "0", "NAPKIN", "none"} {
		if IsMissing(v) {
			t.Fatalf("expected %q to be present", v)
		}
	}
}

func TestOpError_Format(t *testing.T) {
	inner := errors.New("boom")
	err := &OpError{Op: "acquire.download", Kind: KindNetwork, Path: "/tmp/x", Err: inner}
	if got, want := err.Error(), "acquire.download: network (path=/tmp/x): boom"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if !errors.Is(err, inner) {
		t.Fatalf("expected unwrap to reach inner error")
	}
	if IsKind(inner, KindNetwork) {
		t.Fatalf("plain error must not match a kind")
	}
}
