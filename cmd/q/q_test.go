package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/google/go-cmp/cmp"

	"github.com/quanta-format/go-quanta/chrono"
	"github.com/quanta-format/go-quanta/ir"
	"github.com/quanta-format/go-quanta/parse"
)

func mustDoc(t *testing.T, s string) *ir.Node {
	t.Helper()
	doc, err := parse.ParseString(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return doc
}

func TestMainCommand(t *testing.T) {
	if MainCommand() == nil {
		t.Fatal("nil command")
	}
}

func TestLookup(t *testing.T) {
	doc := mustDoc(t, "a = {\n alpha = 1\n beta = 2\n}\nc = 3")
	tests := []struct {
		path string
		want int64
	}{
		{"c", 3},
		{"a/alpha", 1},
		{"/a/beta", 2},
		{"a/#1", 2},
		{"#1", 3},
	}
	for _, tc := range tests {
		n, err := lookup(doc, tc.path)
		if err != nil {
			t.Errorf("%s: %v", tc.path, err)
			continue
		}
		if got := n.IntegerValue(); got != tc.want {
			t.Errorf("%s: got %d want %d", tc.path, got, tc.want)
		}
	}

	_, err := lookup(doc, "a/alph")
	if !errors.Is(err, errNotFound) {
		t.Fatalf("expected errNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), `did you mean "alpha"?`) {
		t.Errorf("missing suggestion: %v", err)
	}
	if _, err := lookup(doc, "a/#2"); !errors.Is(err, errNotFound) {
		t.Errorf("index out of range: got %v", err)
	}
}

func TestContextTime(t *testing.T) {
	now := time.Date(2024, 5, 6, 7, 8, 9, 0, time.FixedZone("", 3600))
	got, err := contextTime("", now)
	if err != nil {
		t.Fatal(err)
	}
	if got != chrono.FromGo(now) {
		t.Errorf("empty: got %v", got)
	}
	got, err = contextTime("2020-01-02T03:04:05Z", now)
	if err != nil {
		t.Fatal(err)
	}
	if want := chrono.FromGo(time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)); got != want {
		t.Errorf("literal: got %v want %v", got, want)
	}
	if _, err := contextTime("1", now); err == nil {
		t.Error("expected an error for a non time")
	}
}

func TestResolveTimes(t *testing.T) {
	doc := mustDoc(t, "t = 10:20\nd = 02T")
	ctx := chrono.FromGo(time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC))
	resolveTimes(doc, ctx, false)
	for _, c := range doc.Children() {
		if !c.Zoned() || !c.HasDate() || c.YearContextual() || c.MonthContextual() {
			t.Errorf("%s not resolved", c.Name())
		}
	}
}

func TestCanonical(t *testing.T) {
	got, err := canonical(ir.Null())
	if err != nil {
		t.Fatal(err)
	}
	if got != "" {
		t.Errorf("empty: got %q", got)
	}
	got, err = canonical(mustDoc(t, "a=1"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("a = 1\n", got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestCheckDoc(t *testing.T) {
	if err := checkDoc([]byte("a = 1\nb = {\n c = x\n}\n")); err != nil {
		t.Errorf("valid document: %v", err)
	}
	err := checkDoc([]byte("a = ="))
	if err == nil {
		t.Fatal("expected an error")
	}
	if got := diagnostic("f.q", err); !strings.HasPrefix(got, "f.q:1:5: ") {
		t.Errorf("diagnostic: got %q", got)
	}
	if got := diagnostic("f.q", errors.New("boom")); got != "f.q: boom" {
		t.Errorf("plain diagnostic: got %q", got)
	}
}

func TestApplyPatch(t *testing.T) {
	ops, err := jsonpatch.DecodePatch([]byte(`[{"op": "replace", "path": "/children/0/integer", "value": 2}]`))
	if err != nil {
		t.Fatal(err)
	}
	res, err := applyPatch(ops, mustDoc(t, "a = 1"))
	if err != nil {
		t.Fatal(err)
	}
	a := res.FindChild("a")
	if a == nil || a.IntegerValue() != 2 {
		d, _ := json.Marshal(res)
		t.Errorf("patched: %s", d)
	}
}

func TestExpressions(t *testing.T) {
	doc := mustDoc(t, "a = 1 + 2\nb = {\n c = x * 2\n d = 4\n}")
	if got := expressions(doc); got != 2 {
		t.Errorf("got %d want 2", got)
	}
}

func TestDiffLines(t *testing.T) {
	buf := &bytes.Buffer{}
	differs, err := diffLines(buf, "x", "y", mustDoc(t, "a = 1"), mustDoc(t, "a = 2"))
	if err != nil {
		t.Fatal(err)
	}
	if !differs {
		t.Fatal("expected a difference")
	}
	want := "--- x\n+++ y\n@@ -1,1 +1,1 @@\n-a = 1\n+a = 2\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	buf.Reset()
	differs, err = diffLines(buf, "x", "y", mustDoc(t, "a = 1"), mustDoc(t, "a=1"))
	if err != nil || differs || buf.Len() != 0 {
		t.Errorf("equal documents: differs=%v err=%v out=%q", differs, err, buf.String())
	}
}

func TestSession(t *testing.T) {
	buf := &bytes.Buffer{}
	s := &session{doc: ir.Null(), cfg: &MainConfig{}, w: buf}
	if err := s.eval("a = 2\nb = a * 3\nc = z + 1"); err != nil {
		t.Fatal(err)
	}
	want := "a = 2\nb = a * 3  \\\\ = 6\nc = z + 1\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if err := s.eval("a = 5"); err != nil {
		t.Fatal(err)
	}
	if s.doc.NumChildren() != 3 || s.doc.ChildAt(0).IntegerValue() != 5 {
		t.Errorf("a not replaced")
	}
	if err := s.eval("x = {"); err == nil {
		t.Error("expected a parse error")
	}
}

func TestNewLog(t *testing.T) {
	buf := &bytes.Buffer{}
	l := newLog(buf, slog.LevelInfo)
	l.Info("formatted", "file", "a.q")
	l.Warn("left", "n", 2)
	l.Debug("hidden")
	want := "msg=formatted file=a.q\nlevel=WARN msg=left n=2\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	buf.Reset()
	newLog(buf, slog.LevelDebug).Debug("shown")
	if got := buf.String(); got != "level=DEBUG msg=shown\n" {
		t.Errorf("debug: got %q", got)
	}
}
