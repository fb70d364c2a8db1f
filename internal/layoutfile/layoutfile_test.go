package layoutfile

import (
	"errors"
	"path/filepath"
	"sort"
	"testing"

	"github.com/benoitkugler/sunder"
	"github.com/benoitkugler/sunder/figure"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestLoad(t *testing.T) {
	doc, err := Load(filepath.Join("testdata", "dashboard.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if doc.Width != 800 || doc.Height != 400 {
		t.Errorf("unexpected size %dx%d", doc.Width, doc.Height)
	}
	if len(doc.Splits) != 3 {
		t.Fatalf("expected 3 splits, got %d", len(doc.Splits))
	}
	if got := doc.Splits[0].X.String(); got != "0:0.6,0.65:1" {
		t.Errorf("unexpected x partition %q", got)
	}
	if got := doc.Splits[1].Y.String(); got != "3" {
		t.Errorf("unexpected y partition %q", got)
	}
	if got := doc.Splits[1].Exclude.String(); got != "0:1" {
		t.Errorf("unexpected exclusion %q", got)
	}

	fig := doc.NewFigure()
	labels, err := doc.Apply(fig)
	if err != nil {
		t.Fatal(err)
	}

	var names []string
	for name := range labels {
		names = append(names, name)
	}
	sort.Strings(names)
	want := []string{"col.0.0", "main", "side.0.0", "side.0.2"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}
	// col.1.0 was replaced by its split
	if got := len(fig.Axes()); got != 4 {
		t.Errorf("expected 4 axes in the figure, got %d", got)
	}

	approx := cmpopts.EquateApprox(0, 1e-12)
	wantTop := figure.Bbox{X0: 0.05 + 0.65*0.9, Y0: 0.9 - 0.8/3, X1: 0.95, Y1: 0.9}
	if diff := cmp.Diff(wantTop, labels["side.0.0"].Position(), approx); diff != "" {
		t.Errorf("side.0.0 mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(labels["col.0.0"].Position(), labels["main"].Position(), approx); diff != "" {
		t.Errorf("main should cover col.0.0 (-want +got):\n%s", diff)
	}
}

func TestParse(t *testing.T) {
	doc, err := Parse([]byte(`
splits:
  - x: "0.1:0.3,0.7:0.9"
    y: 2
    select: "1,1:1"
    on_error: warn
  - select: [1, [0, 0]]
`))
	if err != nil {
		t.Fatal(err)
	}
	s := doc.Splits[0]
	if s.X.Len() != 2 || s.Y.Len() != 2 {
		t.Errorf("unexpected partitions %q, %q", s.X, s.Y)
	}
	if got := s.Select.String(); got != "1,1:1" {
		t.Errorf("unexpected selection %q", got)
	}
	if got := doc.Splits[1].Select.String(); got != "1,0:0" {
		t.Errorf("unexpected selection %q", got)
	}
	if !doc.Splits[1].X.IsWhole() {
		t.Error("missing partition should keep the whole extent")
	}

	fig := doc.NewFigure()
	if fig.Width != figure.DefaultWidth || fig.Params != figure.DefaultSubplotParams {
		t.Error("expected default figure settings")
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{
		"width: -1",
		"splits: [{x: {a: 1}}]",
		"splits: [{x: [[a, b]]}]",
		"splits: [{x: 0}]",
		"splits: [{select: [{a: 1}]}]",
		"splits: [{select: {a: 1}}]",
		"splits: [{select: [x]}]",
	} {
		if _, err := Parse([]byte(in)); err == nil {
			t.Errorf("%q: expected an error", in)
		}
	}
}

func TestApplyReplaceKeepsLabel(t *testing.T) {
	doc, err := Parse([]byte(`
splits:
  - label: col
    x: 2
  - ref: col.0.0
    replace: true
    label: col
    x: 2
  - ref: col.0.0
    label: left
`))
	if err != nil {
		t.Fatal(err)
	}
	fig := doc.NewFigure()
	labels, err := doc.Apply(fig)
	if err != nil {
		t.Fatal(err)
	}
	ax, ok := labels["col.0.0"]
	if !ok {
		t.Fatal("col.0.0 should name the first cell of the replacing split")
	}
	p := fig.Params
	want := figure.Bbox{X0: p.Left, Y0: p.Bottom, X1: p.Left + (p.Right-p.Left)/4, Y1: p.Top}
	approx := cmpopts.EquateApprox(0, 1e-12)
	if diff := cmp.Diff(want, ax.Position(), approx); diff != "" {
		t.Errorf("col.0.0 mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, labels["left"].Position(), approx); diff != "" {
		t.Errorf("left mismatch (-want +got):\n%s", diff)
	}
	if got := len(fig.Axes()); got != 4 {
		t.Errorf("expected 4 axes in the figure, got %d", got)
	}
}

func TestApplyErrors(t *testing.T) {
	doc, err := Parse([]byte(`splits: [{ref: missing}]`))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := doc.Apply(doc.NewFigure()); err == nil {
		t.Error("expected an error for an unknown reference")
	}

	doc, err = Parse([]byte(`splits: [{x: 2, select: [[5, 0]]}]`))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := doc.Apply(doc.NewFigure()); !errors.Is(err, sunder.ErrCellOutOfRange) {
		t.Errorf("expected ErrCellOutOfRange, got %v", err)
	}

	doc.Splits[0].OnError = "ignore"
	labels, err := doc.Apply(doc.NewFigure())
	if err != nil {
		t.Fatal(err)
	}
	if len(labels) != 0 {
		t.Errorf("expected no axes, got %d", len(labels))
	}

	doc.Splits[0].OnError = "loud"
	if _, err := doc.Apply(doc.NewFigure()); err == nil {
		t.Error("expected an error for an unknown error mode")
	}
}
