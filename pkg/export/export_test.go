package export

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"kinview/pkg/model"
	"kinview/pkg/tree"
)

func sampleSubtree(t *testing.T) *tree.Subtree {
	t.Helper()
	raw := []model.RawPerson{
		{ID: 1, Gender: model.GenderMale, Names: []model.RawName{{First: "Aron", Last: "Levi"}},
			Birth: &model.RawEvent{Date: "1870"}, Death: &model.RawEvent{Date: "1940"},
			Marriages: []model.RawMarriage{{OtherPerson: &model.RawRef{ID: 2, Gender: model.GenderFemale}}}},
		{ID: 2, Gender: model.GenderFemale, Names: []model.RawName{{First: "Rivka", Last: "Levi"}}},
		{ID: 3, Names: []model.RawName{{First: "Dov", Last: "Levi"}},
			Parents: []model.RawRef{{ID: 1, Gender: model.GenderMale}, {ID: 2, Gender: model.GenderFemale}}},
	}
	sub := tree.BuildView(tree.Translate(raw), "3", tree.Options{})
	if sub.Empty() {
		t.Fatal("Fixture subtree is empty")
	}
	return sub
}

func TestWriteSVG_Content(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSVG(&buf, sampleSubtree(t)); err != nil {
		t.Fatalf("WriteSVG failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Fatal("Output is not an SVG document")
	}
	for _, want := range []string{"Aron Levi", "Rivka Levi", "Dov Levi", "1870"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in SVG output", want)
		}
	}
	// One dashed partner edge.
	if !strings.Contains(out, "stroke-dasharray") {
		t.Error("Expected a dashed partner edge")
	}
}

func TestWritePNG_Decodes(t *testing.T) {
	var buf bytes.Buffer
	sub := sampleSubtree(t)
	if err := WritePNG(&buf, sub); err != nil {
		t.Fatalf("WritePNG failed: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Output is not a decodable PNG: %v", err)
	}
	w, h := canvasSize(sub)
	if b := img.Bounds(); b.Dx() != w || b.Dy() != h {
		t.Errorf("PNG is %dx%d, expected %dx%d", b.Dx(), b.Dy(), w, h)
	}
}

func TestWriteFile_FormatDispatch(t *testing.T) {
	dir := t.TempDir()
	sub := sampleSubtree(t)

	for _, name := range []string{"out.svg", "out.png"} {
		path := filepath.Join(dir, name)
		if err := WriteFile(path, sub); err != nil {
			t.Fatalf("WriteFile(%s) failed: %v", name, err)
		}
		if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
			t.Errorf("Expected non-empty %s, got %v / %v", name, fi, err)
		}
	}

	if err := WriteFile(filepath.Join(dir, "out.bmp"), sub); err == nil {
		t.Error("Expected error for unsupported format")
	}
}

func TestWriteFile_EmptySubtree(t *testing.T) {
	sub := tree.BuildView(nil, "1", tree.Options{})
	if err := WriteFile(filepath.Join(t.TempDir(), "out.svg"), sub); err == nil {
		t.Error("Expected error for empty subtree")
	}
}

func TestWriteAll(t *testing.T) {
	dir := t.TempDir()
	paths := []string{filepath.Join(dir, "a.svg"), filepath.Join(dir, "b.png")}
	if err := WriteAll(sampleSubtree(t), paths...); err != nil {
		t.Fatalf("WriteAll failed: %v", err)
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("Expected %s written: %v", p, err)
		}
	}
}

func TestVisibleEdges_PartnerDeduplicated(t *testing.T) {
	sub := sampleSubtree(t)
	partners := 0
	for _, e := range visibleEdges(sub) {
		if e.partner {
			partners++
		}
	}
	if partners != 1 {
		t.Errorf("Expected 1 partner edge, got %d", partners)
	}
}
