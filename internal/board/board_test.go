package board

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"reso/internal/core"
	"reso/internal/palette"
	"reso/internal/render"
)

var _ core.Sim = (*Board)(nil)

func textImage(t *testing.T, rows ...string) image.Image {
	t.Helper()
	img, err := DecodeText(strings.NewReader(strings.Join(rows, "\n")))
	if err != nil {
		t.Fatalf("decode text: %v", err)
	}
	return img
}

func newBoard(t *testing.T, rows ...string) *Board {
	t.Helper()
	b, err := New(textImage(t, rows...))
	if err != nil {
		t.Fatalf("new board: %v", err)
	}
	return b
}

func frameOf(t *testing.T, rows ...string) *render.Frame {
	t.Helper()
	return render.FrameFromImage(textImage(t, rows...))
}

func expectFrame(t *testing.T, b *Board, want *render.Frame, step string) {
	t.Helper()
	got := b.Image()
	if !got.Equal(want) {
		var buf bytes.Buffer
		EncodeText(&buf, b)
		t.Fatalf("%s: frame differs at %v\n%s", step, got.Diff(want), buf.String())
	}
}

// Two wires exchanging their signal every tick.
var swapRows = []string{
	"RRRRR",
	"i...O",
	"o...I",
	"bbbbb",
}

var swapRowsTick = []string{
	"rrrrr",
	"I...o",
	"O...i",
	"BBBBB",
}

func TestReselMapFollowsImageAxes(t *testing.T) {
	b := newBoard(t,
		"Ri.",
		"AR.",
		"..b",
		"..r",
	)
	cases := []struct {
		x, y int
		want palette.Resel
	}{
		{0, 0, palette.Resel{Class: palette.ClassRedWire, Active: true}},
		{1, 1, palette.Resel{Class: palette.ClassRedWire, Active: true}},
		{2, 2, palette.Resel{Class: palette.ClassBlueWire}},
		{1, 0, palette.Resel{Class: palette.ClassInput}},
		{2, 0, palette.Empty},
		{0, 1, palette.Resel{Class: palette.ClassAnd, Active: true}},
		{2, 3, palette.Resel{Class: palette.ClassRedWire}},
	}
	for _, tc := range cases {
		if got := b.ReselAt(tc.x, tc.y); got != tc.want {
			t.Fatalf("resel (%d,%d) = %v, expected %v", tc.x, tc.y, got, tc.want)
		}
	}
	if s := b.Size(); s.W != 3 || s.H != 4 {
		t.Fatalf("size = %+v, expected 3x4", s)
	}
}

func TestRegionCountsAreStable(t *testing.T) {
	for i := 0; i < 3; i++ {
		b := newBoard(t, swapRows...)
		if n := b.Regions().Len(); n != 6 {
			t.Fatalf("build %d: %d regions, expected 6", i, n)
		}
		if n := len(b.RegionsWithClass(palette.ClassRedWire)); n != 1 {
			t.Fatalf("build %d: %d red wires", i, n)
		}
		if n := len(b.RegionsWithClass(palette.ClassInput)); n != 2 {
			t.Fatalf("build %d: %d inputs", i, n)
		}
		id, _ := b.RegionAt(0, 1)
		if n := len(b.AdjacentRegions(id)); n != 2 {
			t.Fatalf("build %d: input touches %d regions, expected 2", i, n)
		}
	}
}

func TestAliasingThroughBoard(t *testing.T) {
	b := newBoard(t, swapRows...)
	w := b.Circuit().RedWires()[0]
	start := w.Active()
	w.SetActive(!start)
	e, _ := b.Circuit().Element(w.RegionID())
	if e.Active() == start {
		t.Fatal("element lookup does not observe the wire mutation")
	}
}

func TestInitialFrameMatchesSource(t *testing.T) {
	b := newBoard(t, swapRows...)
	expectFrame(t, b, frameOf(t, swapRows...), "initial")
}

func TestUpdateIsIdempotent(t *testing.T) {
	b := newBoard(t, swapRows...)
	b.Circuit().BlueWires()[0].SetActive(true)
	b.Update()
	first := b.Image()
	b.Update()
	second := b.Image()
	if !first.Equal(second) {
		t.Fatalf("update changed the frame: %v", first.Diff(second))
	}
	if b.Ticks() != 0 {
		t.Fatal("update must not advance the tick counter")
	}
}

func TestUpdateRendersAllOnAndAllOff(t *testing.T) {
	rows := []string{
		"r.b.r",
		"i.o.I",
		"rrr.b",
	}
	allOn := frameOf(t,
		"R.B.R",
		"i.o.I",
		"RRR.B",
	)
	allOff := frameOf(t,
		"r.b.r",
		"i.o.I",
		"rrr.b",
	)
	b := newBoard(t, rows...)

	for _, w := range b.Circuit().Wires() {
		w.SetActive(true)
	}
	b.Update()
	expectFrame(t, b, allOn, "all on")

	for _, w := range b.Circuit().Wires() {
		w.SetActive(false)
	}
	b.Update()
	expectFrame(t, b, allOff, "all off")
}

func TestIterateSwapOscillates(t *testing.T) {
	b := newBoard(t, swapRows...)
	even := frameOf(t, swapRows...)
	odd := frameOf(t, swapRowsTick...)
	expectFrame(t, b, even, "tick 0")
	for i := 1; i <= 4; i++ {
		b.Iterate()
		want := even
		if i%2 == 1 {
			want = odd
		}
		expectFrame(t, b, want, fmt.Sprintf("tick %d", i))
	}
	if b.Ticks() != 4 {
		t.Fatalf("ticks = %d, expected 4", b.Ticks())
	}
}

func TestIterateInverterLoopOscillates(t *testing.T) {
	// A one-hop loop through an XOR gate whose other input is held high.
	even := []string{
		"R.rr",
		"I.Ir",
		"xxxr",
		".o.r",
		".rrr",
	}
	odd := []string{
		"R.RR",
		"I.iR",
		"XXXR",
		".O.R",
		".RRR",
	}
	b := newBoard(t, even...)
	evenFrame, oddFrame := frameOf(t, even...), frameOf(t, odd...)
	for i := 1; i <= 4; i++ {
		b.Iterate()
		want := evenFrame
		if i%2 == 1 {
			want = oddFrame
		}
		expectFrame(t, b, want, fmt.Sprintf("inverter tick %d", i))
	}
}

func TestCombinationalCircuitIsAFixedPoint(t *testing.T) {
	rows := []string{
		"R.b.R.b",
		"I.i.I.i",
		"XXX.aaa",
		".O...o.",
		".R...r.",
	}
	b := newBoard(t, rows...)
	want := frameOf(t, rows...)
	expectFrame(t, b, want, "steady state")
	for i := 0; i < 3; i++ {
		b.Iterate()
		expectFrame(t, b, want, "after iterate")
	}
}

func TestChainSettlesOneHopPerTick(t *testing.T) {
	steps := []string{
		"Rioriorior",
		"RIORiorior",
		"RIORIORior",
		"RIORIORIOR",
		"RIORIORIOR",
	}
	b := newBoard(t, steps[0])
	for i := 1; i < len(steps); i++ {
		b.Iterate()
		expectFrame(t, b, frameOf(t, steps[i]), fmt.Sprintf("chain tick %d", i))
	}
}

func TestUnknownColourAbortsBuild(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 1))
	img.SetRGBA(0, 0, palette.Render(palette.Resel{Class: palette.ClassRedWire, Active: true}))
	img.SetRGBA(1, 0, color.RGBA{R: 200, G: 200, B: 200, A: 255})
	img.SetRGBA(2, 0, palette.Render(palette.Empty))

	b, err := New(img)
	if err == nil || b != nil {
		t.Fatal("expected the build to fail")
	}
	var unknown *palette.UnknownColorError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected *palette.UnknownColorError in chain, got %v", err)
	}
	if !strings.Contains(err.Error(), "(1,0)") {
		t.Fatalf("error should name the pixel, got %q", err)
	}
}

func TestLoadPNG(t *testing.T) {
	src := textImage(t, swapRows...)
	path := filepath.Join(t.TempDir(), "swap.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, src); err != nil {
		t.Fatal(err)
	}
	f.Close()

	b, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if b.Name() != "swap" {
		t.Fatalf("name = %q, expected file stem", b.Name())
	}
	expectFrame(t, b, render.FrameFromImage(src), "loaded")
}

func TestLoadKeepsExplicitName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swap.txt")
	if err := os.WriteFile(path, []byte(strings.Join(swapRows, "\n")), 0o644); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{DefaultName, "adder"} {
		b, err := LoadWithConfig(path, Config{Name: name})
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if b.Name() != name {
			t.Fatalf("name = %q, expected %q", b.Name(), name)
		}
	}
	b, err := LoadWithConfig(path, DefaultConfig())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if b.Name() != "swap" {
		t.Fatalf("unnamed board = %q, expected file stem", b.Name())
	}
	if b := newBoard(t, swapRows...); b.Name() != DefaultName {
		t.Fatalf("in-memory board = %q, expected %q", b.Name(), DefaultName)
	}
}

func TestLoadText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swap.txt")
	text := "# swap\n" + strings.Join(swapRows, "\n") + "\n\n"
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}
	b, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	expectFrame(t, b, frameOf(t, swapRows...), "loaded text")

	var buf bytes.Buffer
	if err := EncodeText(&buf, b); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != strings.Join(swapRows, "\n")+"\n" {
		t.Fatalf("text round trip:\n%s", got)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	var readErr *ImageReadError

	_, err := Load(filepath.Join(dir, "missing.png"))
	if !errors.As(err, &readErr) || !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file: expected ImageReadError wrapping ErrNotExist, got %v", err)
	}

	junk := filepath.Join(dir, "junk.png")
	if err := os.WriteFile(junk, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(junk); !errors.As(err, &readErr) {
		t.Fatalf("junk file: expected ImageReadError, got %v", err)
	}

	bad := filepath.Join(dir, "bad.txt")
	if err := os.WriteFile(bad, []byte("R.\n.?\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = Load(bad)
	var glyph *palette.UnknownGlyphError
	if !errors.As(err, &readErr) || !errors.As(err, &glyph) {
		t.Fatalf("bad glyph: expected ImageReadError wrapping UnknownGlyphError, got %v", err)
	}
	if !strings.Contains(err.Error(), "line 2 column 2") {
		t.Fatalf("error should locate the glyph, got %q", err)
	}
}

func TestDecodeTextPadsShortRows(t *testing.T) {
	img := textImage(t, "RRR", "I", "")
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Fatalf("bounds = %v, expected 3x2", b)
	}
	if _, err := DecodeText(strings.NewReader("# only a comment\n\n")); err == nil {
		t.Fatal("expected an error for a board without rows")
	}
}

func TestResetRestoresSource(t *testing.T) {
	b := newBoard(t, swapRows...)
	b.Iterate()
	b.Iterate()
	b.Iterate()
	b.Reset(0)
	expectFrame(t, b, frameOf(t, swapRows...), "reset")
	if b.Ticks() != 0 {
		t.Fatal("reset must clear the tick counter")
	}

	other := newBoard(t, swapRows...)
	b.Reset(42)
	other.Reset(42)
	if !b.Image().Equal(other.Image()) {
		t.Fatal("scrambled reset is not deterministic")
	}
}

func TestToggle(t *testing.T) {
	b := newBoard(t, swapRows...)
	if !b.Toggle(0, 3) {
		t.Fatal("toggling a wire pixel should succeed")
	}
	if !b.Circuit().BlueWires()[0].Active() {
		t.Fatal("blue wire should be on after toggle")
	}
	if got := b.Image().At(4, 3); got != palette.Render(palette.Resel{Class: palette.ClassBlueWire, Active: true}) {
		t.Fatalf("toggle did not re-render, got %v", got)
	}
	if b.Toggle(0, 1) {
		t.Fatal("toggling an adapter must be refused")
	}
	if b.Toggle(2, 1) {
		t.Fatal("toggling an empty pixel must be refused")
	}
}

func TestParametersAndDescribe(t *testing.T) {
	b := newBoard(t, swapRows...)
	snap := b.Parameters()
	for key, want := range map[string]string{
		"regions":    "6",
		"circuits":   "1",
		"red_wire":   "1",
		"input":      "2",
		"wires_high": "1",
		"tick":       "0",
	} {
		p, ok := snap.Lookup(key)
		if !ok {
			t.Fatalf("parameter %q missing", key)
		}
		if p.Value != want {
			t.Fatalf("parameter %q = %s, expected %s", key, p.Value, want)
		}
	}

	if got := b.Describe(2, 1); !strings.Contains(got, "empty") {
		t.Fatalf("describe empty pixel = %q", got)
	}
	if got := b.Describe(0, 0); !strings.Contains(got, "red wire (on)") {
		t.Fatalf("describe wire pixel = %q", got)
	}
}
