package pokemon

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/nathanieltooley/pokeget/global"
	"github.com/nathanieltooley/pokeget/sprites"
)

func init() {
	global.StopLogging()
}

func TestSanitize(t *testing.T) {
	cases := map[string]string{
		"Mr. Mime":    "mr-mime",
		"Farfetch'd":  "farfetchd",
		"Type: Null":  "type-null",
		"tapu_koko":   "tapu-koko",
		"tapu koko":   "tapu-koko",
		"  Pikachu  ": "pikachu",
		"ho-oh":       "ho-oh",
	}

	for name, expected := range cases {
		if got := Sanitize(name); got != expected {
			t.Errorf("%q: expected %q, got %q", name, expected, got)
		}
	}
}

func TestPath(t *testing.T) {
	cases := []struct {
		name     string
		attrs    Attributes
		random   bool
		expected string
	}{
		{"Mr. Mime", Attributes{}, false, "regular/mr-mime.png"},
		{"Farfetch'd", Attributes{}, false, "regular/farfetchd.png"},
		{"charizard", Attributes{Form: "mega-x"}, false, "regular/charizard-mega-x.png"},
		{"charizard", Attributes{Form: "mega", Shiny: true}, false, "shiny/charizard-mega.png"},
		{"hippowdon", Attributes{Female: true}, false, "regular/female/hippowdon.png"},
		{"hippowdon", Attributes{Female: true, Shiny: true}, false, "shiny/female/hippowdon.png"},
		{"growlithe", Attributes{Form: "hisui"}, false, "regular/growlithe-hisui.png"},
		{"kleavor", Attributes{Form: "noble"}, false, "regular/kleavor-noble.png"},
		// random pokemon skip the form and female sprite, but not shiny
		{"abra", Attributes{Form: "mega", Female: true}, true, "regular/abra.png"},
		{"abra", Attributes{Form: "mega", Shiny: true}, true, "shiny/abra.png"},
	}

	for _, c := range cases {
		if got := c.attrs.Path(c.name, c.random); got != c.expected {
			t.Errorf("%s %+v random=%t: expected %s, got %s", c.name, c.attrs, c.random, c.expected, got)
		}
	}
}

func TestPathDeterministic(t *testing.T) {
	attrs := Attributes{Form: "galar", Shiny: true}
	first := attrs.Path("Mr. Mime", false)

	for range 100 {
		if attrs.Path("Mr. Mime", false) != first {
			t.Fatalf("path changed between calls")
		}
	}
}

func TestRandomSuppressesForm(t *testing.T) {
	reg := testRegistry(t, "")
	attrs := NewAttributes(Flags{Mega: true}, ShinyChance{}, testRng())

	resolved, err := Resolve(ParseSelection("random"), reg, testRng())
	if err != nil {
		t.Fatalf("%s", err)
	}

	path := attrs.Path(resolved.Name, resolved.Random)
	if strings.Contains(path, "-mega") {
		t.Fatalf("random selection should not get a form: %s", path)
	}
}

func spritePNG(t *testing.T, w, h int) []byte {
	t.Helper()

	// sprite padded with a transparent border on every side
	img := image.NewNRGBA(image.Rect(0, 0, w+4, h+4))
	for y := 2; y < h+2; y++ {
		for x := 2; x < w+2; x++ {
			img.Set(x, y, color.NRGBA{G: 200, A: 255})
		}
	}

	buf := bytes.Buffer{}
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("%s", err)
	}
	return buf.Bytes()
}

func testStore(t *testing.T) sprites.GenerationStore {
	files := fstest.MapFS{
		"pokemon-gen8/regular/pikachu.png":       {Data: spritePNG(t, 10, 8)},
		"pokemon-gen8/regular/mr-mime.png":       {Data: spritePNG(t, 6, 12)},
		"pokemon-gen7x/shiny/charizard-mega.png": {Data: spritePNG(t, 5, 5)},
		"pokemon-gen8/regular/missingno.png":     {Data: []byte("garbage")},
	}

	return sprites.NewGenerationStore(sprites.NewFSStore(files), "pokemon-gen8", "pokemon-gen7x")
}

func TestNew(t *testing.T) {
	reg := testRegistry(t, "")

	pkm, err := New(Resolved{Name: "Mr. Mime"}, reg, Attributes{}, testStore(t))
	if err != nil {
		t.Fatalf("%s", err)
	}

	if pkm.Path != "regular/mr-mime.png" || pkm.Source != "pokemon-gen8/regular/mr-mime.png" {
		t.Errorf("unexpected paths %s %s", pkm.Path, pkm.Source)
	}
	if pkm.Name != "Mr. Mime" {
		t.Errorf("expected display name Mr. Mime, got %s", pkm.Name)
	}
	if b := pkm.Sprite.Bounds(); b.Dx() != 6 || b.Dy() != 12 {
		t.Errorf("sprite should be trimmed to 6x12, got %v", b)
	}
}

func TestNewGenerationFallback(t *testing.T) {
	reg := testRegistry(t, "")

	pkm, err := New(Resolved{Name: "charizard"}, reg, Attributes{Form: "mega", Shiny: true}, testStore(t))
	if err != nil {
		t.Fatalf("%s", err)
	}
	if pkm.Source != "pokemon-gen7x/shiny/charizard-mega.png" {
		t.Fatalf("expected fallback source, got %s", pkm.Source)
	}
	if pkm.Name != "Charizard" {
		t.Fatalf("display name should not include the form, got %s", pkm.Name)
	}
}

func TestNewErrors(t *testing.T) {
	reg := testRegistry(t, "")
	store := testStore(t)

	_, err := New(Resolved{Name: "bulbasaur"}, reg, Attributes{}, store)
	var notFound *AssetNotFoundError
	if !errors.As(err, &notFound) || notFound.Path != "regular/bulbasaur.png" {
		t.Fatalf("expected AssetNotFoundError, got %v", err)
	}

	_, err = New(Resolved{Name: "missingno"}, reg, Attributes{}, store)
	var malformed *MalformedImageError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedImageError, got %v", err)
	}
	if !errors.Is(err, sprites.ErrMalformedImage) {
		t.Fatalf("malformed image error should wrap ErrMalformedImage")
	}
}

func TestLoadAllKeepsOrder(t *testing.T) {
	reg := testRegistry(t, "")

	resolved, err := ResolveAll([]string{"25", "Mr. Mime", "pikachu"}, reg, testRng())
	if err != nil {
		t.Fatalf("%s", err)
	}

	pokemon, err := LoadAll(resolved, reg, Attributes{}, testStore(t))
	if err != nil {
		t.Fatalf("%s", err)
	}

	names := Names(pokemon)
	expected := []string{"Pikachu", "Mr. Mime", "Pikachu"}
	for i := range expected {
		if names[i] != expected[i] {
			t.Fatalf("expected %v, got %v", expected, names)
		}
	}

	combined := sprites.Combine(Sprites(pokemon))
	if combined.Bounds() != image.Rect(0, 0, 10+6+10+2, 12) {
		t.Fatalf("unexpected combined bounds %v", combined.Bounds())
	}
}

func TestLoadAllFailsAtomically(t *testing.T) {
	reg := testRegistry(t, "")
	resolved := []Resolved{{Name: "pikachu"}, {Name: "bulbasaur"}, {Name: "missingno"}}

	pokemon, err := LoadAll(resolved, reg, Attributes{}, testStore(t))
	if pokemon != nil {
		t.Fatalf("no pokemon should be returned on failure")
	}

	// the first failure in input order is reported
	var notFound *AssetNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected AssetNotFoundError, got %v", err)
	}
}
