package tabular_test

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/matzehuels/orbital/pkg/cache"
	"github.com/matzehuels/orbital/pkg/tabular"
)

func TestPetsImageDigests(t *testing.T) {
	dir := filepath.Join("..", "..", "examples", "pets")
	gen, err := tabular.Open(filepath.Join(dir, "table.jsonc"), filepath.Join(dir, "templates.yaml"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}

	f, err := os.Open(filepath.Join("testdata", "pets_digests.txt"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	var checked int
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		index, err := strconv.ParseUint(fields[0], 10, 64)
		if err != nil {
			t.Fatal(err)
		}
		img, err := gen.Image(index)
		if err != nil {
			t.Fatalf("Image(%d) error: %v", index, err)
		}
		if got := cache.Hash(img); got != fields[1] {
			t.Errorf("blake3(Image(%d)) = %s, want %s", index, got, fields[1])
		}
		checked++
	}
	if err := sc.Err(); err != nil {
		t.Fatal(err)
	}
	if uint64(checked) != gen.Len() {
		t.Errorf("checked %d images, table has %d", checked, gen.Len())
	}
}
