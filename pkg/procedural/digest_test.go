package procedural_test

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/matzehuels/orbital/pkg/cache"
	"github.com/matzehuels/orbital/pkg/procedural"
)

type digest struct {
	index uint64
	hash  string
}

func readDigests(t *testing.T, path string) []digest {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	var out []digest
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			t.Fatalf("%s: bad line %q", path, line)
		}
		index, err := strconv.ParseUint(fields[0], 10, 64)
		if err != nil {
			t.Fatalf("%s: %v", path, err)
		}
		out = append(out, digest{index: index, hash: fields[1]})
	}
	if err := sc.Err(); err != nil {
		t.Fatal(err)
	}
	return out
}

func TestRenderDigests(t *testing.T) {
	digests := readDigests(t, filepath.Join("testdata", "digests.txt"))
	if len(digests) == 0 {
		t.Fatal("no digests")
	}
	for _, d := range digests {
		t.Run(strconv.FormatUint(d.index, 10), func(t *testing.T) {
			if got := cache.Hash(procedural.Render(d.index)); got != d.hash {
				t.Errorf("blake3(Render(%d)) = %s, want %s", d.index, got, d.hash)
			}
		})
	}
}
