// ABOUTME: YAML adapter tests: scalar form, case folding, and rejection of bad nodes.
// ABOUTME: Uses yaml.v3 document round-trips rather than raw node plumbing.
package ulid_test

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/2389-research/ulid"
)

func TestYAML_RoundTrip(t *testing.T) {
	type doc struct {
		ID    ulid.ULID `yaml:"id"`
		Label string    `yaml:"label"`
	}
	in := doc{ID: ulid.MustParse("01BX5ZZKBKACTAV9WEVGEMMVRZ"), Label: "widget"}

	data, err := yaml.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), "id: 01BX5ZZKBKACTAV9WEVGEMMVRZ") {
		t.Errorf("unexpected yaml:\n%s", data)
	}

	var out doc
	if err := yaml.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out != in {
		t.Errorf("round-trip: got %+v, want %+v", out, in)
	}
}

func TestYAML_AcceptsLowercaseScalar(t *testing.T) {
	var out struct {
		ID ulid.ULID `yaml:"id"`
	}
	if err := yaml.Unmarshal([]byte("id: 01bx5zzkbkactav9wevgemmvrz\n"), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if want := ulid.MustParse("01BX5ZZKBKACTAV9WEVGEMMVRZ"); out.ID != want {
		t.Errorf("got %s, want %s", out.ID, want)
	}
}

func TestYAML_RejectsBadNodes(t *testing.T) {
	for _, doc := range []string{
		"id: nope\n",
		"id: [1, 2]\n",
	} {
		var out struct {
			ID ulid.ULID `yaml:"id"`
		}
		if err := yaml.Unmarshal([]byte(doc), &out); err == nil {
			t.Errorf("unmarshal %q succeeded, want error", doc)
		}
	}
}
