package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testCatalogYAML = `cards:
  - id: strike
    name: Strike
    cost: 1
    tags: [attack]
    effects:
      - kind: damage
        amount: 4
  - id: mend
    name: Mend
    cost: 1
    effects:
      - kind: heal
        amount: 3
`

func writeTestCatalog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cards.yaml")
	if err := os.WriteFile(path, []byte(testCatalogYAML), 0644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	return path
}

func TestCatalogValidate_ValidFile(t *testing.T) {
	cmd := CatalogCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"validate", writeTestCatalog(t)})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if !strings.Contains(out.String(), "2 cards") {
		t.Errorf("expected card count in output, got %q", out.String())
	}
}

func TestCatalogValidate_BrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("cards: []\n"), 0644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	cmd := CatalogCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"validate", path})

	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected an error for an empty catalog")
	}
}

func TestCatalogList_PrintsCards(t *testing.T) {
	cmd := CatalogCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"list", writeTestCatalog(t)})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	for _, want := range []string{"strike", "Strike", "mend", "deal 4 damage to opponent"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}
