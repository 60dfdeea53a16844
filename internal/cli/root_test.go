package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

// executeCommand runs a command with the given args and captures output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	chdir(t, t.TempDir())
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("CATALOG_SOURCE", "embedded")

	root := NewRootCmd()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()

	flagFormat, flagStorage = "text", ""
	return buf.String(), err
}

func TestRootHelp(t *testing.T) {
	if _, err := executeCommand(t, "--help"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGlobalFlags(t *testing.T) {
	root := NewRootCmd()
	formatFlag := root.PersistentFlags().Lookup("format")
	if formatFlag == nil || formatFlag.DefValue != "text" {
		t.Fatalf("expected --format flag with default text")
	}
	if root.PersistentFlags().Lookup("storage") == nil {
		t.Fatal("expected --storage flag to exist")
	}
}

func TestDestinations_FilterByCategory(t *testing.T) {
	out, err := executeCommand(t, "destinations", "--category", "wildlife")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Hwange National Park") || !strings.Contains(out, "Mana Pools") {
		t.Fatalf("expected wildlife destinations, got:\n%s", out)
	}
	if strings.Contains(out, "Victoria Falls") {
		t.Fatalf("unexpected non-wildlife destination in:\n%s", out)
	}
	if strings.Index(out, "Hwange") > strings.Index(out, "Mana Pools") {
		t.Fatalf("expected catalog order, got:\n%s", out)
	}
}

func TestDestinations_SearchJSON(t *testing.T) {
	out, err := executeCommand(t, "destinations", "--search", "FALLS", "--format", "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got []map[string]any
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid JSON output %q: %v", out, err)
	}
	if len(got) != 2 || got[0]["name"] != "Victoria Falls" || got[1]["name"] != "Eastern Highlands" {
		t.Fatalf("expected Victoria Falls and Eastern Highlands, got %v", got)
	}
}

func TestDestinations_NoMatches(t *testing.T) {
	out, err := executeCommand(t, "destinations", "--search", "antarctica")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "No destinations found.") {
		t.Fatalf("expected empty message, got %q", out)
	}
}

func TestDestinations_Rejections(t *testing.T) {
	if _, err := executeCommand(t, "destinations", "--category", "Beaches"); err == nil {
		t.Fatal("expected error for unknown category")
	}
	if _, err := executeCommand(t, "destinations", "--format", "yaml"); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestReviews_EmptyAndInvalid(t *testing.T) {
	out, err := executeCommand(t, "reviews", "2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Great Zimbabwe") || !strings.Contains(out, "No reviews yet.") {
		t.Fatalf("unexpected output %q", out)
	}

	if _, err := executeCommand(t, "reviews", "abc"); err == nil {
		t.Fatal("expected error for non-numeric id")
	}
	if _, err := executeCommand(t, "reviews", "99"); err == nil {
		t.Fatal("expected error for unknown destination")
	}
}

func TestFavorites_Empty(t *testing.T) {
	out, err := executeCommand(t, "favorites")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "No favorites yet.") {
		t.Fatalf("unexpected output %q", out)
	}
}
