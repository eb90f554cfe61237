package msg

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetMessageEmbeddedCatalog(t *testing.T) {
	if got := GetMessage("form.error.title"); got != "Title is required" {
		t.Fatalf("form.error.title = %q", got)
	}
	if got := GetMessage("card.due", "2024-05-01", "Ana"); got != "Due Date: 2024-05-01 - Assigned to Ana" {
		t.Fatalf("card.due = %q", got)
	}
}

func TestGetMessageMissingKey(t *testing.T) {
	if got := GetMessage("does.not.exist"); got != "Message not found: does.not.exist" {
		t.Fatalf("missing key = %q", got)
	}
}

func TestGetMessageFormatsArguments(t *testing.T) {
	messages["test.args"] = "{0}|{1}|{2}|{3}"
	t.Cleanup(func() { delete(messages, "test.args") })

	got := GetMessage("test.args", 3, true, 1.5, map[string]int{"a": 1})
	if want := `3|true|1.5|{"a":1}`; got != want {
		t.Fatalf("GetMessage = %q, want %q", got, want)
	}
}

func TestInitOverridesEmbeddedMessages(t *testing.T) {
	original := messages["form.error.title"]
	t.Cleanup(func() { messages["form.error.title"] = original })

	path := filepath.Join(t.TempDir(), "messages.yml")
	content := "form:\n  error:\n    title: \"Título obrigatório\"\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write messages: %v", err)
	}
	if err := Init(path); err != nil {
		t.Fatalf("Init: %v", err)
	}

	if got := GetMessage("form.error.title"); got != "Título obrigatório" {
		t.Fatalf("form.error.title = %q", got)
	}
	if got := GetMessage("form.error.assignee"); got != "Assignee is required" {
		t.Fatalf("untouched key = %q", got)
	}
}
