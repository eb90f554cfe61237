package configs

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APPLICATION_NAME", "")
	t.Setenv("PROPERTIES_FILE_PATH", "")
	Load()

	if Env.ApplicationName != "taskboard" {
		t.Fatalf("ApplicationName = %q", Env.ApplicationName)
	}
	if Env.PropertiesFilePath != "configs/application.yml" {
		t.Fatalf("PropertiesFilePath = %q", Env.PropertiesFilePath)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APPLICATION_NAME", "board-dev")
	t.Setenv("PROPERTIES_FILE_PATH", "/etc/taskboard/application.yml")
	t.Setenv("MESSAGES_FILE_PATH", "/etc/taskboard/messages.yml")
	Load()

	if Env.ApplicationName != "board-dev" {
		t.Fatalf("ApplicationName = %q", Env.ApplicationName)
	}
	if Env.PropertiesFilePath != "/etc/taskboard/application.yml" {
		t.Fatalf("PropertiesFilePath = %q", Env.PropertiesFilePath)
	}
	if Env.MessagesFilePath != "/etc/taskboard/messages.yml" {
		t.Fatalf("MessagesFilePath = %q", Env.MessagesFilePath)
	}
}
