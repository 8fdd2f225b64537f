package main

import "testing"

func TestVersionDefaults(t *testing.T) {
	if Version == "" {
		t.Error("Version must not be empty")
	}
	if GitCommit == "" || BuildDate == "" {
		t.Error("Build metadata defaults must not be empty")
	}
}

func TestCommandsRegistered(t *testing.T) {
	want := map[string]bool{
		"models":   false,
		"estimate": false,
		"report":   false,
		"version":  false,
	}

	for _, cmd := range rootCmd.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}

	for name, found := range want {
		if !found {
			t.Errorf("Expected %s command to be registered", name)
		}
	}
}
