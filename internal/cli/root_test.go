package cli

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/wraxau/AC-laba3/internal/config"
)

func TestRootCommand(t *testing.T) {
	cmd := newRootCmd()

	if cmd == nil {
		t.Fatal("expected root command, got nil")
	}

	if cmd.Use != "darkroom" {
		t.Errorf("expected use 'darkroom', got %q", cmd.Use)
	}

	// Verify subcommands are registered
	expectedCommands := []string{
		"run",
		"watch",
		"config",
		"version",
		"completion",
	}

	for _, cmdName := range expectedCommands {
		found := false
		for _, cmd := range cmd.Commands() {
			if cmd.Name() == cmdName {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected subcommand %q to be registered", cmdName)
		}
	}
}

func TestRootCommandHelp(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--help"})

	output := &bytes.Buffer{}
	cmd.SetOut(output)
	cmd.SetErr(output)

	err := cmd.Execute()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	help := output.String()

	expectedStrings := []string{
		"Darkroom",
		"image",
		"run",
		"watch",
		"config",
		"version",
		"completion",
	}

	for _, want := range expectedStrings {
		if !strings.Contains(help, want) {
			t.Errorf("expected help to contain %q", want)
		}
	}
}

func TestRootCommandPersistentFlags(t *testing.T) {
	cmd := newRootCmd()

	expectedFlags := []string{
		"config",
		"output",
		"verbose",
		"no-color",
		"workers",
	}

	for _, flagName := range expectedFlags {
		flag := cmd.PersistentFlags().Lookup(flagName)
		if flag == nil {
			t.Errorf("expected persistent flag %q to be defined", flagName)
		}
	}
}

func TestRootCommandFlagDefaults(t *testing.T) {
	cmd := newRootCmd()

	tests := []struct {
		name     string
		flag     string
		expected string
	}{
		{
			name:     "config default",
			flag:     "config",
			expected: "",
		},
		{
			name:     "output default",
			flag:     "output",
			expected: "",
		},
		{
			name:     "verbose default",
			flag:     "verbose",
			expected: "false",
		},
		{
			name:     "no-color default",
			flag:     "no-color",
			expected: "false",
		},
		{
			name:     "workers default",
			flag:     "workers",
			expected: strconv.Itoa(config.DefaultWorkers),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag := cmd.PersistentFlags().Lookup(tt.flag)
			if flag == nil {
				t.Fatalf("flag %q not found", tt.flag)
			}

			if flag.DefValue != tt.expected {
				t.Errorf("expected default value %q, got %q", tt.expected, flag.DefValue)
			}
		})
	}
}

func TestRootCommandSilenceFlags(t *testing.T) {
	cmd := newRootCmd()

	if !cmd.SilenceUsage {
		t.Error("expected SilenceUsage to be true")
	}

	if !cmd.SilenceErrors {
		t.Error("expected SilenceErrors to be true")
	}
}

func TestRootCommandShortFlags(t *testing.T) {
	cmd := newRootCmd()

	// Verify short flags are set correctly
	shortFlags := map[string]string{
		"o": "output",
		"v": "verbose",
		"w": "workers",
	}

	for short, long := range shortFlags {
		shortFlag := cmd.PersistentFlags().ShorthandLookup(short)
		if shortFlag == nil {
			t.Errorf("expected short flag -%s for %s", short, long)
			continue
		}

		if shortFlag.Name != long {
			t.Errorf("expected short flag -%s to map to %s, got %s", short, long, shortFlag.Name)
		}
	}
}
