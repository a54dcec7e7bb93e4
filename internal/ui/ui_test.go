package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/muurk/msc/internal/config"
)

func TestClampWidth(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{10, MinTerminalWidth},
		{80, 80},
		{500, MaxContentWidth},
	}
	for _, tt := range tests {
		if got := ClampWidth(tt.in); got != tt.want {
			t.Errorf("ClampWidth(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		v    config.Value
		want string
	}{
		{config.Bool(true), "on"},
		{config.Bool(false), "off"},
		{config.Integer(25565), "25565"},
		{config.NoInteger(), "none"},
		{config.Text("survival"), "survival"},
		{config.NoText(), "none"},
	}
	for _, tt := range tests {
		if got := FormatValue(tt.v); got != tt.want {
			t.Errorf("FormatValue(%#v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestQuoteArgs(t *testing.T) {
	got := QuoteArgs([]string{"java", "-jar", "server.jar", "--world", "my world", ""})
	want := `java -jar server.jar --world "my world" ""`
	if got != want {
		t.Errorf("QuoteArgs() = %s, want %s", got, want)
	}
}

func TestHeaderRender(t *testing.T) {
	out := NewHeader("Server configuration", "msc show", []Param{
		{Key: "File", Value: "/srv/mc/msc-configuration.yaml"},
		{Key: "Revision", Value: "3"},
	}).SetWidth(80).Render()

	for _, want := range []string{"SERVER CONFIGURATION", "msc show", "File:", "/srv/mc/msc-configuration.yaml"} {
		if !strings.Contains(out, want) {
			t.Errorf("header missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "File:") > strings.Index(out, "Revision:") {
		t.Error("params rendered out of order")
	}
}

func TestResultRender(t *testing.T) {
	ok := NewSuccessResult("Configuration saved", nil).AddDetail("File", "a.yaml").SetWidth(80).Render()
	if !strings.Contains(ok, "SUCCESS") || !strings.Contains(ok, "a.yaml") {
		t.Errorf("unexpected success box:\n%s", ok)
	}

	failed := NewFailureResult("Server failed", errors.New("exit code 1"), []string{"Check the server log"}).SetWidth(80).Render()
	for _, want := range []string{"FAILED", "exit code 1", "Troubleshooting:", "Check the server log"} {
		if !strings.Contains(failed, want) {
			t.Errorf("failure box missing %q:\n%s", want, failed)
		}
	}

	warn := NewWarningResult("No servers found", nil).SetWidth(80).Render()
	if !strings.Contains(warn, "WARNING") {
		t.Errorf("unexpected warning box:\n%s", warn)
	}
}

func TestPrintConfig(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Default()
	cfg.Set(config.PropPort, config.Integer(25565))

	NewPrinter(&buf).SetWidth(80).PrintConfig(cfg)

	out := buf.String()
	for _, want := range []string{"Bonus chest", "on", "Port", "25565", "World name", "none"} {
		if !strings.Contains(out, want) {
			t.Errorf("config table missing %q:\n%s", want, out)
		}
	}
	if got := strings.Count(out, "\n"); got != 11 {
		t.Errorf("config table has %d lines, want 11", got)
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"yes\n", true},
		{"  yes  \n", true},
		{"no\n", false},
		{"YES\n", false},
		{"", false},
		{"yes", true},
	}

	for _, tt := range tests {
		var out bytes.Buffer
		p := NewPrinter(&out).SetWidth(80)
		if got := p.ConfirmOfflineMode(strings.NewReader(tt.input)); got != tt.want {
			t.Errorf("ConfirmOfflineMode(%q) = %v, want %v", tt.input, got, tt.want)
		}
		if !strings.Contains(out.String(), "SINGLE-PLAYER MODE") {
			t.Errorf("warning box not printed for %q", tt.input)
		}
	}
}
