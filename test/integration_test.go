// ABOUTME: Integration tests for the liftlog CLI.
// ABOUTME: Exercises the full plan/complete/status/cycle workflow.
package test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestFullWorkflow(t *testing.T) {
	// Build the binary
	projectRoot, _ := filepath.Abs("..")
	binary := filepath.Join(projectRoot, "liftlog")

	buildCmd := exec.Command("go", "build", "-o", binary, "./cmd/liftlog")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build: %v\n%s", err, output)
	}
	defer os.Remove(binary)

	dataDir := t.TempDir()

	run := func(args ...string) (string, error) {
		fullArgs := append([]string{"--data-dir", dataDir}, args...)
		cmd := exec.Command(binary, fullArgs...)
		output, err := cmd.CombinedOutput()
		return string(output), err
	}

	// Seed starter plans
	output, err := run("plan", "seed")
	if err != nil {
		t.Fatalf("Failed to seed: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Installed") {
		t.Errorf("Expected 'Installed' in seed output, got: %s", output)
	}

	// Plans are listed
	output, err = run("plan", "list")
	if err != nil {
		t.Fatalf("Failed to list plans: %v\n%s", err, output)
	}
	if !strings.Contains(output, "2_days_week") {
		t.Errorf("Expected '2_days_week' in plan list, got: %s", output)
	}

	// Fresh plan starts on cycle 1
	output, err = run("cycle", "2_days_week")
	if err != nil {
		t.Fatalf("Failed to show cycle: %v\n%s", err, output)
	}
	if !strings.Contains(output, "cycle 1") {
		t.Errorf("Expected 'cycle 1', got: %s", output)
	}

	// Complete day one with an override
	output, err = run("complete", "2_days_week", "Day 1", "-e", "Squat=3x8@80")
	if err != nil {
		t.Fatalf("Failed to complete: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Recorded Day 1") {
		t.Errorf("Expected 'Recorded Day 1' in output, got: %s", output)
	}

	// Status shows the day as done
	output, err = run("status", "2_days_week")
	if err != nil {
		t.Fatalf("Failed to show status: %v\n%s", err, output)
	}
	if !strings.Contains(output, "✓ Day 1") {
		t.Errorf("Expected Day 1 marked done, got: %s", output)
	}
	if !strings.Contains(output, "○ Day 2") {
		t.Errorf("Expected Day 2 pending, got: %s", output)
	}

	// Completing the last day rolls the cycle over
	output, err = run("complete", "2_days_week", "Day 2")
	if err != nil {
		t.Fatalf("Failed to complete Day 2: %v\n%s", err, output)
	}
	if !strings.Contains(output, "cycle 1") {
		t.Errorf("Expected record on cycle 1, got: %s", output)
	}
	if !strings.Contains(output, "Now on cycle 2") {
		t.Errorf("Expected rollover message, got: %s", output)
	}

	// History reflects the recorded override
	output, err = run("history", "2_days_week", "Squat")
	if err != nil {
		t.Fatalf("Failed to show history: %v\n%s", err, output)
	}
	if !strings.Contains(output, "3x8 @ 80") {
		t.Errorf("Expected '3x8 @ 80' in history, got: %s", output)
	}

	// Log shows completions across plans
	output, err = run("log")
	if err != nil {
		t.Fatalf("Failed to show log: %v\n%s", err, output)
	}
	if !strings.Contains(output, "2_days_week") {
		t.Errorf("Expected '2_days_week' in log, got: %s", output)
	}

	// Export produces a JSON document
	output, err = run("export", "json")
	if err != nil {
		t.Fatalf("Failed to export: %v\n%s", err, output)
	}
	if !strings.Contains(output, `"tool": "liftlog"`) {
		t.Errorf("Expected tool marker in export, got: %s", output)
	}

	// Forcing a new cycle is monotonic past existing history
	output, err = run("cycle", "new", "2_days_week")
	if err != nil {
		t.Fatalf("Failed to start cycle: %v\n%s", err, output)
	}
	if !strings.Contains(output, "cycle 3") {
		t.Errorf("Expected 'cycle 3' after forcing, got: %s", output)
	}
}
