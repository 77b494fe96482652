package main

import "testing"

func TestCapsCommand(t *testing.T) {
	quiet, verbose, jsonOut = false, false, false

	output, err := captureOutput(t, runCaps)
	if err != nil {
		t.Fatalf("runCaps() error = %v", err)
	}
	assertContains(t, output, []string{"thread", "rights=send"})
}

func TestCapsCommandJSON(t *testing.T) {
	quiet, verbose = false, false
	jsonOut = true
	defer func() { jsonOut = false }()

	output, err := captureOutput(t, runCaps)
	if err != nil {
		t.Fatalf("runCaps() error = %v", err)
	}
	assertJSON(t, output)
}
