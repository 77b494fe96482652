package main

import "testing"

func TestThreadsCommand(t *testing.T) {
	quiet, verbose, jsonOut = false, false, false

	output, err := captureOutput(t, runThreads)
	if err != nil {
		t.Fatalf("runThreads() error = %v", err)
	}
	assertContains(t, output, []string{"state=", "priority="})
}

func TestThreadsCommandJSON(t *testing.T) {
	quiet, verbose = false, false
	jsonOut = true
	defer func() { jsonOut = false }()

	output, err := captureOutput(t, runThreads)
	if err != nil {
		t.Fatalf("runThreads() error = %v", err)
	}
	assertJSON(t, output)
}
