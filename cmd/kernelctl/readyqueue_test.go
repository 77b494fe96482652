package main

import "testing"

func TestReadyQueueCommand(t *testing.T) {
	quiet, verbose, jsonOut = false, false, false

	output, err := captureOutput(t, runReadyQueue)
	if err != nil {
		t.Fatalf("runReadyQueue() error = %v", err)
	}
	assertContains(t, output, []string{"ready["})
}

func TestReadyQueueCommandJSON(t *testing.T) {
	quiet, verbose = false, false
	jsonOut = true
	defer func() { jsonOut = false }()

	output, err := captureOutput(t, runReadyQueue)
	if err != nil {
		t.Fatalf("runReadyQueue() error = %v", err)
	}
	assertJSON(t, output)
}
