// Command kernelctl inspects and manipulates hive images and runs small
// in-memory demonstrations of the kernel/scheduler/IPC substrate. Grounded
// on the teacher's cmd/hivectl: a cobra root command plus one file per
// subcommand, persistent --verbose/--quiet/--json flags, and open-file-
// then-defer-close per command.
package main

func main() {
	execute()
}
