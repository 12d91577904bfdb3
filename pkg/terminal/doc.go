/*
Package terminal implements the line-oriented Reader the inquire engine talks to.

A single rune pump goroutine reads the input source for the whole process.
Readers built on top of it are short-lived views: the Registry hands out at
most one live view at a time, so two question sequences never fight over the
same terminal, and a view built after a Release never races an older one.

# Key Components

  - TextReader: ReadLine for ordinary replies, ReadSecret for masked input.
  - Registry: Process-wide Acquire/Release lifecycle (ports.ReaderProvider).
  - SignalManager: Turns SIGINT/SIGTERM into context cancellation.

# Usage

	reg := terminal.NewRegistry(os.Stdin, os.Stderr)
	eng := inquire.New(inquire.WithProvider(reg))
	answers, err := eng.Get(ctx, set)
*/
package terminal
