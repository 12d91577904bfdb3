/*
Package ports defines the driven ports (interfaces) of the inquire engine.

These interfaces decouple the question sequencer from the terminal, so the
core can be exercised in tests with scripted readers and embedded in hosts
that own their own I/O.

# Key Interfaces

  - Reader: Line-oriented input/output channel with a secret-capture mode.
  - ReaderProvider: Acquire/Release lifecycle for the process-wide Reader.
*/
package ports
