/*
Package domain contains the core domain models of the inquire engine.

It defines the question definitions, the ordered question set, the answer map
and the errors a run can end with. This package is kept pure and free of I/O,
so the runtime and every adapter (terminal, file, DSL) can share it.

# Key Entities

  - Question: A full question definition (kind, message, default, validation, dependencies).
  - Bare: A question given only as a default value (no prompt text, no validation).
  - QuestionSet: The ordered collection of definitions; insertion order is asking order.
  - Answers: The map of field name to typed value produced by a run.
  - Condition: A predicate over a previously collected answer gating a question.
*/
package domain
