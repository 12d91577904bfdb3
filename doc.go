/*
Package inquire asks an ordered set of questions on a text terminal and
returns the validated answers.

Each question is typed in as a line of text, coerced to a boolean, a number
or a string, checked against the question's constraints and asked again
until it is valid. A question can be skipped based on earlier answers, take
a default (static or computed from earlier answers), or read a secret with
masked echo.

# Usage

	b := dsl.New()
	b.Add("name").Message("What is your name?")
	b.Add("age").Type(domain.TypeNumber)
	b.Add("color").Options("red", "blue").Default("blue")

	set, err := b.Build()
	if err != nil {
		log.Fatal(err)
	}

	answers, err := inquire.Get(ctx, set)
	if errors.Is(err, domain.ErrCancelled) {
		log.Printf("stopped early: %v", err)
		return
	}

	ok, err := inquire.Confirm(ctx, "Continue?")

The package-level functions share one reader over os.Stdin for the whole
process. Use New with WithProvider to read from anything else.

# Cancellation

Closing the input (end of file, Ctrl+C during a secret, cancelling ctx)
before every question is answered ends the run with a *domain.CancelledError
holding the partial answers.
*/
package inquire
