/*
Package dsl provides a fluent builder for question sets.

Fields are asked in the order they are first added. A field is either a
full question, configured through the returned QuestionBuilder, or a bare
default that is asked without a message and accepts any reply.

Example usage:

	b := dsl.New()

	b.Bare("region", "eu-west-1")

	b.Add("env").
		Message("Target environment").
		Options("staging", "production").
		Default("staging")

	b.Add("approve").
		Confirm().
		Message("Deploy to production?").
		DependsOn("env", domain.Equals("production"))

	b.Add("token").
		Password().
		Regex(`^[a-z0-9]{32}$`).
		Error("Tokens are 32 lowercase characters.")

	set, err := b.Build()
*/
package dsl
