package prompt

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/prompter_mock.go -package=mock

// Prompter asks the operator questions during a configuration run.
type Prompter interface {
	// Ask shows question and returns the operator's answer, or fallback when
	// the answer is empty.
	Ask(ctx context.Context, question, fallback string) (string, error)
	// Confirm shows a yes/no question and reports whether the operator
	// answered yes.
	Confirm(ctx context.Context, question string) (bool, error)
}
