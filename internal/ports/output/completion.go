package output

import "context"

// CompletionClient calls a chat-completion style text service with a
// system and a user message and returns the raw completion text.
type CompletionClient interface {
	Complete(ctx context.Context, system, user string) (string, error)
}
