// Package prompt builds the fixed two-message conversation sent to a
// backend. Everything here is pure: no I/O, no failure modes.
package prompt

import "github.com/averille/explain/internal/llm"

// QuestionPreamble is prepended to every question. The question text
// itself is appended verbatim, untouched.
const QuestionPreamble = "Could you provide a detailed explanation for the following question:"

// UserPrompt wraps a free-text question in the fixed instruction.
func UserPrompt(question string) string {
	return QuestionPreamble + " " + question
}

// Conversation returns the ordered message pair for one exchange: the
// persona comes from configuration, never from the caller of the backend.
func Conversation(persona, question string) []llm.Message {
	return []llm.Message{
		{Role: llm.RoleSystem, Content: persona},
		{Role: llm.RoleUser, Content: UserPrompt(question)},
	}
}
