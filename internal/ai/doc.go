// Package ai provides the chat-completion study assistant: word
// explanations, memory tips, example sentences, quizzes and free-form
// chat around the currently displayed vocabulary entry. Requests go to
// a DeepSeek (OpenAI-compatible) endpoint or to Gemini, selected by
// configuration, and are guarded by a circuit breaker.
package ai
