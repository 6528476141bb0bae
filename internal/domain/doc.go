// Package domain contains the core entities of a question-and-answer board:
// boards, users, questions and answers, plus the voting and acceptance rules
// that move reputation between them. It is independent of any storage or
// delivery mechanism.
package domain
