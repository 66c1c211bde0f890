package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeJokeKind(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected JokeKind
	}{
		{name: "dad", input: "dad", expected: KindDad},
		{name: "funny", input: "funny", expected: KindFunny},
		{name: "nerdy", input: "nerdy", expected: KindNerdy},
		{name: "hr", input: "hr", expected: KindHR},
		{name: "riddle", input: "riddle", expected: KindRiddle},
		{name: "uppercase is folded", input: "RIDDLE", expected: KindRiddle},
		{name: "mixed case", input: "Dad", expected: KindDad},
		{name: "empty defaults to dad", input: "", expected: KindDad},
		{name: "unknown defaults to dad", input: "knock-knock", expected: KindDad},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeJokeKind(tt.input))
		})
	}
}
