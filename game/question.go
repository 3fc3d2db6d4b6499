package game

import (
	"fmt"
	"math/rand/v2"
)

// QuestionGenerator produces randomized arithmetic question sets. Operand
// ranges are chosen so subtraction never goes negative and division always
// has an exact integer result.
type QuestionGenerator struct {
	rng *rand.Rand
}

func NewQuestionGenerator() *QuestionGenerator {
	return &QuestionGenerator{
		rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// Generate returns count questions, each with a uniformly chosen operator.
func (g *QuestionGenerator) Generate(count int) []Question {
	questions := make([]Question, 0, count)
	for i := 0; i < count; i++ {
		var a, b, answer int
		var text string
		switch g.rng.IntN(4) {
		case 0: // addition
			a = g.rng.IntN(20) + 1
			b = g.rng.IntN(20) + 1
			answer = a + b
			text = fmt.Sprintf("%d + %d = ?", a, b)
		case 1: // subtraction
			a = g.rng.IntN(30) + 10
			b = g.rng.IntN(a) + 1
			answer = a - b
			text = fmt.Sprintf("%d - %d = ?", a, b)
		case 2: // multiplication
			a = g.rng.IntN(10) + 2
			b = g.rng.IntN(10) + 2
			answer = a * b
			text = fmt.Sprintf("%d × %d = ?", a, b)
		case 3: // division, dividend derived so it divides exactly
			answer = g.rng.IntN(10) + 2
			b = g.rng.IntN(10) + 2
			a = b * answer
			text = fmt.Sprintf("%d ÷ %d = ?", a, b)
		}
		questions = append(questions, Question{Text: text, Answer: answer})
	}
	return questions
}
