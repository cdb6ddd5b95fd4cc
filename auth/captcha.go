package auth

import (
	"fmt"
	rndm "math/rand"
	"sync"

	"github.com/google/uuid"
)

// Challenge is the human-verification question shown on the registration
// form: the sum of two random integers between 1 and 10. A fresh one is
// issued every time the form is shown.
type Challenge struct {
	ID       string `json:"id"`
	Question string `json:"question"`
}

// Challenges holds pending verification answers in process memory. Entries
// are single use: checking one removes it whether or not it matched.
type Challenges struct {
	mu      sync.Mutex
	answers map[string]string
}

func NewChallenges() *Challenges {
	return &Challenges{answers: make(map[string]string)}
}

// New issues a fresh challenge, replacing nothing — old unanswered
// challenges simply go stale in the map until checked.
func (c *Challenges) New() Challenge {
	a := rndm.Intn(10) + 1
	b := rndm.Intn(10) + 1

	ch := Challenge{
		ID:       uuid.NewString(),
		Question: fmt.Sprintf("%d + %d", a, b),
	}

	c.mu.Lock()
	c.answers[ch.ID] = fmt.Sprintf("%d", a+b)
	c.mu.Unlock()

	return ch
}

// Check consumes the challenge and reports whether answer matches.
func (c *Challenges) Check(id, answer string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	want, ok := c.answers[id]
	if !ok {
		return false
	}
	delete(c.answers, id)
	return answer == want
}
