package engine

import (
	"fmt"
	"time"
)

var cannedResponses = [...]string{
	"I have analyzed the data and found significant trends.",
	"Based on your request, I have executed the necessary tools.",
	"Here is the summary you requested based on the provided context.",
	"The calculation is complete. The result is within expected parameters.",
}

// Simulator stands in for a model backend. The response is a pure
// function of prompt length and model name, which keeps executions
// reproducible in tests.
type Simulator struct {
	Delay time.Duration
}

func NewSimulator() *Simulator {
	return &Simulator{Delay: 500 * time.Millisecond}
}

// Complete sleeps for the configured delay (simulated network
// latency; no locks are held) and returns the canned response picked
// by len(prompt) mod 4.
func (s *Simulator) Complete(prompt, model string) string {
	if s.Delay > 0 {
		time.Sleep(s.Delay)
	}
	return fmt.Sprintf("[%s Response]: %s", model, cannedResponses[len(prompt)%len(cannedResponses)])
}
