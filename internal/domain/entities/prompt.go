package entities

// PromptState tracks an interactive prompt that repeats until it gets valid input.
type PromptState struct {
	Attempts int // number of inputs read so far, valid or not
}

// Next records one more attempt.
func (s *PromptState) Next() {
	s.Attempts++
}

// Retrying reports whether an earlier input was already rejected.
func (s PromptState) Retrying() bool {
	return s.Attempts > 1
}
