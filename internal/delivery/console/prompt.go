package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/aliskhannn/quiz-runner/internal/domain/entities"
)

// ErrInputClosed reports that input ended before a valid value was entered.
var ErrInputClosed = errors.New("input closed")

var (
	errNotANumber = errors.New("not a number")
	errOutOfRange = errors.New("out of range")
)

// readLine reads a line from the reader, trimming line endings.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil {
		if err == io.EOF {
			return strings.TrimRight(line, "\r\n"), io.EOF
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// acceptFunc validates one line of input; a non-nil error rejects it.
type acceptFunc func(line string) error

// rejectFunc is told about every rejected input.
type rejectFunc func(state entities.PromptState, err error)

// ask prints label and reads lines until accept returns nil. There is no retry
// limit; the loop ends on valid input, closed input or a cancelled context.
func (h *Handler) ask(ctx context.Context, label string, accept acceptFunc, reject rejectFunc) (string, error) {
	var state entities.PromptState
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		fmt.Fprint(h.out, label)
		line, err := readLine(h.in)
		if err != nil && err != io.EOF {
			return "", fmt.Errorf("read input: %w", err)
		}
		eof := err == io.EOF
		if eof && line == "" {
			return "", ErrInputClosed
		}
		state.Next()

		rejected := accept(line)
		if rejected == nil {
			return line, nil
		}

		h.logger.Debug("input rejected",
			zap.String("prompt", strings.TrimSpace(label)),
			zap.Int("attempt", state.Attempts),
			zap.Bool("retry", state.Retrying()),
			zap.Error(rejected),
		)
		if eof {
			return "", ErrInputClosed
		}
		if reject != nil {
			reject(state, rejected)
		}
	}
}

// parseChoice parses a 1-based option number of q.
func parseChoice(line string, q entities.Question) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, errNotANumber
	}
	if !q.HasOption(n) {
		return 0, errOutOfRange
	}
	return n, nil
}
