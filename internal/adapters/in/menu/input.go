package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"fleet/internal/core/application/usecases/queries"
	"fleet/internal/core/domain/model/kernel"
)

// sessionError ends the session: the input stream failed or the fleet could
// not be listed.
type sessionError struct {
	err error
}

func (e *sessionError) Error() string {
	return e.err.Error()
}

func (e *sessionError) Unwrap() error {
	return e.err
}

// inputError is an answer the menu could not use. The action is abandoned and
// the message shown as is.
type inputError struct {
	message string
}

func (e *inputError) Error() string {
	return e.message
}

func (m *Menu) readLine(prompt string) (string, error) {
	m.printf("%s", prompt)

	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", &sessionError{err: fmt.Errorf("failed to read input: %w", err)}
		}
		return "", io.EOF
	}

	return strings.TrimSpace(m.in.Text()), nil
}

func (m *Menu) readInt(prompt string) (int, error) {
	line, err := m.readLine(prompt)
	if err != nil {
		return 0, err
	}

	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, &inputError{message: fmt.Sprintf("%q is not a whole number.", line)}
	}
	return n, nil
}

func (m *Menu) readFloat(prompt string) (float64, error) {
	line, err := m.readLine(prompt)
	if err != nil {
		return 0, err
	}

	f, err := strconv.ParseFloat(strings.ReplaceAll(line, ",", "."), 64)
	if err != nil {
		return 0, &inputError{message: fmt.Sprintf("%q is not a number.", line)}
	}
	return f, nil
}

func (m *Menu) readBool(prompt string) (bool, error) {
	line, err := m.readLine(prompt)
	if err != nil {
		return false, err
	}

	switch strings.ToLower(line) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	}

	b, err := strconv.ParseBool(line)
	if err != nil {
		return false, &inputError{message: fmt.Sprintf("%q is not true or false.", line)}
	}
	return b, nil
}

func (m *Menu) readSerial(prompt string) (kernel.SerialNumber, error) {
	line, err := m.readLine(prompt)
	if err != nil {
		return kernel.SerialNumber{}, err
	}

	serial, err := kernel.ParseSerialNumber(strings.ToUpper(line))
	if err != nil {
		return kernel.SerialNumber{}, &inputError{message: "Container not found."}
	}
	return serial, nil
}

// readShip asks for a ship's listing position and resolves it to the ship ID.
func (m *Menu) readShip(ctx context.Context, prompt string) (kernel.UUID, error) {
	position, err := m.readInt(prompt)
	if err != nil {
		var invalid *inputError
		if errors.As(err, &invalid) {
			return kernel.UUID{}, &inputError{message: "Invalid ship number."}
		}
		return kernel.UUID{}, err
	}

	ships, err := m.handlers.GetAllShips.Handle(ctx, queries.NewGetAllShipsQuery())
	if err != nil {
		return kernel.UUID{}, err
	}

	if position < 1 || position > len(ships) {
		return kernel.UUID{}, &inputError{message: "Invalid ship number."}
	}
	return ships[position-1].ID, nil
}
