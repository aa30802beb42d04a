package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Operation - арифметическая операция. Нулевое значение невалидно.
type Operation int

// Поддерживаемые операции.
const (
	OpAdd Operation = iota + 1
	OpSubtract
	OpMultiply
	OpDivide
)

// Operations перечисляет все поддерживаемые операции в порядке объявления.
var Operations = []Operation{OpAdd, OpSubtract, OpMultiply, OpDivide}

// String возвращает имя операции (Add, Subtract, Multiply, Divide).
func (o Operation) String() string {
	switch o {
	case OpAdd:
		return "Add"
	case OpSubtract:
		return "Subtract"
	case OpMultiply:
		return "Multiply"
	case OpDivide:
		return "Divide"
	}
	return fmt.Sprintf("Operation(%d)", int(o))
}

// Valid сообщает, является ли значение одной из поддерживаемых операций.
func (o Operation) Valid() bool {
	return o >= OpAdd && o <= OpDivide
}

// ParseOperation принимает имя операции без учёта регистра или её символ (+, -, *, /).
func ParseOperation(s string) (Operation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "add", "+":
		return OpAdd, nil
	case "subtract", "-":
		return OpSubtract, nil
	case "multiply", "*":
		return OpMultiply, nil
	case "divide", "/":
		return OpDivide, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedOperation, s)
}

// MarshalText кодирует операцию её именем.
func (o Operation) MarshalText() ([]byte, error) {
	if !o.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedOperation, int(o))
	}
	return []byte(o.String()), nil
}

// UnmarshalText декодирует операцию из имени или символа.
func (o *Operation) UnmarshalText(b []byte) error {
	op, err := ParseOperation(string(b))
	if err != nil {
		return err
	}
	*o = op
	return nil
}

// Apply вычисляет результат операции по правилам IEEE-754.
// Деление на ноль отклоняется до вычисления.
func (o Operation) Apply(left, right float64) (float64, error) {
	switch o {
	case OpAdd:
		return left + right, nil
	case OpSubtract:
		return left - right, nil
	case OpMultiply:
		return left * right, nil
	case OpDivide:
		if right == 0 {
			return 0, ErrDivisionByZero
		}
		return left / right, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnsupportedOperation, o)
}

// Request - входные данные для вычисления.
type Request struct {
	Left      float64
	Right     float64
	Operation Operation
}

// Validate проверяет операцию, операнды и делитель. Ничего не пишет.
func (r Request) Validate() error {
	if !r.Operation.Valid() {
		return fmt.Errorf("%w: %s", ErrUnsupportedOperation, r.Operation)
	}
	if !finite(r.Left) || !finite(r.Right) {
		return ErrInvalidOperand
	}
	if r.Operation == OpDivide && r.Right == 0 {
		return ErrDivisionByZero
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Calculation - сохранённая запись об одной операции.
// После сохранения меняться могут только IsActive и DeletedAt.
type Calculation struct {
	ID        int64
	Left      float64
	Right     float64
	Operation Operation
	Result    float64
	CreatedAt time.Time
	UserID    string
	IsActive  bool
	DeletedAt *time.Time
}
