package helper

import (
	"fmt"
	"time"
)

// Operation is a named capability callable through Registry.Call.
type Operation func(args ...any) (any, error)

// Module contributes a set of operations to a Registry.
type Module interface {
	// Name is the type identifier the module is registered under (e.g. "ArticlesHelper").
	Name() string
	// Operations returns the operations keyed by name. It is read once, at Build.
	Operations() map[string]Operation
}

// Funcs is a Module backed by a plain map.
type Funcs struct {
	ID  string
	Ops map[string]Operation
}

func (f Funcs) Name() string { return f.ID }

func (f Funcs) Operations() map[string]Operation { return f.Ops }

// StringArg returns args[i] as a string.
func StringArg(args []any, i int) (string, error) {
	if i >= len(args) {
		return "", fmt.Errorf("missing argument %d", i)
	}
	switch v := args[i].(type) {
	case string:
		return v, nil
	case fmt.Stringer:
		return v.String(), nil
	default:
		return "", fmt.Errorf("argument %d: expected string, got %T", i, args[i])
	}
}

// FloatArg returns args[i] as a float64, accepting any built-in numeric type.
func FloatArg(args []any, i int) (float64, error) {
	if i >= len(args) {
		return 0, fmt.Errorf("missing argument %d", i)
	}
	switch v := args[i].(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("argument %d: expected number, got %T", i, args[i])
	}
}

// IntArg returns args[i] as an int. Floats are truncated.
func IntArg(args []any, i int) (int, error) {
	f, err := FloatArg(args, i)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

// TimeArg returns args[i] as a time.Time.
func TimeArg(args []any, i int) (time.Time, error) {
	if i >= len(args) {
		return time.Time{}, fmt.Errorf("missing argument %d", i)
	}
	switch v := args[i].(type) {
	case time.Time:
		return v, nil
	case *time.Time:
		if v == nil {
			return time.Time{}, fmt.Errorf("argument %d: nil time", i)
		}
		return *v, nil
	case string:
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return time.Time{}, fmt.Errorf("argument %d: %w", i, err)
		}
		return t, nil
	default:
		return time.Time{}, fmt.Errorf("argument %d: expected time, got %T", i, args[i])
	}
}
