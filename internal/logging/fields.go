package logging

import (
	"time"

	"github.com/felixgeelhaar/bolt/v3"

	"github.com/katalvlaran/robosearch/board"
)

// Field is a function that applies structured data to a log event.
type Field func(*bolt.Event) *bolt.Event

// Strategy adds the search strategy name.
func Strategy(name string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("strategy", name)
	}
}

// Bound adds the iterative-deepening depth bound.
func Bound(b int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("bound", b)
	}
}

// Processed adds the number of processed states.
func Processed(n int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("processed", n)
	}
}

// Remaining adds the number of states left on the frontier.
func Remaining(n int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("remaining", n)
	}
}

// Expansions adds the number of expanded states.
func Expansions(n int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("expansions", n)
	}
}

// Found adds whether a goal was reached.
func Found(found bool) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Bool("found", found)
	}
}

// PathLength adds the number of steps of the discovered path.
func PathLength(steps int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("path_steps", steps)
	}
}

// Position adds a board coordinate.
func Position(key string, p board.Position) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str(key, p.String())
	}
}

// Duration adds a duration field in milliseconds.
func Duration(d time.Duration) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int64("duration_ms", d.Milliseconds())
	}
}

// ErrorField adds an error field.
func ErrorField(err error) Field {
	return func(e *bolt.Event) *bolt.Event {
		if err == nil {
			return e
		}
		return e.Err(err)
	}
}

// Component adds a component field for categorization.
func Component(name string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("component", name)
	}
}

// Str adds a string field with custom key.
func Str(key, value string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str(key, value)
	}
}
