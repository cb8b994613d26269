package errors

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/sQeeZ-scripting-language/parser/types"
	"github.com/ztrue/tracerr"
)

// Kind tags a parse failure.
type Kind int

const (
	// InvalidInput covers every grammar violation.
	InvalidInput Kind = iota
	// OutOfRange is raised when bounded lookahead runs past the stream.
	OutOfRange
)

func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "InvalidInput"
	case OutOfRange:
		return "OutOfRange"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Failure is implemented by every error the parser produces.
type Failure interface {
	error
	Kind() Kind
}

// KindOf returns the failure kind of err if it is, or wraps, a parser
// failure.
func KindOf(err error) (Kind, bool) {
	var f Failure
	if !stderrors.As(tracerr.Unwrap(err), &f) {
		return 0, false
	}
	return f.Kind(), true
}

type ExpectedKindGotKind struct {
	Expected string
	Got      types.Token
	Context  string
}

func (e ExpectedKindGotKind) Error() string {
	return fmt.Sprintf("%s: got %q (%s), expected %s. %s", e.Context, e.Got.Value, e.Got.PlainText(), e.Expected, e.Got.Location)
}

func (e ExpectedKindGotKind) Kind() Kind { return InvalidInput }

type ExpectedOneOfKindGotKind struct {
	Expected []string
	Got      types.Token
	Context  string
}

func (e ExpectedOneOfKindGotKind) Error() string {
	return fmt.Sprintf("%s: got %q (%s), expected one of %s. %s", e.Context, e.Got.Value, e.Got.PlainText(), strings.Join(e.Expected, ", "), e.Got.Location)
}

func (e ExpectedOneOfKindGotKind) Kind() Kind { return InvalidInput }

// UnexpectedToken is a grammar violation that is not a plain kind mismatch,
// e.g. a non-identifier function parameter or an unparsable number.
type UnexpectedToken struct {
	Got     types.Token
	Context string
}

func (e UnexpectedToken) Error() string {
	return fmt.Sprintf("%s: %q (%s). %s", e.Context, e.Got.Value, e.Got.PlainText(), e.Got.Location)
}

func (e UnexpectedToken) Kind() Kind { return InvalidInput }

type MissingSentinel struct {
	Expected string
	Got      types.Token
}

func (e MissingSentinel) Error() string {
	if e.Got.Kind == nil {
		return fmt.Sprintf("token stream is missing its %s marker", e.Expected)
	}
	return fmt.Sprintf("token stream is missing its %s marker, found %q (%s). %s", e.Expected, e.Got.Value, e.Got.PlainText(), e.Got.Location)
}

func (e MissingSentinel) Kind() Kind { return InvalidInput }

type LookAheadPastEnd struct {
	Steps     int
	Remaining int
}

func (e LookAheadPastEnd) Error() string {
	return fmt.Sprintf("look ahead of %d tokens runs past the end of the stream (%d left)", e.Steps, e.Remaining)
}

func (e LookAheadPastEnd) Kind() Kind { return OutOfRange }
