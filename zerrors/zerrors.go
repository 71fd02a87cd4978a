package zerrors

import (
	"errors"
	"fmt"

	"github.com/torlangballe/zchart/zdict"
	"github.com/torlangballe/zchart/zstr"
)

// ContextError is an error with a title, key/values describing what was being done,
// and an optional wrapped error or sub-context.
type ContextError struct {
	Title           string
	SubContextError *ContextError
	WrappedError    error `json:"-"`
	KeyValues       zdict.Dict
}

func (e ContextError) Error() string {
	str := e.Title
	if len(e.KeyValues) != 0 {
		str += " [" + e.KeyValues.Join("=", " ") + "]"
	}
	if e.SubContextError != nil {
		return zstr.Concat(": ", str, e.SubContextError.Error())
	}
	if e.WrappedError != nil {
		str += ": " + e.WrappedError.Error()
	}
	return str
}

func (e ContextError) String() string {
	str := fmt.Sprintf("{ %s %+v ", e.Title, e.KeyValues)
	if e.SubContextError != nil {
		str += "{ " + e.SubContextError.String() + " } "
	}
	return str + "}"
}

func (e ContextError) Unwrap() error {
	if e.SubContextError != nil {
		return *e.SubContextError
	}
	return e.WrappedError
}


// MakeContextError makes a ContextError with parts as title.
// An error in parts is wrapped, becoming a sub-context if it is a ContextError itself.
func MakeContextError(dict zdict.Dict, parts ...any) ContextError {
	var ce ContextError
	var nparts []any
	ce.KeyValues = dict
	for _, p := range parts {
		err, got := p.(error)
		if got {
			sub, gotCE := ContextErrorFromError(err)
			if gotCE {
				ce.SubContextError = &sub
				continue
			}
			ce.WrappedError = err
			continue
		}
		nparts = append(nparts, p)
	}
	ce.Title = zstr.Spaced(nparts...)
	return ce
}

func ContextErrorFromError(err error) (ContextError, bool) {
	var ce ContextError
	if errors.As(err, &ce) {
		return ce, true
	}
	return ContextError{}, false
}
