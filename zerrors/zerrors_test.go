package zerrors

import (
	"errors"
	"testing"

	"github.com/torlangballe/zchart/zdict"
	"github.com/torlangballe/zchart/ztesting"
)

func TestContextError(t *testing.T) {
	base := errors.New("short write")
	ce := MakeContextError(zdict.Dict{"width": 400}, "render", "chart", base)
	ztesting.Equal(t, "title", ce.Title, "render chart")
	ztesting.Equal(t, "error text", ce.Error(), "render chart [width=400]: short write")
	ztesting.Equal(t, "unwrap", errors.Is(ce, base), true)

	outer := MakeContextError(nil, "serve", ce)
	got, is := ContextErrorFromError(outer)
	ztesting.Equal(t, "is context", is, true)
	ztesting.Equal(t, "has sub", got.SubContextError != nil, true)
	ztesting.Equal(t, "sub title", got.SubContextError.Title, "render chart")
	ztesting.Equal(t, "errors.Is through sub", errors.Is(outer, base), true)
}
