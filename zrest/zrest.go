package zrest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/torlangballe/zchart/zbool"
	"github.com/torlangballe/zchart/zdict"
	"github.com/torlangballe/zchart/zlog"
	"github.com/torlangballe/zchart/zstr"
)

var (
	AppURLPrefix     = "/"
	LegalCORSOrigins = map[string]bool{}
)

// Adds CORS headers to response if appropriate.
func AddCORSHeaders(w http.ResponseWriter, req *http.Request) {
	o := req.Header.Get("Origin")
	obase := zstr.HeadUntilLast(o, ":", nil)
	if LegalCORSOrigins[o] || LegalCORSOrigins[obase] {
		w.Header().Set("Access-Control-Allow-Origin", o)
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Headers", "Origin, X-Requested-With, Content-Type, Accept")
	}
}

// Returns HTTP error code and error messages in JSON representation, with string made of args and, printed
func ReturnAndPrintError(w http.ResponseWriter, req *http.Request, errorCode int, a ...any) error {
	str := strings.TrimSpace(fmt.Sprintln(a...))
	err := zlog.Error(nil, append([]any{zlog.StackAdjust(1)}, a...)...)
	ReturnError(w, req, str, errorCode)
	return err
}

// Returns HTTP error code and error messages in JSON representation.
func ReturnError(w http.ResponseWriter, req *http.Request, message string, errorCode int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(errorCode)
	data, _ := json.Marshal(zdict.Dict{"error": message})
	w.Write(data)
}

// Returns {"somekey":<some value>}.
func ReturnSingle(w http.ResponseWriter, req *http.Request, key string, val any) {
	ReturnDict(w, req, zdict.Dict{key: val})
}

func ReturnDict(w http.ResponseWriter, req *http.Request, dict zdict.Dict) {
	data, _ := json.Marshal(dict)
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Date", time.Now().In(time.UTC).Format(time.RFC3339))
	AddCORSHeaders(w, req)
	w.Write(data)
}

func GetBoolVal(vals url.Values, name string) bool {
	str := vals.Get(name)
	return zbool.FromString(str, false)
}

func GetIntVal(vals url.Values, name string, def int) int {
	return int(GetInt64Val(vals, name, int64(def)))
}

func GetInt64Val(vals url.Values, name string, def int64) int64 {
	s := vals.Get(name)
	if s == "" {
		return def
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return def
	}
	return n
}

func GetFloatVal(vals url.Values, name string, def float64) float64 {
	s := vals.Get(name)
	if s == "" {
		return def
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return n
}

// GetFloatsVal parses a comma or space separated list of numbers
func GetFloatsVal(vals url.Values, name string) ([]float64, error) {
	var out []float64
	for _, s := range zstr.SplitByAnyOf(vals.Get(name), []string{",", " "}, true) {
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, zlog.Wrap(err, "bad number in", name)
		}
		out = append(out, n)
	}
	return out, nil
}

// The FuncHandler type is a special request handler function that is a http.Handler by having a ServeHTTP method that calls itself
type FuncHandler func(http.ResponseWriter, *http.Request)

func (f FuncHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	f(w, req)
}

func AddHandler(router *mux.Router, pattern string, f func(http.ResponseWriter, *http.Request)) *mux.Route {
	pattern = AppURLPrefix + pattern
	defer zlog.HandlePanic(false)
	if router == nil {
		http.HandleFunc(pattern, f)
		return nil
	}
	return router.HandleFunc(pattern, f)
}
