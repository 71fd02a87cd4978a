package zlog

import (
	"fmt"
	"os"
	"path"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/torlangballe/zchart/zstr"
)

type Priority int
type StackAdjust int

// Enabler is passed as the first part to a log function, which then only outputs if it is true.
// Register it with RegisterEnabler so it can be switched on by name, like -zlog.enable=zchart.Log
type Enabler bool

const (
	Verbose Priority = iota
	DebugLevel
	InfoLevel
	WarningLevel
	ErrorLevel
	FatalLevel
)

var (
	PrintPriority = DebugLevel
	UseColor      = false
	IsInTests     bool
	outputHooks   = map[string]func(s string){}
	enablers      = map[string]*Enabler{}
	hookingLock   sync.Mutex
	hooking       = false
	timeLock      sync.Mutex
	enablerLock   sync.Mutex
)

func init() {
	IsInTests = strings.HasSuffix(os.Args[0], ".test")
}

func RegisterEnabler(name string, e *Enabler) {
	enablerLock.Lock()
	enablers[name] = e
	enablerLock.Unlock()
}

// SetEnabled switches a registered Enabler on or off, returning false if none by name.
func SetEnabled(name string, on bool) bool {
	enablerLock.Lock()
	defer enablerLock.Unlock()
	e := enablers[name]
	if e == nil {
		return false
	}
	*e = Enabler(on)
	return true
}

func Error(err error, parts ...any) error {
	return baseLog(err, ErrorLevel, 4, parts...)
}

// Fatal performs Log with Fatal priority, and exits
func Fatal(err error, parts ...any) error {
	return baseLog(err, FatalLevel, 4, parts...)
}

// Info performs Log with InfoLevel priority
func Info(parts ...any) {
	baseLog(nil, InfoLevel, 4, parts...)
}

// Warn performs Log with WarningLevel priority
func Warn(parts ...any) {
	baseLog(nil, WarningLevel, 4, parts...)
}

// Debug performs Log with DebugLevel priority
func Debug(parts ...any) {
	baseLog(nil, DebugLevel, 4, parts...)
}

// Log returns a new error combined with err (if not nil), and parts. Printing done if priority >= PrintPriority
func Log(err error, priority Priority, parts ...any) error {
	return baseLog(err, priority, 4, parts...)
}

func NewError(parts ...any) error {
	var err error
	if len(parts) > 0 {
		err, _ = parts[0].(error)
		if err != nil {
			parts = parts[1:]
		}
	}
	p := zstr.SprintSpaced(parts...)
	pnew := zstr.ColorSetter.Replace(p)
	if pnew != p {
		p = pnew + zstr.EscNoColor
	}
	if err != nil {
		if p == "" {
			return err
		}
		return errors.Wrap(err, p)
	}
	return errors.New(p)
}

func baseLog(err error, priority Priority, pos int, parts ...any) error {
	if len(parts) != 0 {
		n, got := parts[0].(StackAdjust)
		if got {
			parts = parts[1:]
			pos += int(n)
		}
	}
	if len(parts) != 0 {
		e, got := parts[0].(Enabler)
		if got {
			if !e {
				return nil
			}
			parts = parts[1:]
		}
	}
	if err != nil {
		parts = append([]any{err}, parts...)
	}
	err = NewError(parts...)
	if priority < PrintPriority {
		return err
	}
	col := ""
	endCol := ""
	if UseColor {
		if priority >= ErrorLevel {
			col = zstr.EscMagenta
			endCol = zstr.EscNoColor
		} else if priority >= WarningLevel {
			col = zstr.EscYellow
			endCol = zstr.EscNoColor
		}
	}
	timeLock.Lock()
	finfo := time.Now().Local().Format("15:04:05/02 ")
	timeLock.Unlock()
	if priority != InfoLevel {
		finfo += GetCallingFunctionString(pos) + ": "
	}
	if priority == FatalLevel {
		finfo += "\nFatal:" + CallingStackString() + "\n"
	}
	fmt.Fprintln(os.Stderr, finfo+col+err.Error()+endCol)
	str := finfo + err.Error() + "\n"

	hookingLock.Lock()
	if !hooking {
		hooking = true
		for _, f := range outputHooks {
			f(str)
		}
		hooking = false
	}
	hookingLock.Unlock()
	if priority == FatalLevel {
		os.Exit(-1)
	}
	return err
}

func GetCallingFunctionInfo(pos int) (function, file string, line int) {
	pc, file, line, ok := runtime.Caller(pos)
	if ok {
		function = runtime.FuncForPC(pc).Name()
	}
	return
}

func CallingStackString() string {
	var parts []string
	for i := 3; ; i++ {
		s := GetCallingFunctionString(i)
		if s == "" {
			break
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, "\n")
}

func GetCallingFunctionString(pos int) string {
	function, file, line := GetCallingFunctionInfo(pos)
	if function == "" {
		return ""
	}
	_, function = path.Split(function)
	_, file = path.Split(file)
	return fmt.Sprintf("%s:%d %s()", file, line, function)
}

func AddHook(id string, call func(s string)) {
	hookingLock.Lock()
	outputHooks[id] = call
	hookingLock.Unlock()
}

func RemoveHook(id string) {
	hookingLock.Lock()
	delete(outputHooks, id)
	hookingLock.Unlock()
}

// Wrap returns err wrapped with the parts as a message, without logging.
func Wrap(err error, parts ...any) error {
	p := zstr.SprintSpaced(parts...)
	return errors.Wrap(err, p)
}

// Cause returns the innermost error of a chain of Wrap/NewError errors.
func Cause(err error) error {
	return errors.Cause(err)
}

func HandlePanic(exit bool) error {
	r := recover()
	if r != nil {
		Info("\n🟥HandlePanic:", r)
		str := fmt.Sprint(r)
		if exit {
			panic(str)
		}
		e, _ := r.(error)
		if e != nil {
			return e
		}
		return errors.New(str)
	}
	return nil
}
