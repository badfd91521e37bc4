package infra

import (
	"fmt"
	"io"
	"path"
	"runtime"
	"strconv"
	"strings"

	"go.uber.org/zap/zapcore"
)

// References:
// https://github.com/pkg/errors/blob/master/stack.go

type Frame uintptr

func (frame Frame) pc() uintptr {
	return uintptr(frame) - 1
}

func (frame Frame) file() string {
	fn := runtime.FuncForPC(frame.pc())
	if fn == nil {
		return "unknownFile"
	}
	f, _ := fn.FileLine(frame.pc())
	return f
}

func (frame Frame) line() int {
	fn := runtime.FuncForPC(frame.pc())
	if fn == nil {
		return 0
	}
	_, l := fn.FileLine(frame.pc())
	return l
}

func (frame Frame) name() string {
	fn := runtime.FuncForPC(frame.pc())
	if fn == nil {
		return "unknownFunc"
	}
	return fn.Name()
}

// Format characters:
// %s - source file
// %d - source line
// %n - function name
// %v - equivalent to %s:%d
// %+s - function name and full path, separated by \n\t
// %+v - equivalent to %+s:%d
func (frame Frame) Format(s fmt.State, verb rune) {
	switch verb {
	case 's':
		if s.Flag('+') {
			_, _ = io.WriteString(s, frame.name())
			_, _ = io.WriteString(s, "\n\t")
			_, _ = io.WriteString(s, frame.file())
		} else {
			_, _ = io.WriteString(s, path.Base(frame.file()))
		}
	case 'd':
		_, _ = io.WriteString(s, strconv.Itoa(frame.line()))
	case 'n':
		_, _ = io.WriteString(s, funcName(frame.name()))
	case 'v':
		frame.Format(s, 's')
		_, _ = io.WriteString(s, ":")
		frame.Format(s, 'd')
	}
}

func funcName(name string) string {
	i := strings.LastIndex(name, "/")
	name = name[i+1:]
	i = strings.Index(name, ".")
	return name[i+1:]
}

// CallerFrame returns the frame skip levels above its own caller.
// CallerFrame(0) is the function calling CallerFrame.
func CallerFrame(skip int) Frame {
	var pcs [1]uintptr
	if runtime.Callers(skip+2, pcs[:]) < 1 {
		return Frame(0)
	}
	return Frame(pcs[0])
}

// ContractViolation is the panic value for API misuse that must never be
// tolerated silently, such as out of range rank access.
type ContractViolation struct {
	Op     string
	Reason string
	Frame  Frame
}

// NewContractViolation records the frame skip levels above its caller.
// NewContractViolation(0, ...) records the caller itself.
func NewContractViolation(skip int, op, reason string) *ContractViolation {
	return &ContractViolation{
		Op:     op,
		Reason: reason,
		Frame:  CallerFrame(skip + 1),
	}
}

func (cv *ContractViolation) Error() string {
	return fmt.Sprintf("%s: %s (%v)", cv.Op, cv.Reason, cv.Frame)
}

func (cv *ContractViolation) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("op", cv.Op)
	enc.AddString("reason", cv.Reason)
	enc.AddString("caller", fmt.Sprintf("%n %v", cv.Frame, cv.Frame))
	return nil
}

// MustHold panics with a ContractViolation when cond is false.
func MustHold(cond bool, op, format string, args ...any) {
	if cond {
		return
	}
	panic(NewContractViolation(1, op, fmt.Sprintf(format, args...)))
}
