// Package log provides a small structured logger modeled on klaytn's
// log.NewModuleLogger: every record carries a module name and a flat list
// of key/value pairs, Error and Crit records are annotated with the call
// site via the goroutine's call stack, and output is colorized when
// attached to a terminal.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/go-stack/stack"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// Level is the verbosity of a single record, ordered most to least severe.
type Level int

const (
	LvlCrit Level = iota
	LvlError
	LvlWarn
	LvlInfo
	LvlDebug
	LvlTrace
)

func (l Level) String() string {
	switch l {
	case LvlCrit:
		return "CRIT"
	case LvlError:
		return "ERROR"
	case LvlWarn:
		return "WARN"
	case LvlInfo:
		return "INFO"
	case LvlDebug:
		return "DEBUG"
	case LvlTrace:
		return "TRACE"
	default:
		return "UNKNOWN"
	}
}

var levelColor = map[Level]int{
	LvlCrit:  35, // magenta
	LvlError: 31, // red
	LvlWarn:  33, // yellow
	LvlInfo:  32, // green
	LvlDebug: 36, // cyan
	LvlTrace: 90, // bright black
}

var (
	mu         sync.Mutex
	maxLevel   = LvlInfo
	out        io.Writer = colorable.NewColorableStdout()
	colorForce           = isatty.IsTerminal(os.Stdout.Fd())
)

// SetMaxLevel controls the process-wide verbosity floor; records with a
// Level greater than maxLevel (less severe than it) are dropped.
func SetMaxLevel(lvl Level) {
	mu.Lock()
	defer mu.Unlock()
	maxLevel = lvl
}

// SetOutput redirects where records are written; used by tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
}

// Logger is a module-scoped structured logger.
type Logger interface {
	Trace(msg string, ctx ...interface{})
	Debug(msg string, ctx ...interface{})
	Info(msg string, ctx ...interface{})
	Warn(msg string, ctx ...interface{})
	Error(msg string, ctx ...interface{})
	// Crit logs at the highest severity; unlike klaytn's log.Crit it does
	// not terminate the process, since this service must survive and
	// retry past per-pass failures (spec.md §7).
	Crit(msg string, ctx ...interface{})
	// New derives a child logger that always logs the given key/values
	// in addition to whatever call sites pass.
	New(ctx ...interface{}) Logger
}

type moduleLogger struct {
	module string
	static  []interface{}
}

// NewModuleLogger returns a Logger tagged with the given module name,
// mirroring klaytn's `log.NewModuleLogger(log.ChainDataFetcher)` call
// sites (datasync/chaindatafetcher/chaindata_fetcher.go).
func NewModuleLogger(module string) Logger {
	return &moduleLogger{module: module}
}

func (l *moduleLogger) New(ctx ...interface{}) Logger {
	combined := make([]interface{}, 0, len(l.static)+len(ctx))
	combined = append(combined, l.static...)
	combined = append(combined, ctx...)
	return &moduleLogger{module: l.module, static: combined}
}

func (l *moduleLogger) Trace(msg string, ctx ...interface{}) { l.write(LvlTrace, msg, ctx) }
func (l *moduleLogger) Debug(msg string, ctx ...interface{}) { l.write(LvlDebug, msg, ctx) }
func (l *moduleLogger) Info(msg string, ctx ...interface{})  { l.write(LvlInfo, msg, ctx) }
func (l *moduleLogger) Warn(msg string, ctx ...interface{})  { l.write(LvlWarn, msg, ctx) }
func (l *moduleLogger) Error(msg string, ctx ...interface{}) { l.write(LvlError, msg, ctx) }
func (l *moduleLogger) Crit(msg string, ctx ...interface{})  { l.write(LvlCrit, msg, ctx) }

func (l *moduleLogger) write(lvl Level, msg string, ctx []interface{}) {
	mu.Lock()
	defer mu.Unlock()

	if lvl > maxLevel {
		return
	}

	var b strings.Builder
	b.WriteString(time.Now().UTC().Format("2006-01-02T15:04:05.000Z"))
	b.WriteByte(' ')
	writeLevel(&b, lvl)
	b.WriteByte(' ')
	if l.module != "" {
		fmt.Fprintf(&b, "[%s] ", l.module)
	}
	b.WriteString(msg)

	allCtx := make([]interface{}, 0, len(l.static)+len(ctx))
	allCtx = append(allCtx, l.static...)
	allCtx = append(allCtx, ctx...)
	for i := 0; i+1 < len(allCtx); i += 2 {
		fmt.Fprintf(&b, " %v=%v", allCtx[i], allCtx[i+1])
	}
	if len(allCtx)%2 == 1 {
		fmt.Fprintf(&b, " %v=MISSING", allCtx[len(allCtx)-1])
	}

	if lvl <= LvlError {
		b.WriteString(" caller=")
		b.WriteString(callerFrame())
	}

	fmt.Fprintln(out, b.String())
}

func writeLevel(b *strings.Builder, lvl Level) {
	if colorForce {
		fmt.Fprintf(b, "\x1b[%dm%-5s\x1b[0m", levelColor[lvl], lvl.String())
		return
	}
	fmt.Fprintf(b, "%-5s", lvl.String())
}

// callerFrame walks the call stack (via go-stack/stack, the same package
// klaytn's own log package is built on) to find the first frame outside
// this package.
func callerFrame() string {
	call := stack.Caller(0)
	trace := stack.Trace().TrimRuntime()
	for _, c := range trace {
		frame := fmt.Sprintf("%+v", c)
		if !strings.Contains(frame, "internal/log/") {
			return frame
		}
	}
	return fmt.Sprintf("%+v", call)
}

// Module name constants, mirroring klaytn's log.ChainDataFetcher-style
// per-component module identifiers.
const (
	ModuleDriver      = "driver"
	ModuleClassifier  = "classifier"
	ModuleNonTx       = "nontx"
	ModuleOngoing     = "ongoing"
	ModuleScorer      = "scorer"
	ModuleRanker      = "ranker"
	ModuleCheckpoint  = "checkpoint"
	ModulePlayerKind  = "playerkind"
	ModuleDB          = "db"
	ModuleCometBFT    = "cometbft"
	ModuleConfig      = "config"
)
