package log

/*
	log module is used to write log info to a rotated log file,
	mirrored to stdout unless silenced
*/

import (
	"fmt"
	go_log "log"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

type Log struct {
	Level int
	// rotated file sink
	file *lumberjack.Logger
}

const (
	LOG_LEVEL_DEBUG = 0
	LOG_LEVEL_INFO  = 1
	LOG_LEVEL_WARN  = 2
	LOG_LEVEL_ERROR = 3
)

func (l *Log) Debug(format string, stdout bool, v ...interface{}) {
	if l.Level <= LOG_LEVEL_DEBUG {
		l.writeLog("DEBUG", format, stdout, v...)
	}
}

func (l *Log) Info(format string, stdout bool, v ...interface{}) {
	if l.Level <= LOG_LEVEL_INFO {
		l.writeLog("INFO", format, stdout, v...)
	}
}

func (l *Log) Warn(format string, stdout bool, v ...interface{}) {
	if l.Level <= LOG_LEVEL_WARN {
		l.writeLog("WARN", format, stdout, v...)
	}
}

func (l *Log) Error(format string, stdout bool, v ...interface{}) {
	if l.Level <= LOG_LEVEL_ERROR {
		l.writeLog("ERROR", format, stdout, v...)
	}
}

func (l *Log) Panic(format string, stdout bool, v ...interface{}) {
	l.writeLog("PANIC", format, stdout, v...)
	panic("")
}

func (l *Log) writeLog(level string, format string, stdout bool, v ...interface{}) {
	format = fmt.Sprintf("["+level+"]"+format, v...)

	if show_log && stdout {
		logger.Output(4, format)
	}

	// lumberjack reopens and rotates as needed
	l.file.Write([]byte(format + "\n"))
}

func (l *Log) SetLogLevel(level int) {
	l.Level = level
}

func NewLog(path string) (*Log, error) {
	if path == "" {
		path = "logs"
	}
	err := os.MkdirAll(path, 0755)
	if err != nil {
		return nil, err
	}

	log := &Log{
		Level: LOG_LEVEL_DEBUG,
		file: &lumberjack.Logger{
			Filename:   filepath.Join(path, "seccomp-gate.log"),
			MaxSize:    10, // megabytes
			MaxBackups: 5,
			MaxAge:     28, // days
		},
	}
	return log, nil
}

var main_log *Log
var show_log bool = true
var logger = go_log.New(os.Stdout, "", go_log.Ldate|go_log.Ltime|go_log.Lshortfile)

func initlog() {
	var err error
	main_log, err = NewLog("./logs")
	if err != nil {
		panic(err)
	}
}

func SetShowLog(show bool) {
	show_log = show
}

func SetLogLevel(level int) {
	if main_log == nil {
		initlog()
	}
	main_log.SetLogLevel(level)
}

// SetLogLevelName maps the config file's level names onto the numeric
// levels. Unknown names fall back to info.
func SetLogLevelName(name string) {
	switch name {
	case "debug":
		SetLogLevel(LOG_LEVEL_DEBUG)
	case "warn":
		SetLogLevel(LOG_LEVEL_WARN)
	case "error":
		SetLogLevel(LOG_LEVEL_ERROR)
	default:
		SetLogLevel(LOG_LEVEL_INFO)
	}
}

// SetLogPath redirects the file sink, used once config is loaded.
func SetLogPath(path string) error {
	l, err := NewLog(path)
	if err != nil {
		return err
	}
	if main_log != nil {
		l.Level = main_log.Level
	}
	main_log = l
	return nil
}

func Debug(format string, v ...interface{}) {
	if main_log == nil {
		initlog()
	}
	main_log.Debug(format, true, v...)
}

func Info(format string, v ...interface{}) {
	if main_log == nil {
		initlog()
	}
	main_log.Info(format, true, v...)
}

func Warn(format string, v ...interface{}) {
	if main_log == nil {
		initlog()
	}
	main_log.Warn(format, true, v...)
}

func Error(format string, v ...interface{}) {
	if main_log == nil {
		initlog()
	}
	main_log.Error(format, true, v...)
}

func Panic(format string, v ...interface{}) {
	if main_log == nil {
		initlog()
	}
	main_log.Panic(format, true, v...)
}
