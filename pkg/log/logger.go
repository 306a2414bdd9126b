package log

import (
	"os"
	"strconv"
	"strings"

	"github.com/TurboProjects/Notes-App-Challenge/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const projectName = "Notes-App-Challenge"

var L *zap.Logger

func init() {
	L = zap.New(zapcore.NewCore(newEncoder(), zapcore.AddSync(os.Stdout), zap.InfoLevel),
		zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel))
}

func newEncoder() zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeCaller = func(caller zapcore.EntryCaller, enc zapcore.PrimitiveArrayEncoder) {
		index := strings.Index(caller.File, projectName)
		if index != -1 {
			enc.AppendString(caller.File[index:] + ":" + strconv.Itoa(caller.Line))
		} else {
			enc.AppendString(caller.TrimmedPath())
		}
	}
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return zapcore.NewJSONEncoder(encoderConfig)
}

// Setup replaces L according to conf. With a filename set, entries are
// written to stdout and to a lumberjack-rotated file.
func Setup(conf *config.Log) {
	if conf == nil {
		return
	}
	level, err := zapcore.ParseLevel(conf.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	sink := zapcore.AddSync(os.Stdout)
	if conf.Filename != "" {
		sink = zapcore.NewMultiWriteSyncer(sink, zapcore.AddSync(&lumberjack.Logger{
			Filename:   conf.Filename,
			MaxSize:    conf.MaxSize,
			MaxBackups: conf.MaxBackups,
			MaxAge:     conf.MaxAge,
			Compress:   true,
		}))
	}

	L = zap.New(zapcore.NewCore(newEncoder(), sink, level), zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel))
}
