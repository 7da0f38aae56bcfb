package logger

import (
	"fmt"
	"time"

	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

// minimalEncoder produces calm, human-readable console output:
//
//	12:04:05 converting file=examples/fib.src target=go
//
// Errors and warnings carry a short level prefix; info and debug lines
// stay unprefixed to keep the terminal quiet.
type minimalEncoder struct {
	zapcore.Encoder
	pool buffer.Pool
}

func newMinimalEncoder() zapcore.Encoder {
	cfg := zapcore.EncoderConfig{
		TimeKey:        "",
		LevelKey:       "",
		NameKey:        "",
		CallerKey:      "",
		MessageKey:     "msg",
		StacktraceKey:  "",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	return &minimalEncoder{
		Encoder: zapcore.NewConsoleEncoder(cfg),
		pool:    buffer.NewPool(),
	}
}

func (e *minimalEncoder) Clone() zapcore.Encoder {
	return &minimalEncoder{
		Encoder: e.Encoder.Clone(),
		pool:    e.pool,
	}
}

func (e *minimalEncoder) EncodeEntry(entry zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	line := e.pool.Get()

	line.AppendString(entry.Time.Format(time.Kitchen))
	line.AppendByte(' ')

	switch entry.Level {
	case zapcore.WarnLevel:
		line.AppendString("WARN ")
	case zapcore.ErrorLevel, zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel:
		line.AppendString("ERROR ")
	}

	line.AppendString(entry.Message)

	for _, f := range fields {
		line.AppendByte(' ')
		line.AppendString(f.Key)
		line.AppendByte('=')
		appendFieldValue(line, f)
	}

	line.AppendString(zapcore.DefaultLineEnding)
	return line, nil
}

func appendFieldValue(line *buffer.Buffer, f zapcore.Field) {
	switch f.Type {
	case zapcore.StringType:
		line.AppendString(f.String)
	case zapcore.Int64Type, zapcore.Int32Type, zapcore.Int16Type, zapcore.Int8Type:
		line.AppendInt(f.Integer)
	case zapcore.Uint64Type, zapcore.Uint32Type, zapcore.Uint16Type, zapcore.Uint8Type:
		line.AppendUint(uint64(f.Integer))
	case zapcore.BoolType:
		line.AppendBool(f.Integer == 1)
	case zapcore.Float64Type, zapcore.Float32Type:
		line.AppendString(fmt.Sprintf("%v", f.Interface))
	case zapcore.DurationType:
		line.AppendString(time.Duration(f.Integer).String())
	case zapcore.ErrorType:
		if err, ok := f.Interface.(error); ok {
			line.AppendString(err.Error())
		}
	default:
		line.AppendString(fmt.Sprintf("%v", f.Interface))
	}
}
