package logging

import (
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type LogConfig struct {
	Level        string `json:"level" yaml:"level"`               // Level 最低日志等级，例如：info-->收集info等级以上的日志
	FileName     string `json:"fileName" yaml:"fileName"`         // FileName 日志文件位置，为空则只输出到控制台
	MaxSize      int    `json:"maxSize" yaml:"maxSize"`           // MaxSize 进行切割之前，日志文件的最大大小(MB为单位)
	MaxAge       int    `json:"maxAge" yaml:"maxAge"`             // MaxAge 保留旧日志文件的最大天数
	MaxBackups   int    `json:"maxBackups" yaml:"maxBackups"`     // MaxBackups 保留旧日志文件的最大个数
	IsStdout     bool   `json:"isStdout" yaml:"isStdout"`         // IsStdout 是否输出到控制台
	IsStackTrace bool   `json:"isStackTrace" yaml:"isStackTrace"` // IsStackTrace 是否输出堆栈信息
}

// InitLogger 初始化Logger，并替换zap的全局logger
func InitLogger(lCfg *LogConfig) error {
	// 未配置时使用缺省配置（info等级，仅控制台输出）
	if lCfg == nil {
		lCfg = &LogConfig{
			Level:    "info",
			IsStdout: true,
		}
	}

	// 解析日志等级
	level, err := zapcore.ParseLevel(lCfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	writeSyncer := getLogWriter(lCfg.FileName, lCfg.MaxSize, lCfg.MaxBackups, lCfg.MaxAge, lCfg.IsStdout)
	core := zapcore.NewCore(getEncoder(), writeSyncer, level)

	var logger *zap.Logger
	if lCfg.IsStackTrace {
		logger = zap.New(core, zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel))
	} else {
		logger = zap.New(core, zap.AddCaller())
	}
	zap.ReplaceGlobals(logger)
	return nil
}

// getEncoder 负责设置 encoding 的日志格式
func getEncoder() zapcore.Encoder {
	encodeConfig := zap.NewProductionEncoderConfig()
	encodeConfig.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.Format("2006-01-02 15:04:05.000"))
	}
	encodeConfig.TimeKey = "time"
	encodeConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encodeConfig.EncodeCaller = zapcore.ShortCallerEncoder
	return zapcore.NewJSONEncoder(encodeConfig)
}

// getLogWriter 负责日志写入的位置
func getLogWriter(filename string, maxsize, maxBackup, maxAge int, isStdout bool) zapcore.WriteSyncer {
	// 未配置日志文件则只写控制台
	if filename == "" {
		return zapcore.AddSync(os.Stdout)
	}

	lumberJackLogger := &lumberjack.Logger{
		Filename:   filename,  // 文件位置
		MaxSize:    maxsize,   // 进行切割之前,日志文件的最大大小(MB为单位)
		MaxAge:     maxAge,    // 保留旧文件的最大天数
		MaxBackups: maxBackup, // 保留旧文件的最大个数
		Compress:   true,      // 是否压缩/归档旧文件
	}
	if isStdout {
		return zapcore.NewMultiWriteSyncer(zapcore.AddSync(lumberJackLogger), zapcore.AddSync(os.Stdout))
	}
	return zapcore.AddSync(lumberJackLogger)
}
