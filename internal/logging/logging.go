package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	formatter "github.com/antonfisher/nested-logrus-formatter"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New builds the service logger: leveled logrus output to stderr plus a
// rotated file under dir. An empty dir disables the file sink (tests).
func New(dir, level string) *logrus.Logger {
	logger := logrus.New()

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)

	logger.SetFormatter(&formatter.Formatter{
		TimestampFormat: "2006-01-02 15:04:05",
		HideKeys:        false,
		NoColors:        true,
	})

	writers := []io.Writer{os.Stderr}
	if dir != "" {
		fileWriter := &lumberjack.Logger{
			Filename:   filepath.Join(dir, "wakeguard-"+time.Now().Format("2006-01-02")+".log"),
			LocalTime:  true,
			Compress:   true,
			MaxSize:    100,
			MaxAge:     7,
			MaxBackups: 3,
		}
		writers = append(writers, fileWriter)
	}
	logger.SetOutput(io.MultiWriter(writers...))

	return logger
}
