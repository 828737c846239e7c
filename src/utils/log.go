package utils

import "go.uber.org/zap"

// NewVerboseLogger returns a SugaredLogger writing development-formatted
// diagnostics to stderr when verbose is true, or a no-op logger otherwise.
// This channel is strictly additional: the protocol result on stdout and the
// single-line error on stderr never go through it.
func NewVerboseLogger(verbose bool) *zap.SugaredLogger {
	if !verbose {
		return zap.NewNop().Sugar()
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return logger.Sugar()
}
