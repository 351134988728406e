package systems

import "go.uber.org/zap"

var logger = zap.NewNop().Sugar()

// SetLogger replaces the logger used by all systems. A nil logger disables logging.
func SetLogger(l *zap.SugaredLogger) {
	if l == nil {
		l = zap.NewNop().Sugar()
	}
	logger = l
}
