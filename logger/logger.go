package logger

// Logger is the logging interface used by the AppsFlyer client.
// Plug in any implementation (zap, logrus, standard log) or keep the
// default Noop to disable logging entirely.
//
// The client logs:
// - a warning when the application id looks like a bare iOS id
// - every AppsFlyer response (status and body) at debug level
//
// Usage Example:
//
//	client := appsflyer_go.NewClient(appId, devKey, appsflyer_go.WithLogger(myLogger))
//
//	// zap users
//	client := appsflyer_go.NewClient(appId, devKey, appsflyer_go.WithLogger(logger.NewZap(zapLogger)))
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}
