package hooks

// Logger interface for structured logging.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// AttachLogging registers built-in observability hooks on r: every
// navigation, fragment load, and composition pass gets a log line. Failed
// fragment loads log at warn level.
func AttachLogging(r *Registry, logger Logger) {
	r.OnNavigate(func(action, path, region string) {
		logger.Info("navigate", "action", action, "path", path, "region", region)
	})
	r.OnFragment(func(region, url string, ok bool) {
		if ok {
			logger.Debug("fragment injected", "region", region, "url", url)
			return
		}
		logger.Warn("fragment load failed", "region", region, "url", url)
	})
	r.OnCompose(func(kind string, rendered int) {
		logger.Info("menu composed", "kind", kind, "rendered", rendered)
	})
}
