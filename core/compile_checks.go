package core

import glog "github.com/goliatone/go-logger/glog"

var (
	_ Notifier        = (*Broadcaster)(nil)
	_ LoginRedirector = NopLoginRedirector{}
	_ MetricsRecorder = NopMetricsRecorder{}
	_ ConfigProvider  = (*CfgxConfigProvider)(nil)
	_ OptionsResolver = GoOptionsResolver{}
	_ RawConfigLoader = staticRawConfigLoader{}

	_ Logger         = glog.Nop()
	_ LoggerProvider = glog.ProviderFromLogger(glog.Nop())
)
