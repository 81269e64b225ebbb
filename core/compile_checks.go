package core

import (
	glog "github.com/goliatone/go-logger/glog"
	"github.com/goliatone/go-stayhooks/transport"
)

var (
	_ WebhookManager = (*Client)(nil)
	_ WebhookInvoker = (*Client)(nil)

	_ transport.Adapter = (*transport.JSONAdapter)(nil)

	_ Logger         = glog.Nop()
	_ LoggerProvider = glog.ProviderFromLogger(glog.Nop())
)
