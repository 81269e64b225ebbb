package core

import (
	"context"
	"strings"

	glog "github.com/goliatone/go-logger/glog"
	"github.com/goliatone/go-stayhooks/transport"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// Client wraps the StayHere webhook HTTP API. Configuration is resolved once
// in NewClient and read-only afterwards, so a Client is safe for concurrent use
// whenever its transport is.
type Client struct {
	config          Config
	baseURL         string
	apiPrefix       string
	logger          Logger
	loggerProvider  LoggerProvider
	metricsRecorder MetricsRecorder
	errorMapper     ErrorMapper
	configProvider  ConfigProvider
	optionsResolver OptionsResolver
	transport       transport.Adapter
	rateLimiter     *rate.Limiter
	requestID       func() string
}

type ClientDependencies struct {
	Logger          Logger
	LoggerProvider  LoggerProvider
	MetricsRecorder MetricsRecorder
	ErrorMapper     ErrorMapper
	ConfigProvider  ConfigProvider
	OptionsResolver OptionsResolver
	Transport       transport.Adapter
	RateLimiter     *rate.Limiter
}

func NewClient(cfg Config, opts ...Option) (*Client, error) {
	builder := defaultClientBuilder(cfg)
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&builder)
	}

	provider, logger := glog.Resolve(loggerName, builder.loggerProvider, builder.logger)
	logger = glog.Ensure(logger)
	if provider != nil {
		if named := provider.GetLogger(loggerName); named != nil {
			logger = glog.Ensure(named)
		}
	}

	if builder.metricsRecorder == nil {
		builder.metricsRecorder = NopMetricsRecorder{}
	}
	if builder.errorMapper == nil {
		builder.errorMapper = defaultErrorMapper
	}
	if builder.configProvider == nil {
		builder.configProvider = NewCfgxConfigProvider(nil)
	}
	if builder.optionsResolver == nil {
		builder.optionsResolver = GoOptionsResolver{}
	}
	if builder.requestID == nil {
		builder.requestID = newRequestID
	}

	defaults := DefaultConfig()
	loaded, err := builder.configProvider.Load(context.Background(), defaults)
	if err != nil {
		return nil, mapBuildError(builder.errorMapper, err)
	}
	finalConfig, err := builder.optionsResolver.Resolve(defaults, loaded, builder.runtimeConfig)
	if err != nil {
		return nil, mapBuildError(builder.errorMapper, err)
	}
	if strings.TrimSpace(finalConfig.Bullet) == "" {
		finalConfig.Bullet = DefaultBullet
	}

	adapter := builder.transport
	if adapter == nil {
		adapter = transport.NewJSONAdapter(builder.httpClient).
			WithResponseBodyLimit(finalConfig.MaxResponseBodyBytes)
	}

	return &Client{
		config:          finalConfig,
		baseURL:         strings.TrimRight(strings.TrimSpace(finalConfig.BaseURL), "/"),
		apiPrefix:       NormalizeAPIPrefix(finalConfig.ResolvedAPIPrefix()),
		logger:          logger,
		loggerProvider:  provider,
		metricsRecorder: builder.metricsRecorder,
		errorMapper:     builder.errorMapper,
		configProvider:  builder.configProvider,
		optionsResolver: builder.optionsResolver,
		transport:       adapter,
		rateLimiter:     builder.rateLimiter,
		requestID:       builder.requestID,
	}, nil
}

func mapBuildError(mapper ErrorMapper, err error) error {
	if err == nil {
		return nil
	}
	if mapper == nil {
		return err
	}
	mapped := mapper(err)
	if mapped == nil {
		return err
	}
	return mapped
}

func (c *Client) Config() Config {
	if c == nil {
		return Config{}
	}
	cfg := c.config
	cfg.APIPrefix = APIPrefix(c.config.ResolvedAPIPrefix())
	return cfg
}

func (c *Client) Dependencies() ClientDependencies {
	if c == nil {
		return ClientDependencies{}
	}
	return ClientDependencies{
		Logger:          c.logger,
		LoggerProvider:  c.loggerProvider,
		MetricsRecorder: c.metricsRecorder,
		ErrorMapper:     c.errorMapper,
		ConfigProvider:  c.configProvider,
		OptionsResolver: c.optionsResolver,
		Transport:       c.transport,
		RateLimiter:     c.rateLimiter,
	}
}

func (c *Client) mapError(err error) error {
	if err == nil {
		return nil
	}
	if c == nil || c.errorMapper == nil {
		return err
	}
	mapped := c.errorMapper(err)
	if mapped == nil {
		return err
	}
	return mapped
}

func newRequestID() string {
	return uuid.NewString()
}
