package config

const (
	defaultR2Dir             = "~/.local/share/qariee/r2"
	defaultStagingDir        = "~/.local/share/qariee/staging"
	defaultLogDir            = "~/.local/share/qariee/logs"
	defaultAppAssetsDir      = "~/.local/share/qariee/app-assets"
	defaultCDNBaseURL        = "https://qariee-storage.y3f.me"
	defaultStoreBucket       = "qariee"
	defaultStoreBinary       = "wrangler"
	defaultMaxRetries        = 3
	defaultRetryDelaySeconds = 2
	defaultTimeoutSeconds    = 60
	defaultVerifyConcurrency = 10
	defaultVerifyTimeout     = 5
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			R2Dir:        defaultR2Dir,
			StagingDir:   defaultStagingDir,
			LogDir:       defaultLogDir,
			AppAssetsDir: defaultAppAssetsDir,
		},
		CDN: CDN{
			BaseURL: defaultCDNBaseURL,
		},
		Store: Store{
			Bucket: defaultStoreBucket,
			Binary: defaultStoreBinary,
		},
		Transfer: Transfer{
			MaxRetries:        defaultMaxRetries,
			RetryDelaySeconds: defaultRetryDelaySeconds,
			TimeoutSeconds:    defaultTimeoutSeconds,
		},
		Verify: Verify{
			Concurrency:    defaultVerifyConcurrency,
			TimeoutSeconds: defaultVerifyTimeout,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
