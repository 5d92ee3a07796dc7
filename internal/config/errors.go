package config

import "github.com/atlanticdynamic/greeter/internal/config/errz"

// Aliases for the errz sentinels most callers outside this package need.
var (
	ErrFailedToLoadConfig     = errz.ErrFailedToLoadConfig
	ErrFailedToValidateConfig = errz.ErrFailedToValidateConfig
	ErrUnsupportedConfigVer   = errz.ErrUnsupportedConfigVer
)
