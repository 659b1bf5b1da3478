package usecasecontract

import "time"

// IConfigProvider exposes the configuration values usecases and handlers need.
type IConfigProvider interface {
	GetAppBaseURL() string
	GetSessionTokenExpiry() time.Duration
	GetCookieSecure() bool
}
