package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

var (
	jwtPattern       = regexp.MustCompile(`^eyJ[A-Za-z0-9_-]*\.eyJ[A-Za-z0-9_-]*\.[A-Za-z0-9_-]*$`)
	bearerPattern    = regexp.MustCompile(`(?i)^bearer\s+.+$`)
	basicAuthPattern = regexp.MustCompile(`(?i)^basic\s+.+$`)
)

// redactedFields are attribute names whose values never reach the logs.
// The blog has no auth of its own, but request headers forwarded by a
// proxy (cookies, authorization) can still end up in request logs.
var redactedFields = []string{
	"password",
	"secret",
	"token",
	"apiKey", "apikey", "api_key",
	"accessToken", "access_token",
	"refreshToken", "refresh_token",
	"credential", "credentials",
	"authorization", "auth", "bearer",
	"cookie", "session",
	"privateKey", "private_key",
	"secretKey", "secret_key",
}

// DefaultRedactOptions returns the masq options applied to every handler.
func DefaultRedactOptions() []masq.Option {
	opts := make([]masq.Option, 0, len(redactedFields)+5)
	for _, name := range redactedFields {
		opts = append(opts, masq.WithFieldName(name))
	}

	return append(opts,
		masq.WithFieldPrefix("secret"),
		masq.WithFieldPrefix("private"),
		masq.WithRegex(jwtPattern),
		masq.WithRegex(bearerPattern),
		masq.WithRegex(basicAuthPattern),
	)
}

// NewReplaceAttr returns a slog ReplaceAttr func that redacts secrets.
// Extra masq options are appended to the defaults.
func NewReplaceAttr(opts ...masq.Option) func(groups []string, a slog.Attr) slog.Attr {
	return masq.New(append(DefaultRedactOptions(), opts...)...)
}
