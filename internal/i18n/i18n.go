// Package i18n resolves the request language and localizes
// client-facing messages. Content localization (vi/en column
// selection) lives in the service layer; this package only covers
// the API's own messages.
package i18n

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	LocaleVI = "vi"
	LocaleEN = "en"
)

// DefaultLocale is Vietnamese, matching the site's primary audience.
const DefaultLocale = LocaleVI

// Normalize maps a raw language value onto a supported locale.
func Normalize(lang string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(lang)) {
	case LocaleVI:
		return LocaleVI, true
	case LocaleEN:
		return LocaleEN, true
	default:
		return "", false
	}
}

// NormalizeOrDefault maps a raw language value onto a supported
// locale, defaulting to Vietnamese. Used for content projection,
// where only the explicit lang parameter counts.
func NormalizeOrDefault(lang string) string {
	if locale, ok := Normalize(lang); ok {
		return locale
	}
	return DefaultLocale
}

// ResolveLocale picks the locale for a request: the lang query
// parameter wins, then the Accept-Language header, then the default.
func ResolveLocale(c *gin.Context) string {
	if c == nil {
		return DefaultLocale
	}
	if locale, ok := Normalize(c.Query("lang")); ok {
		return locale
	}
	header := c.GetHeader("Accept-Language")
	for _, part := range strings.Split(header, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if idx := strings.IndexByte(tag, '-'); idx > 0 {
			tag = tag[:idx]
		}
		if locale, ok := Normalize(tag); ok {
			return locale
		}
	}
	return DefaultLocale
}

// T returns the localized message for key, falling back to the
// default locale and then to the key itself.
func T(locale, key string) string {
	entry, ok := messages[key]
	if !ok {
		return key
	}
	if msg, ok := entry[locale]; ok {
		return msg
	}
	if msg, ok := entry[DefaultLocale]; ok {
		return msg
	}
	return key
}

// Sprintf formats the localized message for key with args.
func Sprintf(locale, key string, args ...interface{}) string {
	return fmt.Sprintf(T(locale, key), args...)
}
