package service

import "github.com/ngocdev/portfolio-api/internal/i18n"

// localized selects the field variant for the requested language.
func localized(lang, vi, en string) string {
	if lang == i18n.LocaleEN {
		return en
	}
	return vi
}

// localizedPtr selects the optional field variant for the requested
// language; absent variants stay nil.
func localizedPtr(lang string, vi, en *string) *string {
	if lang == i18n.LocaleEN {
		return en
	}
	return vi
}
