// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 VineVault

package locale

import (
	"golang.org/x/text/language"
)

// matcher is built once from the registry; the default locale comes first so
// it wins ties during matching.
var matcher = language.NewMatcher(supportedTags())

func supportedTags() []language.Tag {
	tags := make([]language.Tag, 0, len(supported))
	tags = append(tags, language.Make(Default().Code))
	for _, l := range supported {
		if l.Default {
			continue
		}
		tags = append(tags, language.Make(l.Code))
	}
	return tags
}

// DetectFromHeader picks the best supported locale for an Accept-Language
// header value. An empty or unparsable header yields the default locale.
//
// Detection is behind a configuration toggle and is disabled in the shipped
// configuration; the router then always assumes the default locale for
// unprefixed paths.
func DetectFromHeader(acceptLanguage string) Locale {
	if acceptLanguage == "" {
		return Default()
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Default()
	}

	_, index, conf := matcher.Match(tags...)
	if conf == language.No {
		return Default()
	}

	// matcher indexes follow the order of supportedTags: default first,
	// then the remaining registry entries in declaration order.
	ordered := orderedByMatcher()
	if index < 0 || index >= len(ordered) {
		return Default()
	}
	return ordered[index]
}

func orderedByMatcher() []Locale {
	out := make([]Locale, 0, len(supported))
	out = append(out, Default())
	for _, l := range supported {
		if l.Default {
			continue
		}
		out = append(out, l)
	}
	return out
}
