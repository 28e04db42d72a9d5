// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 VineVault

// Package locale implements the locale registry and the path normalization
// rules used by the navigation middleware and the language switcher.
//
// Every application path may carry a two-letter locale code as its first
// segment. The default locale is special: its code never appears as a
// prefix, so "/it/dashboard" normalizes to "/dashboard" while "/de/dashboard"
// stays as-is. Normalization is idempotent.
package locale

import "strings"

// Direction is the text direction of a locale.
type Direction string

const (
	DirectionLTR Direction = "ltr"
	DirectionRTL Direction = "rtl"
)

// Locale describes one supported display language. Locales are statically
// defined at build time and never mutated at runtime.
type Locale struct {
	Code       string    `json:"code"`
	Name       string    `json:"name"`
	NativeName string    `json:"native_name"`
	Direction  Direction `json:"direction"`
	Default    bool      `json:"default"`
}

// supported is the fixed registry. Exactly one entry has Default set.
var supported = []Locale{
	{Code: "it", Name: "Italian", NativeName: "Italiano", Direction: DirectionLTR, Default: true},
	{Code: "en", Name: "English", NativeName: "English", Direction: DirectionLTR},
	{Code: "de", Name: "German", NativeName: "Deutsch", Direction: DirectionLTR},
	{Code: "zh", Name: "Chinese", NativeName: "中文", Direction: DirectionLTR},
	{Code: "ja", Name: "Japanese", NativeName: "日本語", Direction: DirectionLTR},
	{Code: "ru", Name: "Russian", NativeName: "Русский", Direction: DirectionLTR},
	{Code: "ar", Name: "Arabic", NativeName: "العربية", Direction: DirectionRTL},
}

// Supported returns a copy of the locale registry in declaration order.
func Supported() []Locale {
	out := make([]Locale, len(supported))
	copy(out, supported)
	return out
}

// Default returns the default locale.
func Default() Locale {
	for _, l := range supported {
		if l.Default {
			return l
		}
	}
	// the registry always declares a default
	return supported[0]
}

// Get looks up a locale by code. The second return value reports whether the
// code is supported.
func Get(code string) (Locale, bool) {
	for _, l := range supported {
		if l.Code == code {
			return l, true
		}
	}
	return Locale{}, false
}

// Split separates the locale prefix from the rest of the path.
//
// The returned rest always starts with "/". When path carries no recognized
// prefix, the default locale is returned. A default-locale prefix is also
// recognized and stripped, so Split("/it/x") and Split("/x") agree on rest.
func Split(path string) (Locale, string) {
	if path == "" || path == "/" {
		return Default(), "/"
	}

	trimmed := strings.TrimPrefix(path, "/")
	first, rest, found := strings.Cut(trimmed, "/")
	if l, ok := Get(first); ok {
		if !found || rest == "" {
			return l, "/"
		}
		return l, "/" + rest
	}

	return Default(), ensureLeadingSlash(path)
}

// Normalize returns the canonical form of path: a locale prefix for every
// non-default locale, no prefix for the default one. Running Normalize on an
// already-canonical path returns it unchanged.
func Normalize(path string) string {
	l, rest := Split(path)
	return PathFor(l.Code, rest)
}

// PathFor builds the canonical path for the given locale code and bare path.
// Unsupported codes fall back to the default locale rather than erroring.
func PathFor(code, rest string) string {
	rest = ensureLeadingSlash(rest)

	l, ok := Get(code)
	if !ok {
		l = Default()
	}
	if l.Default {
		return rest
	}
	if rest == "/" {
		return "/" + l.Code
	}
	return "/" + l.Code + rest
}

// SwitchPath re-targets an inbound path at a different locale, preserving the
// locale-bare remainder. Used by the language switcher.
func SwitchPath(path, targetCode string) string {
	_, rest := Split(path)
	return PathFor(targetCode, rest)
}

func ensureLeadingSlash(p string) string {
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		return "/" + p
	}
	return p
}
