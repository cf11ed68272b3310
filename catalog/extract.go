// Package catalog inspects machine-generated Dart message-catalogue files.
//
// A catalogue file declares a single message-bearing class whose name ends in
// "Messages" together with the list of locale identifiers it supports. The
// input format is trusted and machine-produced, so discovery is a lightweight
// pattern match over the declaration lines rather than a full Dart parse.
package catalog

import (
	"regexp"
	"strings"
	"unicode"
)

const (
	// DefaultMessagesClass is used when no prefix can be derived.
	DefaultMessagesClass = "Messages"

	messagesSuffix = "Messages"
)

// ClassNameInfo holds the class names derived from a catalogue class prefix.
// All names follow fixed suffixing rules; a private catalogue class
// ("_FooMessages") carries its leading underscore into every derived name.
type ClassNameInfo struct {
	Prefix             string
	LocalizationsClass string
	DelegateClass      string
	MessagesClass      string
}

var classDeclRe = regexp.MustCompile(`\bclass\s+([A-Za-z_][A-Za-z0-9_]*)`)

// ExtractClassName scans raw catalogue source for a "class <Prefix>Messages"
// declaration and derives the wrapper class names from it. The second return
// value is false when no such declaration exists; the caller treats that as
// "not applicable", not as an error.
func ExtractClassName(src []byte) (ClassNameInfo, bool) {
	for _, m := range classDeclRe.FindAllSubmatch(src, -1) {
		name := string(m[1])
		if !strings.HasSuffix(name, messagesSuffix) {
			continue
		}
		return fromPrefix(strings.TrimSuffix(name, messagesSuffix)), true
	}
	return ClassNameInfo{}, false
}

// FromBaseName derives class names from a configured base name instead of
// scanning the input. "AppMessages" and "App" both yield the App prefix.
func FromBaseName(base string) ClassNameInfo {
	prefix := strings.TrimSuffix(base, messagesSuffix)
	return fromPrefix(prefix)
}

func fromPrefix(prefix string) ClassNameInfo {
	messages := prefix + messagesSuffix
	if prefix == "" {
		messages = DefaultMessagesClass
	}
	return ClassNameInfo{
		Prefix:             prefix,
		LocalizationsClass: prefix + "Localizations",
		DelegateClass:      prefix + "LocalizationsDelegate",
		MessagesClass:      messages,
	}
}

// Private reports whether the derived names are library-private in Dart.
func (i ClassNameInfo) Private() bool {
	return strings.HasPrefix(i.Prefix, "_")
}

// ExtensionGetter is the BuildContext extension getter name: the
// localizations class name with its first letter lower-cased.
func (i ClassNameInfo) ExtensionGetter() string {
	name := i.LocalizationsClass
	if name == "" {
		return ""
	}
	r := []rune(name)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

var stringLitRe = regexp.MustCompile(`'([^']*)'|"([^"]*)"`)

// ExtractKnownLocales returns the locale identifiers listed in the
// catalogue's knownLocales declaration, or nil when none is present.
// Used for diagnostics only; the generated wrapper reads the list at runtime.
func ExtractKnownLocales(src []byte) []string {
	text := string(src)
	at := strings.Index(text, "knownLocales")
	if at < 0 {
		return nil
	}
	rest := text[at:]
	open := strings.IndexAny(rest, "[{")
	if open < 0 {
		return nil
	}
	closing := strings.IndexAny(rest[open:], "]}")
	if closing < 0 {
		return nil
	}

	var locales []string
	for _, m := range stringLitRe.FindAllStringSubmatch(rest[open:open+closing], -1) {
		if m[1] != "" {
			locales = append(locales, m[1])
		} else if m[2] != "" {
			locales = append(locales, m[2])
		}
	}
	return locales
}
