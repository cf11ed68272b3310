package gen

import (
	"fmt"

	"github.com/intlwrap/intlwrap/catalog"
	"github.com/intlwrap/intlwrap/config"
)

// Modules the wrapper depends on. The self-import of the catalogue file is
// added per request, by file name only, so the wrapper can be colocated.
const (
	importWidgets       = "package:flutter/widgets.dart"
	importServices      = "package:flutter/services.dart"
	importLocalizations = "package:flutter_localizations/flutter_localizations.dart"
	importLocaleAdapter = "package:intl/locale_adapter.dart"
)

// Framework-provided default delegates. The consuming framework resolves
// lookups in list order, so this exact order must be preserved.
var frameworkDelegates = []string{
	"GlobalMaterialLocalizations.delegate",
	"GlobalCupertinoLocalizations.delegate",
	"GlobalWidgetsLocalizations.delegate",
}

// BuildLibrary assembles the wrapper document model for the given class
// names and options. selfImport is the catalogue file name the wrapper
// imports to reach the messages class.
func BuildLibrary(info catalog.ClassNameInfo, opts config.Options, selfImport string) *Library {
	loc := info.LocalizationsClass
	del := info.DelegateClass
	msg := info.MessagesClass

	lib := &Library{
		Header: opts.Header,
		PackageImports: []string{
			importLocaleAdapter,
			importWidgets,
			importServices,
			importLocalizations,
		},
		RelativeImports: []string{selfImport},
	}

	lib.Classes = append(lib.Classes, buildLocalizationsClass(loc, del, msg))
	lib.Classes = append(lib.Classes, buildDelegateClass(del, msg))

	lib.Fields = append(lib.Fields, Field{
		Name:  "messages",
		Type:  msg,
		Final: true,
		Value: fmt.Sprintf("%s(rootBundle.loadString, const IntlLocaleAdapter())", msg),
	})

	// Private wrapper classes cannot be reached through an extension getter,
	// so the extension point only exists for public naming.
	if !info.Private() {
		lib.Extensions = append(lib.Extensions, Extension{
			Name:    loc + "Context",
			On:      "BuildContext",
			Getter:  info.ExtensionGetter(),
			Returns: msg + "?",
			Value:   loc + ".of(this)",
		})
	}

	return lib
}

func buildLocalizationsClass(loc, del, msg string) Class {
	delegates := "[delegate"
	for _, d := range frameworkDelegates {
		delegates += ", " + d
	}
	delegates += "]"

	return Class{
		Name: loc,
		Fields: []Field{
			{
				Name:   "localizationsDelegates",
				Type:   "List<LocalizationsDelegate<dynamic>>",
				Static: true,
				Const:  true,
				Value:  delegates,
			},
			{
				Name:   "delegate",
				Type:   del,
				Static: true,
				Const:  true,
				Value:  del + "()",
			},
		},
		Methods: []Method{
			{
				Name:       "supportedLocales",
				Static:     true,
				Getter:     true,
				Expression: true,
				Returns:    "List<Locale>",
				Body:       supportedLocalesExpr(msg),
			},
			{
				Name:       "of",
				Static:     true,
				Expression: true,
				Params:     []Param{{Name: "context", Type: "BuildContext"}},
				Returns:    msg + "?",
				Body:       fmt.Sprintf("Localizations.of<%s>(context, %s)", msg, msg),
			},
		},
	}
}

func buildDelegateClass(del, msg string) Class {
	return Class{
		Name:      del,
		Extends:   fmt.Sprintf("LocalizationsDelegate<%s>", msg),
		ConstCtor: true,
		Methods: []Method{
			{
				Name:       "isSupported",
				Override:   true,
				Expression: true,
				Params:     []Param{{Name: "locale", Type: "Locale"}},
				Returns:    "bool",
				Body:       fmt.Sprintf("%s.knownLocales.contains(locale.toString())", msg),
			},
			{
				Name:     "load",
				Override: true,
				Async:    true,
				Params:   []Param{{Name: "locale", Type: "Locale"}},
				Returns:  fmt.Sprintf("Future<%s>", msg),
				Body:     "await messages.loadLocale(locale.toString());\nreturn messages;",
			},
			{
				Name:       "shouldReload",
				Override:   true,
				Expression: true,
				Params:     []Param{{Name: "old", Type: del}},
				Returns:    "bool",
				Body:       "false",
			},
		},
	}
}

// supportedLocalesExpr maps the catalogue's locale identifiers into Locale
// values, splitting each identifier on its first underscore so that "pt_BR"
// becomes Locale('pt', 'BR') and "en" becomes Locale('en').
func supportedLocalesExpr(msg string) string {
	return fmt.Sprintf("%s.knownLocales"+
		".map((id) => id.contains('_')"+
		" ? Locale(id.substring(0, id.indexOf('_')), id.substring(id.indexOf('_') + 1))"+
		" : Locale(id))"+
		".toList()", msg)
}
