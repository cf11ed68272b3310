package gen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intlwrap/intlwrap/catalog"
	"github.com/intlwrap/intlwrap/config"
)

func exampleInfo(t *testing.T) catalog.ClassNameInfo {
	t.Helper()
	info, ok := catalog.ExtractClassName([]byte("class ExampleMessages {}\n"))
	require.True(t, ok)
	return info
}

func TestBuildLibraryDelegateOrder(t *testing.T) {
	lib := BuildLibrary(exampleInfo(t), config.Default(), "intl_en.g.dart")

	require.NotEmpty(t, lib.Classes)
	delegates := lib.Classes[0].Fields[0]
	assert.Equal(t, "localizationsDelegates", delegates.Name)

	// This delegate first, then material, cupertino, widgets. The order is
	// load-precedence sensitive in the consuming framework.
	value := delegates.Value
	positions := []int{
		strings.Index(value, "delegate,"),
		strings.Index(value, "GlobalMaterialLocalizations.delegate"),
		strings.Index(value, "GlobalCupertinoLocalizations.delegate"),
		strings.Index(value, "GlobalWidgetsLocalizations.delegate"),
	}
	for i, pos := range positions {
		require.GreaterOrEqual(t, pos, 0, "delegate %d missing from %q", i, value)
		if i > 0 {
			assert.Greater(t, pos, positions[i-1], "delegate %d out of order in %q", i, value)
		}
	}
}

func TestBuildLibraryLocalizationsMembers(t *testing.T) {
	lib := BuildLibrary(exampleInfo(t), config.Default(), "intl_en.g.dart")

	loc := lib.Classes[0]
	assert.Equal(t, "ExampleLocalizations", loc.Name)

	require.Len(t, loc.Fields, 2)
	assert.Equal(t, "delegate", loc.Fields[1].Name)
	assert.True(t, loc.Fields[1].Static)
	assert.True(t, loc.Fields[1].Const)
	assert.Equal(t, "ExampleLocalizationsDelegate", loc.Fields[1].Type)

	require.Len(t, loc.Methods, 2)
	supported := loc.Methods[0]
	assert.Equal(t, "supportedLocales", supported.Name)
	assert.True(t, supported.Getter)
	assert.Contains(t, supported.Body, "indexOf('_')", "split on the first underscore")
	assert.Contains(t, supported.Body, "ExampleMessages.knownLocales")

	of := loc.Methods[1]
	assert.Equal(t, "of", of.Name)
	assert.Equal(t, "ExampleMessages?", of.Returns, "lookup is nullable")
	assert.Equal(t, "Localizations.of<ExampleMessages>(context, ExampleMessages)", of.Body)
}

func TestBuildLibraryDelegateContract(t *testing.T) {
	lib := BuildLibrary(exampleInfo(t), config.Default(), "intl_en.g.dart")

	del := lib.Classes[1]
	assert.Equal(t, "ExampleLocalizationsDelegate", del.Name)
	assert.Equal(t, "LocalizationsDelegate<ExampleMessages>", del.Extends)
	assert.True(t, del.ConstCtor)

	require.Len(t, del.Methods, 3)

	isSupported := del.Methods[0]
	assert.Equal(t, "isSupported", isSupported.Name)
	assert.True(t, isSupported.Override)
	assert.Equal(t, "ExampleMessages.knownLocales.contains(locale.toString())", isSupported.Body)

	load := del.Methods[1]
	assert.Equal(t, "load", load.Name)
	assert.True(t, load.Async)
	assert.Contains(t, load.Body, "await messages.loadLocale(locale.toString());")
	assert.Contains(t, load.Body, "return messages;")

	shouldReload := del.Methods[2]
	assert.Equal(t, "shouldReload", shouldReload.Name)
	assert.Equal(t, "false", shouldReload.Body, "hot reload never replaces a loaded instance")
	require.Len(t, shouldReload.Params, 1)
	assert.Equal(t, "ExampleLocalizationsDelegate", shouldReload.Params[0].Type)
}

func TestBuildLibrarySingletonAndExtension(t *testing.T) {
	lib := BuildLibrary(exampleInfo(t), config.Default(), "intl_en.g.dart")

	require.Len(t, lib.Fields, 1)
	messages := lib.Fields[0]
	assert.Equal(t, "messages", messages.Name)
	assert.True(t, messages.Final)
	assert.Equal(t, "ExampleMessages(rootBundle.loadString, const IntlLocaleAdapter())", messages.Value)

	require.Len(t, lib.Extensions, 1)
	ext := lib.Extensions[0]
	assert.Equal(t, "BuildContext", ext.On)
	assert.Equal(t, "exampleLocalizations", ext.Getter)
	assert.Equal(t, "ExampleLocalizations.of(this)", ext.Value)
}

func TestBuildLibraryPrivatePrefixSkipsExtension(t *testing.T) {
	info, ok := catalog.ExtractClassName([]byte("class _AppMessages {}\n"))
	require.True(t, ok)

	lib := BuildLibrary(info, config.Default(), "intl_en.g.dart")
	assert.Empty(t, lib.Extensions)
	assert.Equal(t, "_AppLocalizationsDelegate", lib.Classes[1].Name)
}

func TestBuildLibrarySelfImportByFileName(t *testing.T) {
	lib := BuildLibrary(exampleInfo(t), config.Default(), "intl_en.g.dart")
	assert.Equal(t, []string{"intl_en.g.dart"}, lib.RelativeImports)
}
