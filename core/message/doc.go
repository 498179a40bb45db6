// Package message resolves localized messages for error codes.
//
// A Resolver never fails: when no text is configured for a code it returns a placeholder
// of the form "??code_locale??", which IsUnresolved recognizes. Callers use that to fall
// back to their own text.
//
// Catalog is the in-memory Resolver. It is built once from nested message maps and is
// immutable afterwards, so it is safe for concurrent use:
//
//	catalog, err := message.New(
//		message.WithDefaultLanguage(language.English),
//		message.WithMessages(language.English, map[string]any{
//			"api": map[string]any{
//				"errorcode": map[string]any{
//					"404": "Not found",
//				},
//			},
//		}),
//		message.WithMessages(language.German, map[string]any{
//			"api.errorcode.404": "Nicht gefunden",
//		}),
//	)
//
//	catalog.Resolve("api.errorcode.404", language.MustParse("de-CH")) // "Nicht gefunden"
//	catalog.Resolve("api.errorcode.5", language.German)                // "??api.errorcode.5_de??"
//
// Locale fallback goes from the exact tag to its base language, then to the closest
// configured language, then to the default language.
package message
