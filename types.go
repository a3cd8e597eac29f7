package i18n

// WordTree is a nested mapping from key segment to either another subtree or
// a leaf template string. Subtrees decoded from locale files arrive as plain
// map[string]any values; both shapes resolve the same way.
type WordTree map[string]any

// Converter transforms a value before display (currency, temperature and the
// like). The namespace is carried on each locale for callers; the translator
// itself never invokes converters.
type Converter func(value any) any

// Locale is a single locale definition: the translatable word tree plus the
// converter namespace.
type Locale struct {
	Words      WordTree
	Converters map[string]Converter
}

// Locales maps locale name to definition. Definitions are held by reference,
// never deep copied.
type Locales map[string]*Locale
