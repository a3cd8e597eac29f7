package i18n

import (
	"fmt"
	"maps"
	"sort"
)

// Translator owns a registry of named locales, tracks the active locale and
// resolves dot separated keys into substituted strings.
//
// A Translator is a plain mutable value with no internal locking. Callers
// sharing one instance across goroutines must serialize AddLocale, AddLocales
// and SetLocale against Translate.
type Translator struct {
	locales Locales
	locale  string
	pattern *templatePattern

	hooks          []TranslationHook
	onMissingValue func(locale, key, variable string)
}

// Option mutates a Translator during construction.
type Option func(*Translator) error

// New builds a Translator. Without WithDefaultLocale the instance starts in
// the "no active locale" state and Translate fails until SetLocale succeeds.
// The default locale is not validated against the registry here; a dangling
// name is only detected when Translate runs.
func New(opts ...Option) (*Translator, error) {
	t := &Translator{
		locales: make(Locales),
		pattern: compileDelimiters(DefaultStartDelimiter, DefaultEndDelimiter),
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(t); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// WithLocales seeds the registry. Definitions are held by reference.
func WithLocales(locales Locales) Option {
	return func(t *Translator) error {
		for name, def := range locales {
			t.locales[name] = def
		}
		return nil
	}
}

// WithDefaultLocale activates the named locale immediately, without checking
// that it is registered.
func WithDefaultLocale(name string) Option {
	return func(t *Translator) error {
		t.locale = name
		return nil
	}
}

// WithDelimiters replaces the default "{{" and "}}" placeholder markers.
// The pair is escaped before compilation so regex metacharacters match
// literally, and is fixed for the lifetime of the instance. Empty or
// overlapping delimiters are not rejected; matching is then whatever the
// compiled patterns produce.
func WithDelimiters(start, end string) Option {
	return func(t *Translator) error {
		t.pattern = compileDelimiters(start, end)
		return nil
	}
}

// WithHooks registers translation hooks, run in registration order.
func WithHooks(hooks ...TranslationHook) Option {
	return func(t *Translator) error {
		for _, hook := range hooks {
			if hook == nil {
				continue
			}
			t.hooks = append(t.hooks, hook)
		}
		return nil
	}
}

// WithMissingValueHandler observes template variables that substituted the
// empty string because data carried no value for them. Notification only;
// the substitution policy is unchanged.
func WithMissingValueHandler(handler func(locale, key, variable string)) Option {
	return func(t *Translator) error {
		t.onMissingValue = handler
		return nil
	}
}

// AddLocale registers def under name, overwriting any previous definition.
// The definition is stored by reference and its shape is not validated. The
// active locale pointer is untouched even when name matches the active one;
// a caller holding the old definition keeps it.
func (t *Translator) AddLocale(name string, def *Locale) {
	t.locales[name] = def
}

// AddLocales registers every entry of defs via AddLocale, in map iteration
// order.
func (t *Translator) AddLocales(defs Locales) {
	for name, def := range defs {
		t.AddLocale(name, def)
	}
}

// Load registers every locale produced by loader.
func (t *Translator) Load(loader Loader) error {
	if loader == nil {
		return nil
	}

	locales, err := loader.Load()
	if err != nil {
		return err
	}

	t.AddLocales(locales)
	return nil
}

// SetLocale activates the named locale. Unknown names fail with
// ErrLocaleNotFound and leave the active locale unchanged.
func (t *Translator) SetLocale(name string) error {
	if _, ok := t.locales[name]; !ok {
		return fmt.Errorf("%w: %q", ErrLocaleNotFound, name)
	}
	t.locale = name
	return nil
}

// Locale returns the active locale name, empty when none is set.
func (t *Translator) Locale() string {
	return t.locale
}

// CurrentLocale returns the active locale definition, nil when no valid
// locale is active.
func (t *Translator) CurrentLocale() *Locale {
	if t.locale == "" {
		return nil
	}
	return t.locales[t.locale]
}

// Words returns the active locale's word tree, nil when no locale is active.
func (t *Translator) Words() WordTree {
	if current := t.CurrentLocale(); current != nil {
		return current.Words
	}
	return nil
}

// Converters returns the active locale's converter namespace, nil when no
// locale is active. The translator never invokes these itself.
func (t *Translator) Converters() map[string]Converter {
	if current := t.CurrentLocale(); current != nil {
		return current.Converters
	}
	return nil
}

// Locales returns the sorted registered locale names.
func (t *Translator) Locales() []string {
	if len(t.locales) == 0 {
		return nil
	}

	out := make([]string, 0, len(t.locales))
	for name := range t.locales {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Translate resolves key in the active locale's word tree and substitutes
// every placeholder with its value from data. Multiple data maps merge
// shallowly, later maps winning. A variable absent from data substitutes the
// empty string; that is never an error. Every call resolves from scratch,
// nothing is cached.
func (t *Translator) Translate(key string, data ...map[string]any) (string, error) {
	ctx := &HookContext{Locale: t.locale, Key: key, Data: mergeData(data)}
	for _, hook := range t.hooks {
		hook.BeforeTranslate(ctx)
	}

	ctx.Result, ctx.Err = t.translate(ctx.Key, ctx.Data)

	for _, hook := range t.hooks {
		hook.AfterTranslate(ctx)
	}

	return ctx.Result, ctx.Err
}

func (t *Translator) translate(key string, data map[string]any) (string, error) {
	current := t.CurrentLocale()
	if current == nil {
		return "", ErrNoActiveLocale
	}

	value, ok := resolvePath(current.Words, key)
	if !ok || falsy(value) {
		return "", fmt.Errorf("%w: %q in locale %q", ErrMissingTranslation, key, t.locale)
	}

	template, ok := value.(string)
	if !ok {
		// Lookup is permissive, format is strict: a key addressing a subtree
		// is only rejected here.
		return "", fmt.Errorf("%w: %q resolves to %T", ErrInvalidTemplate, key, value)
	}

	var onMissing func(variable string)
	if t.onMissingValue != nil {
		onMissing = func(variable string) {
			t.onMissingValue(t.locale, key, variable)
		}
	}

	return t.pattern.render(template, data, onMissing), nil
}

// falsy reports whether a resolved leaf counts as undefined: nil, the empty
// string and scalar zero values all yield a missing translation.
func falsy(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case bool:
		return !v
	case int:
		return v == 0
	case int64:
		return v == 0
	case float64:
		return v == 0
	}
	return false
}

func mergeData(data []map[string]any) map[string]any {
	switch len(data) {
	case 0:
		return nil
	case 1:
		return data[0]
	}

	merged := make(map[string]any)
	for _, m := range data {
		maps.Copy(merged, m)
	}
	return merged
}
