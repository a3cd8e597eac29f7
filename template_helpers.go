package i18n

// HelperConfig configures template helper exports
type HelperConfig struct {
	// TranslateKey names the translate helper, "t" when empty.
	TranslateKey string
	// OnMissing supplies the rendered value when translation fails.
	// Defaults to returning the key itself.
	OnMissing func(key string, err error) string
}

// TemplateHelpers exposes translator helpers for use as template funcs. The
// translate helper swallows errors through OnMissing so templates never
// abort on a missing key.
func TemplateHelpers(t *Translator, cfg HelperConfig) map[string]any {
	translateKey := cfg.TranslateKey
	if translateKey == "" {
		translateKey = "t"
	}

	onMissing := cfg.OnMissing
	if onMissing == nil {
		onMissing = func(key string, _ error) string {
			return key
		}
	}

	return map[string]any{
		translateKey: func(key string, data ...map[string]any) string {
			if t == nil {
				return onMissing(key, ErrNoActiveLocale)
			}
			result, err := t.Translate(key, data...)
			if err != nil {
				return onMissing(key, err)
			}
			return result
		},
		"locale": func() string {
			if t == nil {
				return ""
			}
			return t.Locale()
		},
	}
}
