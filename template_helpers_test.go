package i18n

import (
	"errors"
	"testing"
)

func TestTemplateHelpersTranslate(t *testing.T) {
	translator := newTestTranslator(t,
		WithLocales(Locales{
			"en": {Words: WordTree{"home": WordTree{"title": "Welcome {{name}}"}}},
		}),
		WithDefaultLocale("en"),
	)

	helpers := TemplateHelpers(translator, HelperConfig{})

	translate, ok := helpers["t"].(func(string, ...map[string]any) string)
	if !ok {
		t.Fatalf("translate helper signature mismatch: %T", helpers["t"])
	}

	if got := translate("home.title", map[string]any{"name": "Bob"}); got != "Welcome Bob" {
		t.Fatalf("translate = %q", got)
	}

	// missing keys fall back to the key itself
	if got := translate("unknown"); got != "unknown" {
		t.Fatalf("translate missing = %q", got)
	}
}

func TestTemplateHelpersOnMissing(t *testing.T) {
	translator := newTestTranslator(t,
		WithLocales(Locales{"en": {Words: WordTree{}}}),
		WithDefaultLocale("en"),
	)

	var gotErr error
	helpers := TemplateHelpers(translator, HelperConfig{
		TranslateKey: "translate",
		OnMissing: func(key string, err error) string {
			gotErr = err
			return "missing:" + key
		},
	})

	translate := helpers["translate"].(func(string, ...map[string]any) string)

	if got := translate("nope"); got != "missing:nope" {
		t.Fatalf("translate = %q", got)
	}

	if !errors.Is(gotErr, ErrMissingTranslation) {
		t.Fatalf("unexpected error: %v", gotErr)
	}
}

func TestTemplateHelpersNilTranslator(t *testing.T) {
	helpers := TemplateHelpers(nil, HelperConfig{})

	translate := helpers["t"].(func(string, ...map[string]any) string)
	if got := translate("anything"); got != "anything" {
		t.Fatalf("translate = %q", got)
	}

	locale := helpers["locale"].(func() string)
	if got := locale(); got != "" {
		t.Fatalf("locale = %q", got)
	}
}

func TestTemplateHelpersLocale(t *testing.T) {
	translator := newTestTranslator(t,
		WithLocales(Locales{"es": {Words: WordTree{}}}),
		WithDefaultLocale("es"),
	)

	helpers := TemplateHelpers(translator, HelperConfig{})

	locale := helpers["locale"].(func() string)
	if got := locale(); got != "es" {
		t.Fatalf("locale = %q", got)
	}
}
