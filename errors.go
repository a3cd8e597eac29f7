package i18n

import "errors"

// ErrLocaleNotFound indicates SetLocale was called with an unregistered name.
var ErrLocaleNotFound = errors.New("i18n: locale not found")

// ErrNoActiveLocale indicates Translate was called with no valid active locale.
var ErrNoActiveLocale = errors.New("i18n: no active locale")

// ErrMissingTranslation indicates that a key did not resolve to a defined
// value under the active locale's word tree.
var ErrMissingTranslation = errors.New("i18n: missing translation")

// ErrInvalidTemplate indicates that a key resolved to a subtree rather than a
// leaf template string.
var ErrInvalidTemplate = errors.New("i18n: translation is not a string")
