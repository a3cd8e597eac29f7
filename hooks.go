package i18n

// TranslationHook observes every Translate call.
type TranslationHook interface {
	BeforeTranslate(ctx *HookContext)
	AfterTranslate(ctx *HookContext)
}

// HookContext carries per-call state through registered hooks. Before hooks
// may rewrite Key or Data before resolution runs; after hooks may rewrite
// Result or Err before they reach the caller.
type HookContext struct {
	Locale string
	Key    string
	Data   map[string]any
	Result string
	Err    error
}

// TranslationHookFuncs adapts bare functions to the TranslationHook
// interface. Either field may be nil.
type TranslationHookFuncs struct {
	Before func(ctx *HookContext)
	After  func(ctx *HookContext)
}

var _ TranslationHook = TranslationHookFuncs{}

func (h TranslationHookFuncs) BeforeTranslate(ctx *HookContext) {
	if h.Before != nil {
		h.Before(ctx)
	}
}

func (h TranslationHookFuncs) AfterTranslate(ctx *HookContext) {
	if h.After != nil {
		h.After(ctx)
	}
}
