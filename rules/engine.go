package rules

import (
	"go.jacobcolvin.com/jsdoc/doccomment"
	"go.jacobcolvin.com/jsdoc/signature"
)

// Engine runs the enabled rules of a [Config].
type Engine struct {
	cfg   *Config
	rules []Rule
}

// NewEngine returns an [Engine] running the rules enabled in cfg.
func NewEngine(cfg *Config) *Engine {
	e := &Engine{cfg: cfg}

	for _, r := range registry {
		if cfg.Enabled(r.Key) {
			e.rules = append(e.rules, r)
		}
	}

	return e
}

// Rules returns the enabled rules in output order.
func (e *Engine) Rules() []Rule {
	out := make([]Rule, len(e.rules))
	copy(out, e.rules)

	return out
}

// Check runs the enabled rules against one function. doc is nil when the
// function has no doc-comment; fn must not be nil.
func (e *Engine) Check(doc *doccomment.DocComment, fn signature.View) []Finding {
	var out []Finding

	for _, r := range e.rules {
		if doc == nil && !r.Undocumented {
			continue
		}

		c := &Context{
			Doc:  doc,
			Func: fn,
			Tags: e.cfg.Tags(),
			Mode: e.cfg.Mode(r.Key),
		}

		for _, f := range r.Check(c) {
			f.RuleID = r.Key
			out = append(out, f)
		}
	}

	return out
}
