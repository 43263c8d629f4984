package fold

import (
	"context"

	pool "github.com/jolestar/go-commons-pool"
	"golang.org/x/text/unicode/norm"
)

// Fold applies the table's rules to a word's raw token stream and
// returns the normalized tokens plus the raw symbols no rule covered.
//
// The scan is greedy longest-match, left to right: at each position
// the widest rule key that is a prefix of the remaining stream wins
// and the cursor advances past the matched span. A position no rule
// matches emits the single raw token unchanged, so folding never drops
// input; such passthroughs are collected in unmapped (and traced) as
// they indicate an incomplete folding table.
//
// With splitTones set, a symbol carrying an attached Chao tone-letter
// run emits the tone as a separate trailing token; otherwise the tone
// stays fused onto the symbol. All emitted tokens are NFC-composed.
//
// Fold is a pure function of (tokens, table, splitTones) and safe for
// concurrent use on a shared Table.
func (t *Table) Fold(tokens []string, splitTones bool) (folded, unmapped []string) {
	m := borrowMatcher()
	defer m.release()
	i := 0
	for i < len(tokens) {
		if n, out := t.match(tokens, i); n > 0 {
			m.emit(out, "", splitTones)
			i += n
			continue
		}
		base, tone := splitToneRun(tokens[i])
		if tone != "" {
			if out, ok := t.lookup(base); ok {
				m.emit(out, tone, splitTones)
				i++
				continue
			}
		}
		// unmapped-symbol policy: pass the raw token through unchanged
		m.passthrough(tokens[i], splitTones)
		tracer().P("symbol", tokens[i]).Infof("no folding rule for %s/%s symbol, passing through",
			t.backend, t.language)
		i++
	}
	return m.result()
}

// match finds the widest rule key that is a prefix of tokens[i:].
// It returns the matched width and the rule's output tokens, or 0.
func (t *Table) match(tokens []string, i int) (int, []string) {
	rest := len(tokens) - i
	for _, w := range t.widths {
		if w > rest {
			continue
		}
		if out, ok := t.index[w][joinKey(tokens[i:i+w])]; ok {
			return w, out
		}
	}
	return 0, nil
}

// lookup resolves a single-token key.
func (t *Table) lookup(token string) ([]string, bool) {
	out, ok := t.index[1][token]
	return out, ok
}

// isToneLetter reports whether r is one of the Chao tone letters
// (U+02E5 ˥ … U+02E9 ˩) used to write tone contours.
func isToneLetter(r rune) bool {
	return r >= 0x02E5 && r <= 0x02E9
}

// splitToneRun splits a trailing run of tone letters off a symbol.
// A symbol consisting only of tone letters is already a bare tone and
// is left alone.
func splitToneRun(token string) (base, tone string) {
	runes := []rune(token)
	i := len(runes)
	for i > 0 && isToneLetter(runes[i-1]) {
		i--
	}
	if i == 0 || i == len(runes) {
		return token, ""
	}
	return string(runes[:i]), string(runes[i:])
}

// === Matcher pool ==============================================

// Folding runs once per word over whole corpora, so the scratch state
// for one Fold call is a short-lived object. We pool matchers to avoid
// re-allocating the token buffers for every word.
type matcher struct {
	out      []string
	unmapped []string
}

type matcherPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalMatcherPool *matcherPool

func init() {
	globalMatcherPool = &matcherPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return &matcher{}, nil
		})
	globalMatcherPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalMatcherPool.opool = pool.NewObjectPool(globalMatcherPool.ctx, factory, config)
}

func borrowMatcher() *matcher {
	o, _ := globalMatcherPool.opool.BorrowObject(globalMatcherPool.ctx)
	return o.(*matcher)
}

// release clears the matcher and puts it back into the pool.
func (m *matcher) release() {
	m.out = m.out[:0]
	m.unmapped = m.unmapped[:0]
	_ = globalMatcherPool.opool.ReturnObject(globalMatcherPool.ctx, m)
}

// emit appends rule-output tokens, attaching or separating a pending
// tone run. The tone follows the last output token; when a deletion
// rule leaves no output, the tone survives as a bare tone token.
func (m *matcher) emit(out []string, tone string, splitTones bool) {
	for _, tok := range out {
		m.out = append(m.out, norm.NFC.String(tok))
	}
	if tone == "" {
		return
	}
	if splitTones || len(out) == 0 {
		m.out = append(m.out, tone)
	} else {
		m.out[len(m.out)-1] += tone
	}
}

// passthrough emits an unmapped raw token unchanged (modulo tone
// separation) and records it.
func (m *matcher) passthrough(token string, splitTones bool) {
	m.unmapped = append(m.unmapped, token)
	if splitTones {
		if base, tone := splitToneRun(token); tone != "" {
			m.out = append(m.out, norm.NFC.String(base), tone)
			return
		}
	}
	m.out = append(m.out, norm.NFC.String(token))
}

// result copies the collected tokens out of the pooled buffers.
func (m *matcher) result() (folded, unmapped []string) {
	folded = make([]string, len(m.out))
	copy(folded, m.out)
	if len(m.unmapped) > 0 {
		unmapped = make([]string, len(m.unmapped))
		copy(unmapped, m.unmapped)
	}
	return folded, unmapped
}
