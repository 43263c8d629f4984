package fold

import (
	"bufio"
	"bytes"
	"embed"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
)

//go:embed tables
var tableFS embed.FS

// ErrNoTable signals that no folding table is bundled for a
// (backend, language) pair. Callers that were asked to fold must treat
// this as an unsupported-language condition; callers running in
// uncorrected mode never load a table in the first place.
var ErrNoTable = errors.New("fold: no folding table for this backend/language pair")

// A Rule maps a sequence of raw backend tokens onto a sequence of
// normalized tokens. Either side may be longer than one token: a
// multi-token Raw merges clusters, a multi-token Out splits them.
type Rule struct {
	Raw []string
	Out []string
}

// Table is the loaded, immutable rule set for one (backend, language)
// pair. Its rules are indexed by key width so that the folding engine
// can try the widest keys first. A Table is safe for concurrent use.
type Table struct {
	backend  string
	language string
	index    map[int]map[string][]string // key width -> joined key -> out tokens
	widths   []int                       // widths present, descending
	size     int
}

// Backend returns the backend identifier this table folds for.
func (t *Table) Backend() string { return t.backend }

// Language returns the language code this table folds for.
func (t *Table) Language() string { return t.language }

// Len returns the number of rules in the table.
func (t *Table) Len() int { return t.size }

func joinKey(tokens []string) string {
	return strings.Join(tokens, " ")
}

// New builds a Table from an explicit rule set. Rules with an empty
// raw side are rejected, as are two rules sharing an identical raw
// key: an ambiguous table is an input error, not a tie to break.
func New(backend, language string, rules []Rule) (*Table, error) {
	t := &Table{
		backend:  backend,
		language: language,
		index:    make(map[int]map[string][]string),
	}
	for _, r := range rules {
		if len(r.Raw) == 0 {
			return nil, fmt.Errorf("fold: table %s/%s contains a rule with an empty raw side", backend, language)
		}
		w := len(r.Raw)
		key := joinKey(r.Raw)
		if t.index[w] == nil {
			t.index[w] = make(map[string][]string)
		}
		if _, ok := t.index[w][key]; ok {
			return nil, fmt.Errorf("fold: table %s/%s contains duplicate rules for key %q", backend, language, key)
		}
		out := make([]string, len(r.Out))
		copy(out, r.Out)
		t.index[w][key] = out
		t.size++
	}
	for w := range t.index {
		t.widths = append(t.widths, w)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(t.widths)))
	return t, nil
}

// Load reads the bundled folding table for a (backend, language) pair.
// It returns ErrNoTable if none is bundled. Loading is a one-time read
// of an embedded resource and therefore idempotent; clients usually
// load once per run and share the table.
func Load(backend, language string) (*Table, error) {
	data, err := tableFS.ReadFile(fmt.Sprintf("tables/%s/%s.tsv", backend, language))
	if err != nil {
		// language codes in table names are lower case except for
		// script suffixes (spa-Latn), so retry case-folded
		data, err = tableFS.ReadFile(fmt.Sprintf("tables/%s/%s.tsv", backend, strings.ToLower(language)))
		if err != nil {
			return nil, ErrNoTable
		}
	}
	rules, err := parseRules(data)
	if err != nil {
		return nil, fmt.Errorf("fold: table %s/%s: %w", backend, language, err)
	}
	t, err := New(backend, language, rules)
	if err != nil {
		return nil, err
	}
	tracer().P("table", backend+"/"+language).Debugf("loaded %d folding rules", t.Len())
	return t, nil
}

// parseRules reads the TSV rule format: one rule per line,
// raw-tokens TAB out-tokens, both sides space-separated. Blank lines
// and '#' comments are ignored. An empty out side maps the raw
// sequence to nothing (symbol deletion).
func parseRules(data []byte) ([]Rule, error) {
	collected := arraylist.New()
	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "\t", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("line %d: expected raw<TAB>out, have %q", lineno, line)
		}
		raw := strings.Fields(parts[0])
		if len(raw) == 0 {
			return nil, fmt.Errorf("line %d: empty raw side", lineno)
		}
		collected.Add(Rule{Raw: raw, Out: strings.Fields(parts[1])})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	rules := make([]Rule, 0, collected.Size())
	collected.Each(func(_ int, v interface{}) {
		rules = append(rules, v.(Rule))
	})
	return rules, nil
}
