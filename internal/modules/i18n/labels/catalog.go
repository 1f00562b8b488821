package labels

import (
	"fmt"
	"sort"
	"strings"
)

// Table maps each language to its labels.
type Table map[Lang]map[Key]string

// MissingLabel identifies one label a language does not define.
type MissingLabel struct {
	Lang Lang
	Key  Key
}

// ConfigurationError reports a label table that cannot be rendered: a
// supported language without labels, a missing or empty label, or a key
// outside the enumerated set.
type ConfigurationError struct {
	Missing    []MissingLabel
	Unexpected []MissingLabel
}

func (e *ConfigurationError) Error() string {
	var parts []string
	for _, m := range e.Missing {
		parts = append(parts, fmt.Sprintf("missing %s/%s", m.Lang, m.Key))
	}
	for _, u := range e.Unexpected {
		parts = append(parts, fmt.Sprintf("unexpected %s/%s", u.Lang, u.Key))
	}
	return "label table invalid: " + strings.Join(parts, ", ")
}

// Validate checks that every supported language defines exactly AllKeys,
// each with a non-empty label.
func (t Table) Validate() error {
	known := make(map[Key]bool, len(AllKeys))
	for _, k := range AllKeys {
		known[k] = true
	}

	cerr := &ConfigurationError{}
	for _, lang := range Supported {
		labels := t[lang]
		for _, k := range AllKeys {
			if strings.TrimSpace(labels[k]) == "" {
				cerr.Missing = append(cerr.Missing, MissingLabel{Lang: lang, Key: k})
			}
		}
		var extra []Key
		for k := range labels {
			if !known[k] {
				extra = append(extra, k)
			}
		}
		sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
		for _, k := range extra {
			cerr.Unexpected = append(cerr.Unexpected, MissingLabel{Lang: lang, Key: k})
		}
	}

	if len(cerr.Missing) > 0 || len(cerr.Unexpected) > 0 {
		return cerr
	}
	return nil
}

// Catalog is a validated, read-only label table.
type Catalog struct {
	table Table
}

// NewCatalog validates t and copies it so later changes to t are not seen.
func NewCatalog(t Table) (*Catalog, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	cp := make(Table, len(Supported))
	for _, lang := range Supported {
		labels := make(map[Key]string, len(AllKeys))
		for _, k := range AllKeys {
			labels[k] = t[lang][k]
		}
		cp[lang] = labels
	}
	return &Catalog{table: cp}, nil
}

// Lookup returns the label for key in lang.
func (c *Catalog) Lookup(lang Lang, key Key) (string, error) {
	s, ok := c.table[lang][key]
	if !ok {
		return "", &ConfigurationError{Missing: []MissingLabel{{Lang: lang, Key: key}}}
	}
	return s, nil
}

// Labels returns a copy of every label for lang.
func (c *Catalog) Labels(lang Lang) (map[Key]string, error) {
	labels, ok := c.table[lang]
	if !ok {
		return nil, fmt.Errorf("unsupported language %q", lang)
	}
	out := make(map[Key]string, len(labels))
	for k, v := range labels {
		out[k] = v
	}
	return out, nil
}
