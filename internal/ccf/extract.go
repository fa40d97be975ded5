package ccf

import (
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Stats counts what an extraction pass saw and skipped.
type Stats struct {
	Groups          int // group elements visited
	SkippedGroups   int // no start attribute, or start is not an integer
	Options         int // option values recorded
	SkippedOptions  int // empty or non-numeric value attribute
	ReplacedRecords int // groups whose start id was already in the table
}

// Extractor builds decode tables. The zero value is usable.
type Extractor struct {
	Logger *logrus.Logger
}

// Extract builds the decode table for doc with a zero Extractor.
func Extract(doc *Document) *Table {
	t, _ := (&Extractor{}).Extract(doc)
	return t
}

// Extract walks every group in doc in document order. Groups without a usable
// start id and options without a usable value are skipped; a later group with
// the same start id replaces the earlier record.
func (e *Extractor) Extract(doc *Document) (*Table, Stats) {
	table := NewTable()
	var st Stats
	if doc == nil || doc.Root == nil {
		return table, st
	}

	doc.Root.Walk("group", func(g *Node) {
		st.Groups++
		opt, ok := e.groupRecord(g, &st)
		if !ok {
			st.SkippedGroups++
			return
		}
		if _, dup := table.Get(opt.ID); dup {
			st.ReplacedRecords++
		}
		table.Put(opt)
	})

	e.logger().WithFields(logrus.Fields{
		"groups":          st.Groups,
		"records":         table.Len(),
		"skipped_groups":  st.SkippedGroups,
		"skipped_options": st.SkippedOptions,
	}).Debug("ccf: extraction finished")

	return table, st
}

// groupRecord builds the record for one group, or reports false when the
// group carries no option id.
func (e *Extractor) groupRecord(g *Node, st *Stats) (*Option, bool) {
	start, ok := g.Attr("start")
	if !ok {
		return nil, false
	}
	name, _ := g.Attr("name")
	id, err := strconv.Atoi(strings.TrimSpace(start))
	if err != nil {
		e.logger().WithFields(logrus.Fields{
			"group": name,
			"start": start,
		}).Debug("ccf: group start is not an integer")
		return nil, false
	}

	values := NewValues()
	for _, param := range g.Descendants("parameter") {
		param.Walk("option", func(o *Node) {
			v, label, ok := optionEntry(o)
			if !ok {
				st.SkippedOptions++
				return
			}
			st.Options++
			values.Set(v, label)
		})
	}

	return &Option{
		ID:     id,
		Name:   groupTitle(g, name),
		Group:  name,
		Values: values,
	}, true
}

// groupTitle prefers the first title/tm label below the group and falls back
// to the cleaned symbolic name.
func groupTitle(g *Node, name string) string {
	for _, title := range g.Descendants("title") {
		if tm := title.Child("tm"); tm != nil {
			if label := tmText(tm); resolved(label) {
				return label
			}
			break
		}
	}
	return CleanName(name)
}

// optionEntry parses one option element into its numeric value and label.
func optionEntry(o *Node) (int, string, bool) {
	raw, _ := o.Attr("value")
	if raw == "" {
		return 0, "", false
	}
	v, ok := ParseValue(raw)
	if !ok {
		return 0, "", false
	}

	if label := tmText(o.Child("tm")); resolved(label) {
		return v, label, true
	}
	if name, _ := o.Attr("name"); name != "" {
		return v, name, true
	}
	return v, raw, true
}

// ParseValue parses an option value: base 16 with a "0x" prefix, base 10 otherwise.
func ParseValue(s string) (int, bool) {
	var n int64
	var err error
	if rest, ok := strings.CutPrefix(s, "0x"); ok {
		n, err = strconv.ParseInt(rest, 16, 64)
	} else {
		n, err = strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	}
	if err != nil {
		return 0, false
	}
	return int(n), true
}

func (e *Extractor) logger() *logrus.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return logrus.StandardLogger()
}
