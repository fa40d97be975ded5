package ccf

import (
	"bytes"
	"encoding/json"
	"io"
	"strconv"
)

// Values maps option settings to labels and keeps first-insertion order.
type Values struct {
	keys   []int
	labels map[int]string
}

// NewValues returns an empty mapping.
func NewValues() *Values {
	return &Values{labels: make(map[int]string)}
}

// Set records label for v. Re-setting an existing value replaces the label
// but keeps its original position.
func (v *Values) Set(value int, label string) {
	if _, ok := v.labels[value]; !ok {
		v.keys = append(v.keys, value)
	}
	v.labels[value] = label
}

// Get returns the label for value.
func (v *Values) Get(value int) (string, bool) {
	l, ok := v.labels[value]
	return l, ok
}

func (v *Values) Len() int { return len(v.keys) }

// Keys returns the values in insertion order.
func (v *Values) Keys() []int {
	return append([]int(nil), v.keys...)
}

// MarshalJSON encodes the mapping as an object with decimal string keys.
func (v *Values) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range v.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeKV(&buf, k, v.labels[k]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Option is one decode-table entry: a CCF option id with its display name,
// symbolic group name and valid settings.
type Option struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	Group  string  `json:"group"`
	Values *Values `json:"values"`
}

// Table is the decode table, keyed by option id. Iteration follows the order
// in which ids were first added.
type Table struct {
	ids  []int
	byID map[int]*Option
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{byID: make(map[int]*Option)}
}

// Put stores opt under opt.ID, replacing any earlier record for that id.
func (t *Table) Put(opt *Option) {
	if _, ok := t.byID[opt.ID]; !ok {
		t.ids = append(t.ids, opt.ID)
	}
	t.byID[opt.ID] = opt
}

// Get returns the record for id.
func (t *Table) Get(id int) (*Option, bool) {
	o, ok := t.byID[id]
	return o, ok
}

func (t *Table) Len() int { return len(t.ids) }

// IDs returns the option ids in table order.
func (t *Table) IDs() []int {
	return append([]int(nil), t.ids...)
}

// Filter returns a table holding only the requested ids that are present,
// ordered as in ids, plus the requested ids that were not found.
func (t *Table) Filter(ids []int) (*Table, []int) {
	out := NewTable()
	var missing []int
	for _, id := range ids {
		opt, ok := t.byID[id]
		if !ok {
			missing = append(missing, id)
			continue
		}
		out.Put(opt)
	}
	return out, missing
}

// MarshalJSON encodes the table as an object keyed by the decimal option id.
func (t *Table) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, id := range t.ids {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeKV(&buf, id, t.byID[id]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// WriteJSON writes t as two-space indented JSON without HTML escaping.
func WriteJSON(w io.Writer, t *Table) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(t)
}

func writeKV(buf *bytes.Buffer, key int, val any) error {
	buf.WriteByte('"')
	buf.WriteString(strconv.Itoa(key))
	buf.WriteString(`":`)
	return encodeRaw(buf, val)
}

// encodeRaw encodes v without HTML escaping and without the trailing newline
// json.Encoder appends.
func encodeRaw(buf *bytes.Buffer, v any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Truncate(buf.Len() - 1)
	return nil
}
