package ccf

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable() *Table {
	t := NewTable()
	doors := NewValues()
	doors.Set(2, "2 door")
	doors.Set(4, "4 door")
	t.Put(&Option{ID: 2, Name: "Doors", Group: "GROUP_CCF_EUCD_DOORS", Values: doors})

	region := NewValues()
	region.Set(16, "<none> & other")
	t.Put(&Option{ID: 1, Name: "Region", Group: "GROUP_CCF_REGION", Values: region})
	return t
}

func TestFilter(t *testing.T) {
	filtered, missing := sampleTable().Filter([]int{1, 2, 999})
	assert.Equal(t, []int{1, 2}, filtered.IDs())
	assert.Equal(t, []int{999}, missing)
}

func TestFilter_NothingRequested(t *testing.T) {
	filtered, missing := sampleTable().Filter(nil)
	assert.Zero(t, filtered.Len())
	assert.Empty(t, missing)
}

func TestFilter_SharesRecords(t *testing.T) {
	table := sampleTable()
	filtered, _ := table.Filter([]int{2})
	a, _ := table.Get(2)
	b, _ := filtered.Get(2)
	assert.Same(t, a, b)
}

func TestWriteJSON_Layout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleTable()))

	want := `{
  "2": {
    "id": 2,
    "name": "Doors",
    "group": "GROUP_CCF_EUCD_DOORS",
    "values": {
      "2": "2 door",
      "4": "4 door"
    }
  },
  "1": {
    "id": 1,
    "name": "Region",
    "group": "GROUP_CCF_REGION",
    "values": {
      "16": "<none> & other"
    }
  }
}
`
	assert.Equal(t, want, buf.String())
}

func TestWriteJSON_Decodes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleTable()))

	var out map[string]struct {
		ID     int               `json:"id"`
		Name   string            `json:"name"`
		Group  string            `json:"group"`
		Values map[string]string `json:"values"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, 2, out["2"].ID)
	assert.Equal(t, "4 door", out["2"].Values["4"])
}

func TestWriteJSON_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, NewTable()))
	assert.Equal(t, "{}\n", buf.String())
}

func TestValues_SetKeepsPosition(t *testing.T) {
	v := NewValues()
	v.Set(3, "a")
	v.Set(1, "b")
	v.Set(3, "c")
	assert.Equal(t, []int{3, 1}, v.Keys())
	l, _ := v.Get(3)
	assert.Equal(t, "c", l)
}
