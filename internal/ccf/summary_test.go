package ccf

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteSummary(t *testing.T) {
	table := sampleTable()
	many := NewValues()
	for i := 0; i < 6; i++ {
		many.Set(i, "v")
	}
	table.Put(&Option{ID: 30, Name: "Many", Group: "G", Values: many})

	var buf bytes.Buffer
	WriteSummary(&buf, table, []int{2, 30, 999})
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "Parsed 3 CCF option definitions\n"))
	assert.Contains(t, out, "  [  2] Doors")
	assert.Contains(t, out, "0x02=2 door, 0x04=4 door")
	assert.Contains(t, out, "0x00=v, 0x01=v, 0x02=v, 0x03=v\n")
	assert.NotContains(t, out, "0x04=v")
	assert.Contains(t, out, "  [999] ??? (not in CCF data)")
}

func TestWriteSummary_NoIDs(t *testing.T) {
	var buf bytes.Buffer
	WriteSummary(&buf, NewTable(), nil)
	assert.Equal(t, "Parsed 0 CCF option definitions\n", buf.String())
}
