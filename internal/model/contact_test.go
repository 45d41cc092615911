package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColumnSchemaIndex(t *testing.T) {
	s := ColumnSchema{"日期DATE", "呼号CALLSIGN", "日期DATE"}
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 0, s.Index("日期DATE"))
	assert.Equal(t, 1, s.Index("呼号CALLSIGN"))
	assert.Equal(t, -1, s.Index("MODE"))
}

func TestContactRecordGet(t *testing.T) {
	s := ColumnSchema{"DATE", "CALL", "NOTE"}
	r := ContactRecord{Row: 2, Values: []string{"2024/10/5", "BD4UOG", ""}}

	v, ok := r.Get(s, "CALL")
	assert.True(t, ok)
	assert.Equal(t, "BD4UOG", v)

	v, ok = r.Get(s, "NOTE")
	assert.True(t, ok)
	assert.Equal(t, "", v)

	_, ok = r.Get(s, "MODE")
	assert.False(t, ok)
}

func TestProfileSet(t *testing.T) {
	var p Profile
	assert.False(t, p.Set("callsign", "BA1AA"))
	assert.False(t, p.Set("grid", "OM92"))
	assert.True(t, p.Set("callsign", "BD4UOG"))

	assert.Equal(t, 2, p.Len())
	assert.Equal(t, "BD4UOG", p.Value("callsign"))
	assert.Equal(t, "callsign", p.Entries[0].Key)
	assert.Equal(t, "", p.Value("email"))
}
