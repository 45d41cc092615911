package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfileLines(t *testing.T) {
	tests := []struct {
		name  string
		kv    []string
		extra bool
		upper bool
		want  []ProfileLine
	}{
		{
			name: "call and class always shown",
			kv:   nil,
			want: []ProfileLine{{"CALL", ""}, {"CLASS", ""}},
		},
		{
			name:  "full profile in fixed order",
			kv:    []string{"email", "op@example.org", "grid", "OM92", "callsign", "bd4uog", "location", "南京", "operator", "王明", "license", "B"},
			upper: true,
			want: []ProfileLine{
				{"CALL", "BD4UOG"},
				{"CLASS", "B"},
				{"OPR", "王明"},
				{"QTH", "南京"},
				{"GRID", "OM92"},
				{"EMAIL", "op@example.org"},
			},
		},
		{
			name: "aliases",
			kv:   []string{"callsign", "BD4UOG", "class", "A", "name", "Li", "qth", "Nanjing", "locator", "OM92"},
			want: []ProfileLine{
				{"CALL", "BD4UOG"},
				{"CLASS", "A"},
				{"OPR", "Li"},
				{"QTH", "Nanjing"},
				{"GRID", "OM92"},
			},
		},
		{
			name:  "extras in profile order",
			kv:    []string{"rig", "IC-705", "callsign", "BD4UOG", "antenna", "EFHW", "qth", "Nanjing", "blank", ""},
			extra: true,
			want: []ProfileLine{
				{"CALL", "BD4UOG"},
				{"CLASS", ""},
				{"QTH", "Nanjing"},
				{"RIG", "IC-705"},
				{"ANTENNA", "EFHW"},
			},
		},
		{
			name: "extras hidden",
			kv:   []string{"rig", "IC-705", "callsign", "BD4UOG"},
			want: []ProfileLine{{"CALL", "BD4UOG"}, {"CLASS", ""}},
		},
		{
			name:  "canonical key wins over alias",
			kv:    []string{"qth", "Shanghai", "location", "Nanjing"},
			extra: true,
			want:  []ProfileLine{{"CALL", ""}, {"CLASS", ""}, {"QTH", "Nanjing"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := Options{ShowExtraProfile: tt.extra, UppercaseCallsign: tt.upper}
			assert.Equal(t, tt.want, ProfileLines(profileOf(tt.kv...), opts))
		})
	}
}

func TestCallsign(t *testing.T) {
	assert.Equal(t, "", Callsign(profileOf(), true))
	assert.Equal(t, "BD4UOG", Callsign(profileOf("callsign", " bd4uog "), true))
	assert.Equal(t, "bd4uog", Callsign(profileOf("callsign", "bd4uog"), false))
}

func TestPrettifyHeader(t *testing.T) {
	tests := []struct{ in, want string }{
		{"日期DATE", "日期 DATE"},
		{"呼号CALLSIGN", "呼号 CALLSIGN"},
		{"对方RST", "对方 RST"},
		{"DATE", "DATE"},
		{"备注", "备注"},
		{"Sent   RST", "Sent RST"},
		{"  频率FREQ  ", "频率 FREQ"},
		{"mode", "mode"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PrettifyHeader(tt.in), "input %q", tt.in)
	}
}

func TestHeaderLabelsVerbatim(t *testing.T) {
	schema := []string{"日期DATE", " odd  label "}
	got := HeaderLabels(schema, false)
	assert.Equal(t, schema, got)
	assert.True(t, strings.HasPrefix(HeaderLabels(schema, true)[0], "日期 "))
}
