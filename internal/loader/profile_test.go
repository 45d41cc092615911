package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamlog/contactlog/internal/failure"
	"github.com/hamlog/contactlog/internal/model"
)

func TestLoadProfile_JSON(t *testing.T) {
	fsys := memFS(t, map[string]string{"config.json": `{
  "Callsign": "bd4uog",
  "license": "B",
  "operator": "王明",
  "Grid": "OM92",
  "power": 100,
  "qrp": false,
  "email": null,
  "website": "https://example.org/?a=1&b=<2>"
}`})

	profile, err := padLoader(fsys).LoadProfile("config.json")
	require.NoError(t, err)

	want := []model.ProfileEntry{
		{Key: "callsign", Value: "bd4uog"},
		{Key: "license", Value: "B"},
		{Key: "operator", Value: "王明"},
		{Key: "grid", Value: "OM92"},
		{Key: "power", Value: "100"},
		{Key: "qrp", Value: "false"},
		{Key: "email", Value: ""},
		{Key: "website", Value: "https://example.org/?a=1&b=<2>"},
	}
	assert.Equal(t, want, profile.Entries)

	v, ok := profile.Get("email")
	assert.True(t, ok)
	assert.Equal(t, "", v)
	_, ok = profile.Get("location")
	assert.False(t, ok)
}

func TestLoadProfile_DuplicateKeysLastWins(t *testing.T) {
	fsys := memFS(t, map[string]string{"config.json": `{"callsign":"BA1AA","CALLSIGN":"BD4UOG","grid":"OM92"}`})

	profile, err := padLoader(fsys).LoadProfile("config.json")
	require.NoError(t, err)
	assert.Equal(t, 2, profile.Len())
	assert.Equal(t, "BD4UOG", profile.Value("callsign"))
	assert.Equal(t, "callsign", profile.Entries[0].Key)
}

func TestLoadProfile_EmptyObject(t *testing.T) {
	profile, err := padLoader(memFS(t, map[string]string{"config.json": "{}"})).LoadProfile("config.json")
	require.NoError(t, err)
	assert.Equal(t, 0, profile.Len())
	assert.Equal(t, "", profile.Value("callsign"))
}

func TestLoadProfile_YAML(t *testing.T) {
	fsys := memFS(t, map[string]string{"profile.yaml": `
callsign: BD4UOG
license: B
location: 江苏南京
grid: ~
zip: 210000
`})

	profile, err := padLoader(fsys).LoadProfile("profile.yaml")
	require.NoError(t, err)
	assert.Equal(t, []model.ProfileEntry{
		{Key: "callsign", Value: "BD4UOG"},
		{Key: "license", Value: "B"},
		{Key: "location", Value: "江苏南京"},
		{Key: "grid", Value: ""},
		{Key: "zip", Value: "210000"},
	}, profile.Entries)
}

func TestLoadProfile_YAMLAlias(t *testing.T) {
	fsys := memFS(t, map[string]string{"profile.yaml": "callsign: &cs BD4UOG\nalias: *cs\n"})

	profile, err := padLoader(fsys).LoadProfile("profile.yaml")
	require.NoError(t, err)
	assert.Equal(t, "BD4UOG", profile.Value("alias"))
}

func TestLoadProfile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantMsg string
	}{
		{"nested object", "config.json", `{"callsign":"BD4UOG","station":{"rig":"IC-705"}}`, `profile key "station" has a nested value`},
		{"nested array", "config.json", `{"bands":["20m","40m"]}`, `profile key "bands" has a nested value`},
		{"array root", "config.json", `["BD4UOG"]`, "must be a JSON object"},
		{"scalar root", "config.json", `"BD4UOG"`, "must be a JSON object"},
		{"truncated", "config.json", `{"callsign":"BD4UOG"`, "not valid JSON"},
		{"empty json", "config.json", ``, "not valid JSON"},
		{"yaml nested", "profile.yml", "station:\n  rig: IC-705\n", `profile key "station" has a nested value`},
		{"yaml unknown anchor", "profile.yaml", "callsign: BD4UOG\nrig: *r\nbase: &r {model: IC-705}\n", "not valid YAML"},
		{"yaml list root", "profile.yaml", "- BD4UOG\n", "must be a YAML mapping"},
		{"yaml empty", "profile.yaml", "", "profile is empty"},
		{"yaml malformed", "profile.yaml", "callsign: [BD4UOG\n", "not valid YAML"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := memFS(t, map[string]string{tt.file: tt.content})
			_, err := padLoader(fsys).LoadProfile(tt.file)
			require.Error(t, err)
			assert.Equal(t, failure.SourceUnreadable, failure.KindOf(err))
			assert.Contains(t, err.Error(), tt.file)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}
