package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"club-site/internal/model"
)

func TestTeamMember_Initial(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{name: "Ada", want: "A"},
		{name: "ada", want: "a"},
		{name: "Ümit", want: "Ü"},
		{name: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.TeamMember{Name: tt.name}.Initial())
		})
	}
}

func TestSocialLink_External(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{url: "https://instagram.com/your-club", want: true},
		{url: "mailto:club@example.com", want: false},
		{url: "mailto:", want: false},
		{url: "mail", want: true},
		{url: "", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.want, model.SocialLink{URL: tt.url}.External())
		})
	}
}

func TestID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    model.ID
		wantErr bool
	}{
		{name: "uuid", input: `"6f1c7a8e-1d1b-4c55-9a55-0b7f0e6b2a10"`, want: "6f1c7a8e-1d1b-4c55-9a55-0b7f0e6b2a10"},
		{name: "short string", input: `"1"`, want: "1"},
		{name: "number", input: `7`, want: "7"},
		{name: "big number", input: `9007199254740993`, want: "9007199254740993"},
		{name: "null", input: `null`, want: ""},
		{name: "bool", input: `true`, wantErr: true},
		{name: "object", input: `{}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id model.ID
			err := json.Unmarshal([]byte(tt.input), &id)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestID_UnmarshalYAML(t *testing.T) {
	var rows []struct {
		ID model.ID `yaml:"id"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("- id: 7\n- id: abc\n- id: ~\n"), &rows))
	require.Len(t, rows, 3)
	assert.Equal(t, []model.ID{"7", "abc", ""}, []model.ID{rows[0].ID, rows[1].ID, rows[2].ID})
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		input   string
		want    time.Time
		wantErr bool
	}{
		{input: "2025-03-15T18:00:00Z", want: time.Date(2025, 3, 15, 18, 0, 0, 0, time.UTC)},
		{input: "2025-03-15T18:00:00+00:00", want: time.Date(2025, 3, 15, 18, 0, 0, 0, time.UTC)},
		{input: "2025-03-15T21:00:00+03:00", want: time.Date(2025, 3, 15, 18, 0, 0, 0, time.UTC)},
		{input: "2025-03-15T18:00:00", want: time.Date(2025, 3, 15, 18, 0, 0, 0, time.UTC)},
		{input: "2025-03-15T18:00:00.5", want: time.Date(2025, 3, 15, 18, 0, 0, 500000000, time.UTC)},
		{input: "15/03/2025", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := model.ParseTimestamp(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %s", got)
		})
	}
}
