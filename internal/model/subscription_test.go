package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayListValue(t *testing.T) {
	v, err := DayList{"Mon", "Thu"}.Value()
	require.NoError(t, err)
	assert.Equal(t, "Mon,Thu", v)

	v, err = DayList(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "", v)
}

func TestDayListScan(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  DayList
	}{
		{name: "string", input: "Mon,Wed,Fri", want: DayList{"Mon", "Wed", "Fri"}},
		{name: "bytes", input: []byte("Sun"), want: DayList{"Sun"}},
		{name: "empty", input: "", want: DayList{}},
		{name: "null", input: nil, want: DayList{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d DayList
			require.NoError(t, d.Scan(tt.input))
			assert.Equal(t, tt.want, d)
		})
	}

	var d DayList
	assert.Error(t, d.Scan(42))
}

func TestDayListJSON(t *testing.T) {
	raw, err := json.Marshal(struct {
		Days DayList `json:"days"`
	}{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"days":[]}`, string(raw))

	raw, err = json.Marshal(DayList{"Tue"})
	require.NoError(t, err)
	assert.JSONEq(t, `["Tue"]`, string(raw))
}
