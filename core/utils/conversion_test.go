package utils_test

import (
	"testing"

	"market-manager/core/utils"

	"github.com/stretchr/testify/assert"
)

func TestToInt(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int
	}{
		{"Int", 42, 42},
		{"Int64", int64(7), 7},
		{"Float", 12.9, 12},
		{"String", "15", 15},
		{"Garbage string", "abc", 0},
		{"Nil", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.ToInt(tt.in))
		})
	}
}

func TestToString(t *testing.T) {
	assert.Equal(t, "hello", utils.ToString("hello"))
	assert.Equal(t, "42", utils.ToString(42))
	assert.Equal(t, "", utils.ToString(nil))
}

func TestToBool(t *testing.T) {
	assert.True(t, utils.ToBool(true))
	assert.True(t, utils.ToBool(1))
	assert.True(t, utils.ToBool("true"))
	assert.False(t, utils.ToBool(0))
	assert.False(t, utils.ToBool(nil))
}

func TestTitleWords(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"some_modded_thing", "Some Modded Thing"},
		{"diamond", "Diamond"},
		{"luck_of_the_sea", "Luck Of The Sea"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, utils.TitleWords(tt.in))
	}
}
