package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitAndTrim(t *testing.T) {
	assert.Nil(t, SplitAndTrim("", ","))
	assert.Equal(t, []string{"a", "b", ""}, SplitAndTrim(" a ,b, ", ","))
}

func TestRemoveEmptyStrings(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, RemoveEmptyStrings([]string{"", "a", "", "b"}))
	assert.Nil(t, RemoveEmptyStrings([]string{"", ""}))
}
