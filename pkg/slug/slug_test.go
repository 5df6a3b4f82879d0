// Copyright (c) 2026 Manhwaverse. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

/*
TestFrom verifies the slug transformation pipeline against the identifier
shapes the catalog relies on.
*/
func TestFrom(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "simple title", input: "New Show", expected: "new-show"},
		{name: "already slugged", input: "solo-leveling", expected: "solo-leveling"},
		{name: "mixed case with punctuation", input: "Omniscient Reader's Viewpoint", expected: "omniscient-reader-s-viewpoint"},
		{name: "accented characters", input: "Café au Lait", expected: "cafe-au-lait"},
		{name: "extra whitespace", input: "  Tower   of God  ", expected: "tower-of-god"},
		{name: "digits preserved", input: "Chapter 2 Arc", expected: "chapter-2-arc"},
		{name: "empty string", input: "", expected: ""},
		{name: "only symbols", input: "!!!", expected: ""},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, From(testCase.input))
		})
	}
}
