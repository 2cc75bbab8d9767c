// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package version

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplicationString(t *testing.T) {
	app := &Application{
		Name:  Client,
		Major: 1,
		Minor: 2,
		Patch: 3,
	}
	require.Equal(t, "vkct/1.2.3", app.String())
}

func TestApplicationCompare(t *testing.T) {
	tests := []struct {
		name     string
		mine     *Application
		theirs   *Application
		expected int
	}{
		{
			name:     "equal",
			mine:     &Application{Name: Client, Major: 1, Minor: 2, Patch: 3},
			theirs:   &Application{Name: Client, Major: 1, Minor: 2, Patch: 3},
			expected: 0,
		},
		{
			name:     "patch ahead",
			mine:     &Application{Name: Client, Major: 1, Minor: 2, Patch: 4},
			theirs:   &Application{Name: Client, Major: 1, Minor: 2, Patch: 3},
			expected: 1,
		},
		{
			name:     "minor behind",
			mine:     &Application{Name: Client, Major: 1, Minor: 1, Patch: 9},
			theirs:   &Application{Name: Client, Major: 1, Minor: 2, Patch: 0},
			expected: -1,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.expected, test.mine.Compare(test.theirs))
		})
	}
}

func TestApplicationCompatible(t *testing.T) {
	require := require.New(t)

	require.NoError(Current.Compatible(&Application{Name: Client, Major: Current.Major, Minor: 7}))
	err := Current.Compatible(&Application{Name: Client, Major: Current.Major + 1})
	require.ErrorIs(err, errDifferentMajor)
}

func TestParse(t *testing.T) {
	require := require.New(t)

	v, err := Parse("v1.2.3")
	require.NoError(err)
	require.Equal(&Semantic{Major: 1, Minor: 2, Patch: 3}, v)
	require.Equal("v1.2.3", v.String())

	_, err = Parse("1.2.3")
	require.ErrorIs(err, errMissingVersionPrefix)

	_, err = Parse("v1.2")
	require.ErrorIs(err, errMissingVersions)

	_, err = Parse("v1.x.3")
	require.Error(err)
}

func TestParseApplication(t *testing.T) {
	require := require.New(t)

	app, err := ParseApplication(Current.String())
	require.NoError(err)
	require.Equal(Current, app)

	_, err = ParseApplication("1.2.3")
	require.ErrorIs(err, errMissingApplicationPrefix)
}

func TestVersionsString(t *testing.T) {
	v := &Versions{
		Application: "vkct/1.0.0",
		Database:    "v1.0.0",
		Go:          "1.21.0",
	}
	require.Equal(t, "vkct/1.0.0 [database=v1.0.0, go=1.21.0]", v.String())

	v.Commit = "abc"
	require.Equal(t, "vkct/1.0.0 [database=v1.0.0, commit=abc, go=1.21.0]", v.String())
}
