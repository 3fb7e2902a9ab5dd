package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edatools/kicadio/pkg/sexpr"
)

const widgetText = `(widget "w1" round (width 10.5) (xy 1.5 -2.0) (locked) hidden (tag "a") (tag "b") (kid 1) (kid 2))`

func decodeWidget(t *testing.T, text string, mode Strictness) (*widget, []Issue, error) {
	t.Helper()
	w := &widget{}
	issues, err := DecodeString(text, w, mode)
	return w, issues, err
}

func TestDecode_FullWidget(t *testing.T) {
	w, issues, err := decodeWidget(t, widgetText, Strict)
	require.NoError(t, err)
	assert.Empty(t, issues)

	assert.Equal(t, "w1", w.Name)
	assert.Equal(t, "round", w.Kind)
	assert.Equal(t, 10.5, w.Width)
	assert.Nil(t, w.Depth)
	assert.Equal(t, xy{X: 1.5, Y: -2.0}, w.At)
	assert.Nil(t, w.Extra)
	assert.True(t, w.Locked.Present)
	assert.False(t, w.Locked.HasValue)
	assert.True(t, w.Hidden.Present)
	assert.Equal(t, []string{"a", "b"}, w.Tags)
	require.Len(t, w.Kids, 2)
	assert.Equal(t, 1, w.Kids[0].ID)
	assert.Equal(t, 2, w.Kids[1].ID)
}

func TestDecode_FieldOrderIndependence(t *testing.T) {
	// Labeled regions are found by token, not position; only the bare
	// atoms are positional.
	shuffled := `(widget (kid 7) (locked yes) "w2" (width 3.0) square (xy 0.0 0.0))`
	w, issues, err := decodeWidget(t, shuffled, Strict)
	require.NoError(t, err)
	assert.Empty(t, issues)

	assert.Equal(t, "w2", w.Name)
	assert.Equal(t, "square", w.Kind)
	assert.Equal(t, 3.0, w.Width)
	assert.True(t, w.Locked.Bool())
	require.Len(t, w.Kids, 1)
	assert.Equal(t, 7, w.Kids[0].ID)
}

func TestDecode_WrongToken(t *testing.T) {
	aliased := `(gadget "w" round (width 1.0) (xy 0.0 0.0))`

	t.Run("strict aborts", func(t *testing.T) {
		w := &widget{Width: 99}
		_, err := DecodeString(`(bogus "w" round (width 1.0) (xy 0.0 0.0))`, w, Strict)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrWrongToken)
	})

	t.Run("alias accepted", func(t *testing.T) {
		w, issues, err := decodeWidget(t, aliased, Strict)
		require.NoError(t, err)
		assert.Empty(t, issues)
		assert.Equal(t, "w", w.Name)
	})

	t.Run("failsafe records and continues", func(t *testing.T) {
		w, issues, err := decodeWidget(t, `(bogus "w" round (width 1.0) (xy 0.0 0.0))`, Failsafe)
		require.NoError(t, err)
		require.Len(t, issues, 1)
		assert.Equal(t, IssueWrongToken, issues[0].Kind)
		assert.Equal(t, "w", w.Name)
	})
}

func TestDecode_MissingRequired(t *testing.T) {
	// No (width ...) region and no bare atom left for name.
	text := `(widget (xy 0.0 0.0))`

	t.Run("strict aborts on first missing field", func(t *testing.T) {
		_, _, err := decodeWidget(t, text, Strict)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingField)
	})

	t.Run("failsafe keeps defaults and records", func(t *testing.T) {
		w := &widget{Name: "fallback", Width: 4.2}
		issues, err := DecodeString(text, w, Failsafe)
		require.NoError(t, err)
		assert.Equal(t, "fallback", w.Name)
		assert.Equal(t, 4.2, w.Width)

		kinds := make(map[IssueKind]int)
		for _, issue := range issues {
			kinds[issue.Kind]++
		}
		assert.Equal(t, 3, kinds[IssueMissingField], "name, kind and width are missing")
	})

	t.Run("silent keeps defaults and records nothing", func(t *testing.T) {
		w := &widget{Name: "fallback", Width: 4.2}
		issues, err := DecodeString(text, w, Silent)
		require.NoError(t, err)
		assert.Empty(t, issues)
		assert.Equal(t, "fallback", w.Name)
		assert.Equal(t, 4.2, w.Width)
	})
}

func TestDecode_MalformedScalar(t *testing.T) {
	text := `(widget "w" round (width wide) (xy 0.0 0.0))`

	t.Run("strict aborts", func(t *testing.T) {
		_, _, err := decodeWidget(t, text, Strict)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMalformedScalar)
	})

	t.Run("failsafe keeps default", func(t *testing.T) {
		w := &widget{Width: 7.5}
		issues, err := DecodeString(text, w, Failsafe)
		require.NoError(t, err)
		assert.Equal(t, 7.5, w.Width)

		require.NotEmpty(t, issues)
		assert.Equal(t, IssueMalformedScalar, issues[0].Kind)
		assert.Equal(t, "width", issues[0].Field)
	})
}

func TestDecode_UnusedTokens(t *testing.T) {
	text := `(widget "w" round (width 1.0) (xy 0.0 0.0) (mystery 42))`

	t.Run("strict rejects leftovers", func(t *testing.T) {
		_, _, err := decodeWidget(t, text, Strict)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnusedToken)
	})

	t.Run("failsafe records each leftover", func(t *testing.T) {
		w, issues, err := decodeWidget(t, text, Failsafe)
		require.NoError(t, err)
		assert.Equal(t, "w", w.Name)

		require.Len(t, issues, 1)
		assert.Equal(t, IssueUnusedToken, issues[0].Kind)
		assert.Contains(t, issues[0].Message, "mystery")
	})

	t.Run("silent ignores leftovers", func(t *testing.T) {
		_, issues, err := decodeWidget(t, text, Silent)
		require.NoError(t, err)
		assert.Empty(t, issues)
	})
}

func TestDecode_FlagArity(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantFlag  Flag
		oversized bool
	}{
		{
			name:     "empty list form",
			text:     `(widget "w" round (width 1.0) (xy 0.0 0.0) (locked))`,
			wantFlag: PresentFlag(),
		},
		{
			name:     "value form",
			text:     `(widget "w" round (width 1.0) (xy 0.0 0.0) (locked yes))`,
			wantFlag: FlagWith("yes"),
		},
		{
			name:      "oversized payload keeps only the token",
			text:      `(widget "w" round (width 1.0) (xy 0.0 0.0) (locked yes extra))`,
			wantFlag:  PresentFlag(),
			oversized: true,
		},
		{
			name:      "nested list payload keeps only the token",
			text:      `(widget "w" round (width 1.0) (xy 0.0 0.0) (locked (deep)))`,
			wantFlag:  PresentFlag(),
			oversized: true,
		},
		{
			name:     "absent",
			text:     `(widget "w" round (width 1.0) (xy 0.0 0.0))`,
			wantFlag: Flag{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, issues, err := decodeWidget(t, tt.text, Failsafe)
			require.NoError(t, err)
			assert.Equal(t, tt.wantFlag, w.Locked)

			if tt.oversized {
				require.Len(t, issues, 1)
				assert.Equal(t, IssueOversizedFlag, issues[0].Kind)

				_, _, err := decodeWidget(t, tt.text, Strict)
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrOversizedFlag)
			} else {
				assert.Empty(t, issues)
			}
		})
	}
}

func TestDecode_OptionalRegions(t *testing.T) {
	text := `(widget "w" round (width 1.0) (depth 2.5) (xy 0.0 0.0) (note "hello"))`
	w, issues, err := decodeWidget(t, text, Strict)
	require.NoError(t, err)
	assert.Empty(t, issues)

	require.NotNil(t, w.Depth)
	assert.Equal(t, 2.5, *w.Depth)
	require.NotNil(t, w.Extra)
	assert.Equal(t, "hello", w.Extra.Text)
}

func TestDecode_GroupsAreReplaced(t *testing.T) {
	w := &widget{
		Tags: []string{"stale"},
		Kids: []*kid{{ID: 99}},
	}
	issues, err := DecodeString(`(widget "w" round (width 1.0) (xy 0.0 0.0) (tag "fresh"))`, w, Failsafe)
	require.NoError(t, err)
	assert.Empty(t, issues)

	assert.Equal(t, []string{"fresh"}, w.Tags)
	assert.Empty(t, w.Kids)
}

func TestDecode_IssuePathsNameNesting(t *testing.T) {
	// The malformed scalar sits inside the nested xy region.
	text := `(widget "w" round (width 1.0) (xy left 2.0))`
	_, issues, err := decodeWidget(t, text, Failsafe)
	require.NoError(t, err)

	require.NotEmpty(t, issues)
	assert.Equal(t, "widget > xy", issues[0].Path)
	assert.Equal(t, "x", issues[0].Field)
}

func TestDecode_NestedIssuesShareCollector(t *testing.T) {
	// Issues at different depths land in the one list, in decode order.
	text := `(widget "w" round (width wide) (xy left 2.0) (kid deep))`
	_, issues, err := decodeWidget(t, text, Failsafe)
	require.NoError(t, err)

	require.Len(t, issues, 3)
	assert.Equal(t, "widget", issues[0].Path)
	assert.Equal(t, "widget > xy", issues[1].Path)
	assert.Equal(t, "widget > kid[0]", issues[2].Path)
}

func TestDecodeMatched_SkipsTokenCheck(t *testing.T) {
	list, err := sexpr.Parse(`(anything "w" round (width 1.0) (xy 0.0 0.0))`)
	require.NoError(t, err)

	w := &widget{}
	issues, derr := DecodeMatched(list, w, Strict)
	require.NoError(t, derr)
	assert.Empty(t, issues)
	assert.Equal(t, "w", w.Name)
}
