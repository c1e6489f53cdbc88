package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AGILEDROP/working-plusplus/internal/karma"
)

func TestClassify(t *testing.T) {
	s := New()

	tests := []struct {
		id   string
		want karma.EntityKind
	}{
		{"U024BE7LH", karma.KindUser},
		{"W012A3CDE", karma.KindUser},
		{"UABC123", karma.KindUser},
		{"coffee", karma.KindNamedItem},
		{"friday deploys", karma.KindNamedItem},
		{"u024be7lh", karma.KindNamedItem}, // minuscules = item libre
		{"U", karma.KindNamedItem},
		{"", karma.KindNamedItem},
		{"X024BE7LH", karma.KindNamedItem},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, s.Classify(tc.id), "id %q", tc.id)
	}
}

func TestUserIDNormalizesMentionsAndRawIDs(t *testing.T) {
	s := New()
	ctx := context.Background()

	// Ces formes se résolvent sans toucher la base.
	for _, input := range []string{"U024BE7LH", "<@U024BE7LH>", "@U024BE7LH", "  U024BE7LH  "} {
		id, err := s.UserID(ctx, input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, "U024BE7LH", id)
	}
}
