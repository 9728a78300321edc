package alang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRule_EnglishPrimary(t *testing.T) {
	r, err := ParseRule("every day at 09:00")
	require.NoError(t, err)
	assert.Equal(t, "daily", r.Freq)
}

func TestParseRule_FrenchPrimary(t *testing.T) {
	r, err := ParseRule("tous les lundis à 09:00")
	require.NoError(t, err)
	assert.Equal(t, "weekly", r.Freq)
}

func TestParseSchedule_FrenchPrimary(t *testing.T) {
	sched, err := ParseSchedule("tous les jours à 09:00", "")
	require.NoError(t, err)
	require.Len(t, sched.Rules, 1)
}

func TestParseRule_UnparsableInEitherGrammarReturnsError(t *testing.T) {
	_, err := ParseRule("completely unrecognizable text")
	require.Error(t, err)
}
