package alog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLOGGER_KnownChannels(t *testing.T) {
	assert.NotNil(t, LOGGER(LOGGER_PARSE))
	assert.NotNil(t, LOGGER(LOGGER_ENGINE))
}

func TestLOGGER_UnknownChannelFallsBackToUnknownLogger(t *testing.T) {
	lg := LOGGER(ChannelLabel("does-not-exist"))
	assert.NotNil(t, lg)
	assert.Same(t, globalLM.unknownLogger, lg)
}

func TestChannelLabel_IsEmpty(t *testing.T) {
	assert.True(t, ChannelLabel("").IsEmpty())
	assert.True(t, ChannelLabel("  ").IsEmpty())
	assert.False(t, LOGGER_PARSE.IsEmpty())
}

func TestChannelLabel_HasMatch(t *testing.T) {
	assert.True(t, LOGGER_PARSE.HasMatch(LOGGER_PARSE))
	assert.False(t, LOGGER_PARSE.HasMatch(LOGGER_ENGINE))
}
