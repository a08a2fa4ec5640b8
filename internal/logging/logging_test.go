package logging

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogrusAdapterFields(t *testing.T) {
	l, hook := test.NewNullLogger()
	l.SetLevel(logrus.DebugLevel)
	log := FromLogrus(l)

	log.WithField("bank", "Тинькофф").
		WithError(errors.New("boom")).
		Warn("ai parse failed", Field{Key: "count", Value: 2})

	require.Len(t, hook.Entries, 1)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "ai parse failed", entry.Message)
	assert.Equal(t, "Тинькофф", entry.Data["bank"])
	assert.Equal(t, 2, entry.Data["count"])
	require.Contains(t, entry.Data, logrus.ErrorKey)
}

func TestLogrusAdapterLevels(t *testing.T) {
	l, hook := test.NewNullLogger()
	l.SetLevel(logrus.DebugLevel)
	log := FromLogrus(l)

	log.Debug("d")
	log.Info("i")
	log.Warn("w")
	log.Error("e")

	require.Len(t, hook.Entries, 4)
	assert.Equal(t, logrus.DebugLevel, hook.Entries[0].Level)
	assert.Equal(t, logrus.ErrorLevel, hook.Entries[3].Level)
}

func TestNewLogrusAdapterUnknownLevel(t *testing.T) {
	assert.NotPanics(t, func() {
		NewLogrusAdapter("nonsense", "text")
		NewLogrusAdapter("debug", "json")
	})
}

func TestNopLoggerIsSafe(t *testing.T) {
	log := Nop()
	assert.NotPanics(t, func() {
		log.WithError(errors.New("x")).WithField("k", "v").Info("nothing")
	})
}
