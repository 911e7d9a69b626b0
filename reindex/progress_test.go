package reindex

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressTracker(t *testing.T) {
	t.Run("reports at the configured interval", func(t *testing.T) {
		var out bytes.Buffer
		tracker := NewProgressTracker(&out, 100, 25)
		tracker.Start()

		tracker.Update(10)
		assert.Empty(t, out.String(), "below the report interval")

		tracker.Update(30)
		assert.Contains(t, out.String(), "30/100")
		assert.Contains(t, out.String(), "30.0%")
	})

	t.Run("finish prints final progress", func(t *testing.T) {
		var out bytes.Buffer
		tracker := NewProgressTracker(&out, 50, 100)
		tracker.Start()
		tracker.Update(20)
		tracker.Finish()

		assert.Contains(t, out.String(), "50/50")
		assert.Contains(t, out.String(), "100.0%")
	})

	t.Run("caps progress at total", func(t *testing.T) {
		var out bytes.Buffer
		tracker := NewProgressTracker(&out, 10, 1)
		tracker.Start()
		tracker.Update(25)

		assert.Contains(t, out.String(), "10/10")
	})

	t.Run("ignores updates before start", func(t *testing.T) {
		var out bytes.Buffer
		tracker := NewProgressTracker(&out, 10, 1)
		tracker.Update(5)
		tracker.Finish()

		assert.Empty(t, out.String())
		assert.Zero(t, tracker.Elapsed())
	})
}
