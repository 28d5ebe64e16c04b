package plot

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLines(t *testing.T) {
	var buf bytes.Buffer
	err := Lines(&buf, "Episodic Return",
		Series{Name: "sarsa", Values: []float64{-10, 50, 96}},
		Series{Name: "qlearning", Values: []float64{20, 96}},
	)
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, "Episodic Return")
	assert.Contains(t, html, "sarsa")
	assert.Contains(t, html, "qlearning")

	assert.Error(t, Lines(&buf, "empty"))
}

func TestMovingAverage(t *testing.T) {
	assert.Equal(t, []float64{2, 3, 4}, MovingAverage([]float64{1, 3, 2, 4, 6}, 3))
	assert.Equal(t, []float64{1, 2}, MovingAverage([]float64{1, 2}, 1))
	assert.Equal(t, []float64{1.5}, MovingAverage([]float64{1, 2}, 5))
	assert.Empty(t, MovingAverage(nil, 3))
}
