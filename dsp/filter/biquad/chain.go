package biquad

import "github.com/cwbudde/algo-stimloop/dsp/core"

// chainBufLen is the ring-buffer length per chain stage. Power of two,
// and just long enough to hold the three-tap history each section
// needs without retaining extra samples.
const chainBufLen = 4

// Chain is a cascade of up to stageCount biquad sections operating one
// sample per call. History is kept in stageCount+1 internal ring
// buffers (input, each intermediate, output), so a freshly constructed
// chain takes time to settle; FastSettle can preload the buffers.
type Chain[S core.Sample] struct {
	sections []Section[S]

	// buffers[s] feeds section s; buffers[s+1] receives its output.
	buffers [][]S
	bufPtr  int

	stagesActive int
}

// NewChain returns a chain with storage for stageCount sections, zero
// coefficients, and zero active stages (identity behavior).
func NewChain[S core.Sample](stageCount int) *Chain[S] {
	if stageCount < 1 {
		stageCount = 1
	}

	c := &Chain[S]{
		sections: make([]Section[S], stageCount),
		buffers:  make([][]S, stageCount+1),
	}
	for i := range c.buffers {
		c.buffers[i] = make([]S, chainBufLen)
	}
	return c
}

// ApplyOnce advances the chain by one sample and returns the output.
// With zero active stages this copies input to output.
func (c *Chain[S]) ApplyOnce(in S) S {
	const mask = chainBufLen - 1

	c.buffers[0][c.bufPtr] = in

	for s := 0; s < c.stagesActive; s++ {
		c.sections[s].ApplyOnceCircular(
			c.buffers[s], c.bufPtr, mask,
			c.buffers[s+1], c.bufPtr, mask,
		)
	}

	out := c.buffers[c.stagesActive][c.bufPtr]

	c.bufPtr = (c.bufPtr + 1) & mask
	return out
}

// ActiveStages returns the number of stages being applied.
func (c *Chain[S]) ActiveStages() int { return c.stagesActive }

// SetActiveStages clamps and stores the number of stages to apply.
func (c *Chain[S]) SetActiveStages(n int) {
	if n < 0 {
		n = 0
	} else if n > len(c.sections) {
		n = len(c.sections)
	}
	c.stagesActive = n
}

// StageCount returns the compiled stage capacity.
func (c *Chain[S]) StageCount() int { return len(c.sections) }

// Blank zeroes every section's coefficients.
func (c *Chain[S]) Blank() {
	for i := range c.sections {
		c.sections[i].Blank()
	}
}

// SetCoefficients replaces one stage's coefficients. Out-of-range
// stages are ignored.
func (c *Chain[S]) SetCoefficients(stage int, coeffs Coefficients[S]) {
	if stage >= 0 && stage < len(c.sections) {
		c.sections[stage].SetCoefficients(coeffs)
	}
}

// StageCoefficients returns one stage's coefficients. Out-of-range
// stages return the zero filter.
func (c *Chain[S]) StageCoefficients(stage int) Coefficients[S] {
	if stage >= 0 && stage < len(c.sections) {
		return c.sections[stage].Coefficients()
	}
	return Coefficients[S]{}
}

// FastSettle preloads the history buffers to sidestep the cold-start
// transient. Buffer 0 is filled with the current input; the buffer
// after stage s is filled with the input when copyInput[s] is true
// (ahead of a low-pass stage) or zero otherwise (ahead of a high-pass
// or band-pass stage).
func (c *Chain[S]) FastSettle(in S, copyInput []bool) {
	c.stuffBufferStage(0, in)

	for s := 0; s < len(c.sections); s++ {
		var v S
		if s < len(copyInput) && copyInput[s] {
			v = in
		}
		c.stuffBufferStage(s+1, v)
	}
}

// stuffBufferStage fills one ring buffer with a constant.
func (c *Chain[S]) stuffBufferStage(stage int, v S) {
	if stage < 0 || stage >= len(c.buffers) {
		return
	}
	for i := range c.buffers[stage] {
		c.buffers[stage][i] = v
	}
}
