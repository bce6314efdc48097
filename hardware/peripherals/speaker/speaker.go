// This file is part of Gopher8088.
//
// Gopher8088 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8088 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8088.  If not, see <https://www.gnu.org/licenses/>.

// Package speaker samples the level of the PC speaker line at a fixed
// sample rate and passes the samples to any number of AudioMixers.
//
// The speaker implements the clock.Ticker interface. It should be
// subscribed to the same clock as the timer so that the samples reflect the
// timer output exactly.
package speaker

import (
	"github.com/jetsetilly/gopher8088/hardware/clock"
)

// SampleFreq is the number of samples per second.
const SampleFreq = 44100

// Amplitude is the magnitude of a sample when the speaker is driven.
const Amplitude = 8192

// bufferSize is the number of samples collected before they are passed to
// the mixers.
const bufferSize = 1024

// Source is the line that drives the speaker.
type Source interface {
	SpeakerLevel() bool
}

// AudioMixer implementations receive samples from the speaker.
type AudioMixer interface {
	SetAudio(samples []int16) error

	// some mixers may need to conclude and/or dispose of resources gently.
	// for simplicity, the AudioMixer should be considered unusable after
	// EndMixing() has been called
	EndMixing() error
}

// Speaker samples a Source.
type Speaker struct {
	src    Source
	mixers []AudioMixer

	// the clock frequency in Hz and the accumulator used to divide it down
	// to the sample frequency
	clockHz int
	acc     int

	buffer []int16
}

// NewSpeaker is the preferred method of initialisation for the Speaker
// type.
func NewSpeaker(src Source) *Speaker {
	return &Speaker{
		src:     src,
		clockHz: int(clock.Frequency * 1000000),
		buffer:  make([]int16, 0, bufferSize),
	}
}

// AddAudioMixer registers an implementation of AudioMixer.
func (spk *Speaker) AddAudioMixer(m AudioMixer) {
	spk.mixers = append(spk.mixers, m)
}

// Tick implements the clock.Ticker interface.
func (spk *Speaker) Tick() {
	spk.acc += SampleFreq
	if spk.acc < spk.clockHz {
		return
	}
	spk.acc -= spk.clockHz

	if spk.src.SpeakerLevel() {
		spk.buffer = append(spk.buffer, Amplitude)
	} else {
		spk.buffer = append(spk.buffer, -Amplitude)
	}

	if len(spk.buffer) >= bufferSize {
		_ = spk.Flush()
	}
}

// Flush passes any collected samples to the mixers.
func (spk *Speaker) Flush() error {
	if len(spk.buffer) == 0 {
		return nil
	}
	for _, m := range spk.mixers {
		if err := m.SetAudio(spk.buffer); err != nil {
			return err
		}
	}
	spk.buffer = spk.buffer[:0]
	return nil
}

// EndMixing flushes remaining samples and calls EndMixing() on every mixer.
func (spk *Speaker) EndMixing() error {
	if err := spk.Flush(); err != nil {
		return err
	}
	for _, m := range spk.mixers {
		if err := m.EndMixing(); err != nil {
			return err
		}
	}
	return nil
}
