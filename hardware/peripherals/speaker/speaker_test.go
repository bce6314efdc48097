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

package speaker_test

import (
	"testing"

	"github.com/jetsetilly/gopher8088/hardware/clock"
	"github.com/jetsetilly/gopher8088/hardware/peripherals/speaker"
	"github.com/jetsetilly/gopher8088/test"
)

type source struct {
	level bool
}

func (src *source) SpeakerLevel() bool {
	return src.level
}

type mixer struct {
	samples []int16
	ended   bool
}

func (mx *mixer) SetAudio(samples []int16) error {
	mx.samples = append(mx.samples, samples...)
	return nil
}

func (mx *mixer) EndMixing() error {
	mx.ended = true
	return nil
}

func TestSampleRate(t *testing.T) {
	clk := clock.NewClock()
	src := &source{}
	spk := speaker.NewSpeaker(src)
	mx := &mixer{}
	spk.AddAudioMixer(mx)
	clk.Subscribe(spk)

	// one second of emulated time
	for i := 0; i < int(clock.Frequency*1000000); i++ {
		clk.Tick()
	}
	test.ExpectSuccess(t, spk.EndMixing())
	test.ExpectSuccess(t, mx.ended)
	test.ExpectEquality(t, len(mx.samples), speaker.SampleFreq)
}

func TestLevel(t *testing.T) {
	clk := clock.NewClock()
	src := &source{}
	spk := speaker.NewSpeaker(src)
	mx := &mixer{}
	spk.AddAudioMixer(mx)
	clk.Subscribe(spk)

	for i := 0; i < 1000; i++ {
		clk.Tick()
	}
	src.level = true
	for i := 0; i < 1000; i++ {
		clk.Tick()
	}
	test.ExpectSuccess(t, spk.Flush())
	test.DemandSuccess(t, len(mx.samples) > 2)

	test.ExpectEquality(t, mx.samples[0], int16(-speaker.Amplitude))
	test.ExpectEquality(t, mx.samples[len(mx.samples)-1], int16(speaker.Amplitude))
}
