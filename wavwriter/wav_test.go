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

package wavwriter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopher8088/hardware/peripherals/speaker"
	"github.com/jetsetilly/gopher8088/test"
	"github.com/jetsetilly/gopher8088/wavwriter"
)

func TestWrite(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "speaker.wav")

	aw, err := wavwriter.New(fn)
	test.DemandSuccess(t, err)

	samples := make([]int16, 100)
	for i := range samples {
		if i%10 < 5 {
			samples[i] = speaker.Amplitude
		} else {
			samples[i] = -speaker.Amplitude
		}
	}
	test.ExpectSuccess(t, aw.SetAudio(samples))
	test.ExpectSuccess(t, aw.SetAudio(samples))
	test.ExpectEquality(t, aw.Len(), 200)
	test.ExpectSuccess(t, aw.EndMixing())

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.ExpectSuccess(t, dec.IsValidFile())
	test.ExpectEquality(t, dec.SampleRate, uint32(speaker.SampleFreq))
	test.ExpectEquality(t, dec.BitDepth, uint16(16))
	test.ExpectEquality(t, dec.NumChans, uint16(1))

	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(buf.Data), 200)
	test.ExpectEquality(t, buf.Data[0], speaker.Amplitude)
	test.ExpectEquality(t, buf.Data[5], -speaker.Amplitude)
}
