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

package buscycle

import (
	"fmt"
	"strings"
)

// QueueSize is the capacity of the prefetch queue.
const QueueSize = 6

// Queue is the prefetch queue. It is a fixed size FIFO.
type Queue struct {
	data  [QueueSize]uint8
	start int
	len   int
}

// Len returns the number of bytes in the queue.
func (q Queue) Len() int {
	return q.len
}

// IsFull returns true if no more bytes can be pushed.
func (q Queue) IsFull() bool {
	return q.len == QueueSize
}

// Push adds a byte to the end of the queue. Returns false if the queue is
// full.
func (q *Queue) Push(v uint8) bool {
	if q.len == QueueSize {
		return false
	}
	q.data[(q.start+q.len)%QueueSize] = v
	q.len++
	return true
}

// Pop removes the byte at the front of the queue. Returns false if the queue
// is empty.
func (q *Queue) Pop() (uint8, bool) {
	if q.len == 0 {
		return 0, false
	}
	v := q.data[q.start]
	q.start = (q.start + 1) % QueueSize
	q.len--
	return v, true
}

// Clear empties the queue.
func (q *Queue) Clear() {
	q.start = 0
	q.len = 0
}

// Bytes returns a copy of the queued bytes, front first.
func (q Queue) Bytes() []uint8 {
	b := make([]uint8, q.len)
	for i := range b {
		b[i] = q.data[(q.start+i)%QueueSize]
	}
	return b
}

func (q Queue) String() string {
	s := strings.Builder{}
	s.WriteString("[")
	for i, b := range q.Bytes() {
		if i > 0 {
			s.WriteString(" ")
		}
		s.WriteString(fmt.Sprintf("%02x", b))
	}
	s.WriteString("]")
	return s.String()
}
