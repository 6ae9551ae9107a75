package mock

import (
	"sync"
	"time"

	"github.com/fako1024/potwatch/pkg/scale"
)

// defaultScript emulates a pot being brewed, poured from and finally lifted
// off the scale
var defaultScript = []int{
	2530, 2530, 2528, 2264, 2264, 1998, 1997, 1732, 1731, 1466,
	1466, 1200, 1199, 8, 8, 2530,
}

// Mock denotes a scripted scale, emitting a predefined sequence of gram
// readings. Once the script is exhausted the last reading repeats
// indefinitely
type Mock struct {
	mu     sync.Mutex
	script []int
	pos    int
	reads  int
}

// New instantiates a new Mock scale. If no script is provided a default
// brew / pour / lift cycle is used
func New(script ...int) *Mock {
	if len(script) == 0 {
		script = defaultScript
	}

	return &Mock{
		script: script,
	}
}

// ReadWeight emits the next scripted sample
func (m *Mock) ReadWeight() scale.Sample {
	m.mu.Lock()
	defer m.mu.Unlock()

	sample := scale.Sample{
		TimeStamp: time.Now().UTC(),
		Grams:     m.script[m.pos],
	}
	if m.pos < len(m.script)-1 {
		m.pos++
	}
	m.reads++

	return sample
}

// Reads returns the number of samples emitted so far
func (m *Mock) Reads() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.reads
}

// Close terminates the connection to the (non-existent) device
func (m *Mock) Close() error {
	return nil
}
