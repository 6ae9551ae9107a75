package scale

// Scale denotes a weight sensor yielding one sample per call
type Scale interface {

	// ReadWeight acquires a single weight sample. On any transport failure
	// the returned sample carries the Unavailable sentinel instead of an
	// error; the caller treats it as "no new information" and the next poll
	// tick is the implicit retry
	ReadWeight() Sample

	// Close releases the underlying transport
	Close() error
}
