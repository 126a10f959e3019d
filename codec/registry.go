package codec

import (
	"strconv"
	"sync"
)

// Registry manages the available sample codecs
type Registry struct {
	mu     sync.RWMutex
	codecs map[string]SampleCodec // key can be either name or format code
}

var defaultRegistry = NewRegistry()

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]SampleCodec),
	}
}

// Register registers a codec using both its name and format code
func Register(codec SampleCodec) {
	defaultRegistry.Register(codec)
}

// Get retrieves a codec by name or format code (decimal string)
func Get(nameOrCode string) (SampleCodec, error) {
	return defaultRegistry.Get(nameOrCode)
}

// ForFormatCode retrieves a codec by SEG-Y data sample format code
func ForFormatCode(code uint16) (SampleCodec, error) {
	return defaultRegistry.ForFormatCode(code)
}

// List returns all registered codecs
func List() []SampleCodec {
	return defaultRegistry.List()
}

// Register registers a codec using both its name and format code
func (r *Registry) Register(codec SampleCodec) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.codecs[codec.Name()] = codec
	r.codecs[formatKey(codec.FormatCode())] = codec
}

// Get retrieves a codec by name or format code
func (r *Registry) Get(nameOrCode string) (SampleCodec, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	codec, ok := r.codecs[nameOrCode]
	if !ok {
		return nil, ErrCodecNotFound
	}
	return codec, nil
}

// ForFormatCode retrieves a codec by SEG-Y data sample format code
func (r *Registry) ForFormatCode(code uint16) (SampleCodec, error) {
	return r.Get(formatKey(code))
}

// List returns all registered codecs (deduplicated)
func (r *Registry) List() []SampleCodec {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[SampleCodec]bool)
	codecs := make([]SampleCodec, 0)

	for _, codec := range r.codecs {
		if !seen[codec] {
			seen[codec] = true
			codecs = append(codecs, codec)
		}
	}

	return codecs
}

func formatKey(code uint16) string {
	return strconv.Itoa(int(code))
}
