package relay

import (
	"encoding/gob"
	"fmt"
	"io"
)

// Envelope is the wire form of a tag: exactly one gob encoded Envelope per
// connection. Value must hold a string or a []byte to be traced; other types
// registered with gob decode fine but are classified as invalid.
type Envelope struct {
	Value interface{}
}

// EncodeTag writes value to w the way a caller of the remote call server
// does. value is usually a string or a []byte.
//
//	conn, _ := net.Dial("tcp", "localhost:33744")
//	defer conn.Close()
//	_ = relay.EncodeTag(conn, "FW4;129;12;...")
func EncodeTag(w io.Writer, value interface{}) error {
	if err := gob.NewEncoder(w).Encode(Envelope{Value: value}); err != nil {
		return fmt.Errorf("failed to encode tag: %w", err)
	}
	return nil
}

// decodeValue reads one Envelope from r, never consuming more than maxSize
// bytes, and returns its value together with the number of bytes read.
func decodeValue(r io.Reader, maxSize int64) (interface{}, int64, error) {
	counter := &countingReader{r: io.LimitReader(r, maxSize)}

	var env Envelope
	if err := gob.NewDecoder(counter).Decode(&env); err != nil {
		return nil, counter.n, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return env.Value, counter.n, nil
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
