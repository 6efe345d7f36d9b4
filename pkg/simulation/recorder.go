package simulation

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/lao-tseu-is-alive/go-smart-boids/pb"
	"google.golang.org/protobuf/encoding/protodelim"
)

// Recorder appends snapshots to a stream of size-delimited protobuf messages,
// one FlockSnapshot per frame.
type Recorder struct {
	w      *bufio.Writer
	closer io.Closer
	frames int
}

func NewRecorder(w io.Writer) *Recorder {
	r := &Recorder{w: bufio.NewWriter(w)}
	if c, ok := w.(io.Closer); ok {
		r.closer = c
	}
	return r
}

// CreateRecorder truncates or creates the file at path.
func CreateRecorder(path string) (*Recorder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create recording: %w", err)
	}
	return NewRecorder(f), nil
}

func (r *Recorder) Write(s *pb.FlockSnapshot) error {
	if _, err := protodelim.MarshalTo(r.w, s); err != nil {
		return fmt.Errorf("failed to record frame %d: %w", r.frames, err)
	}
	r.frames++
	return nil
}

// Frames is the number of snapshots written so far.
func (r *Recorder) Frames() int { return r.frames }

// Close flushes the pending frames and closes the underlying writer when it is a Closer.
func (r *Recorder) Close() error {
	err := r.w.Flush()
	if r.closer != nil {
		err = errors.Join(err, r.closer.Close())
	}
	return err
}

// ReadFrames calls fn for every snapshot of a recording, in order.
// It stops at the first error returned by fn.
func ReadFrames(r io.Reader, fn func(*pb.FlockSnapshot) error) error {
	br := bufio.NewReader(r)
	for i := 0; ; i++ {
		s := &pb.FlockSnapshot{}
		if err := protodelim.UnmarshalFrom(br, s); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("failed to read frame %d: %w", i, err)
		}
		if err := fn(s); err != nil {
			return err
		}
	}
}
