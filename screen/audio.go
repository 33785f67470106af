package screen

import (
	"fmt"

	"github.com/gordonklaus/portaudio"
)

const sampleRate = 44100

// audioStream is the boundary audio output this core makes available to a
// screen: no APU samples are produced, so the callback always emits
// silence, but the stream itself is opened and started like a real one
// would be so a future APU has a ready-made sink.
type audioStream struct {
	stream *portaudio.Stream
}

// newAudioStream opens a silent default output stream.
func newAudioStream() (*audioStream, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("screen: failed to initialize portaudio: %w", err)
	}
	a := &audioStream{}
	cb := func(out []float32) {
		for i := range out {
			out[i] = 0
		}
	}
	stream, err := portaudio.OpenDefaultStream(0, 2, sampleRate, 0, cb)
	if err != nil {
		return nil, fmt.Errorf("screen: failed to open the audio stream: %w", err)
	}
	a.stream = stream
	if err := stream.Start(); err != nil {
		return nil, fmt.Errorf("screen: failed to start the audio stream: %w", err)
	}
	return a, nil
}

// close stops the stream and terminates portaudio.
func (a *audioStream) close() {
	a.stream.Close()
	portaudio.Terminate()
}
