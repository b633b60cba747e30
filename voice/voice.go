// Package voice implements the client side of the push-to-talk chat
// channel: accumulating captured audio into a clip, reassembling clips
// streamed by the server, and sniffing the container format so the right
// decoder is picked for playback.
package voice

import "bytes"

// Sentinel is the fixed ASCII end-of-audio marker interleaved into the
// binary chunk stream as an alternative to an explicit control frame.
const Sentinel = "__AUDIO_END__"

// Format is an audio container format detected from magic bytes.
type Format int

const (
	FormatMP3 Format = iota
	FormatWAV
	FormatOgg
)

func (f Format) String() string {
	switch f {
	case FormatWAV:
		return "wav"
	case FormatOgg:
		return "ogg"
	}
	return "mp3"
}

// Sniff detects the container format from a clip's leading bytes:
// ID3 tag or MPEG sync word selects MP3, "RIFF" WAV, "OggS" Ogg.
// Anything unrecognized defaults to MP3.
func Sniff(b []byte) Format {
	if len(b) >= 4 {
		if bytes.HasPrefix(b, []byte("RIFF")) {
			return FormatWAV
		}
		if bytes.HasPrefix(b, []byte("OggS")) {
			return FormatOgg
		}
	}
	if len(b) >= 3 && bytes.HasPrefix(b, []byte("ID3")) {
		return FormatMP3
	}
	if len(b) >= 2 && b[0] == 0xFF && b[1]&0xE0 == 0xE0 {
		return FormatMP3
	}
	return FormatMP3
}
