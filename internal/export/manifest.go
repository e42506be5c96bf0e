package export

import (
	"encoding/json"
	"os"
)

// Manifest describes an exported frame sequence for downstream assembly
// (ffmpeg, web players). Written as manifest.json next to the frames.
type Manifest struct {
	Width      int      `json:"width"`
	Height     int      `json:"height"`
	FrameCount int      `json:"frame_count"`
	FrameDelay int      `json:"frame_delay_ms"`
	NoiseSeed  int64    `json:"noise_seed"`
	Frames     []string `json:"frames"`
}

// WriteManifest writes manifest.json describing an exported sequence. A nil
// Frames list is filled in from FrameCount.
func WriteManifest(path string, m Manifest) error {
	if m.Frames == nil {
		m.Frames = make([]string, m.FrameCount)
		for i := range m.Frames {
			m.Frames[i] = frameName(i)
		}
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
