package golden

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

// writeRaw compresses payload without any L2GV framing.
func writeRaw(w io.Writer, payload []byte) error {
	enc, err := zstd.NewWriter(w)
	if err != nil {
		return err
	}
	if _, err := enc.Write(payload); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}
