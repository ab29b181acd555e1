package material

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Persisted material state is framed as a sequence of chunks: a uint16
// chunk identifier, a uint32 payload length and the payload bytes, all
// little-endian. A version-tag chunk is always written ahead of the
// host-owned base-state chunk so future versions can migrate the format.
// Unknown chunk identifiers are skipped on load.
const (
	ChunkFileFormatVersion uint16 = 0x2000
	ChunkMtlBase           uint16 = 0x2001
)

// FileFormatVersion is the version tag written by Save.
const FileFormatVersion uint16 = 1

// Save persists the material header followed by the host-owned base
// state. Either everything is written or an error is returned and the
// caller aborts the save of this object.
func (m *GlassMtl) Save(w io.Writer, base []byte) error {
	var version [2]byte
	binary.LittleEndian.PutUint16(version[:], FileFormatVersion)

	if err := writeChunk(w, ChunkFileFormatVersion, version[:]); err != nil {
		return err
	}
	return writeChunk(w, ChunkMtlBase, base)
}

// Load reads back a stream produced by Save and returns the host-owned
// base state. Chunks with unknown identifiers are skipped without
// aborting the load.
func (m *GlassMtl) Load(r io.Reader) ([]byte, error) {
	version, base, err := readChunks(r)
	if err != nil {
		return nil, err
	}
	if version > FileFormatVersion {
		return nil, fmt.Errorf("unsupported material file format version %d", version)
	}
	return base, nil
}

func readChunks(r io.Reader) (version uint16, base []byte, err error) {
	for {
		id, payload, err := readChunk(r)
		if err == io.EOF {
			return version, base, nil
		}
		if err != nil {
			return 0, nil, err
		}

		switch id {
		case ChunkFileFormatVersion:
			if len(payload) != 2 {
				return 0, nil, fmt.Errorf("malformed version chunk: %d payload bytes", len(payload))
			}
			version = binary.LittleEndian.Uint16(payload)
		case ChunkMtlBase:
			base = payload
		default:
			// Chunk written by a newer version; ignore it.
		}
	}
}

func writeChunk(w io.Writer, id uint16, payload []byte) error {
	var header [6]byte
	binary.LittleEndian.PutUint16(header[0:2], id)
	binary.LittleEndian.PutUint32(header[2:6], uint32(len(payload)))

	if _, err := w.Write(header[:]); err != nil {
		return err
	}
	_, err := w.Write(payload)
	return err
}

func readChunk(r io.Reader) (uint16, []byte, error) {
	var header [6]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		if err == io.ErrUnexpectedEOF {
			return 0, nil, fmt.Errorf("truncated chunk header")
		}
		return 0, nil, err
	}

	id := binary.LittleEndian.Uint16(header[0:2])
	size := binary.LittleEndian.Uint32(header[2:6])

	payload := make([]byte, size)
	if _, err := io.ReadFull(r, payload); err != nil {
		return 0, nil, fmt.Errorf("truncated payload for chunk 0x%04x", id)
	}
	return id, payload, nil
}
