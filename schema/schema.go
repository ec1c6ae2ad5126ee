package schema

// Limits is the capacity ceiling a downstream consumer enforces on a single
// payload. All fields are counts, never negative. When the byte and
// character estimates disagree, the byte limit is the binding constraint.
type Limits struct {
	MaxTokens      int `yaml:"max_tokens"`
	MaxChars       int `yaml:"max_chars"`
	MaxBytes       int `yaml:"max_bytes"`
	MaxImages      int `yaml:"max_images"`
	ImageByteLimit int `yaml:"image_byte_limit"`
}

// Image is a normalized binary attachment. It is created once during
// normalization and never split or duplicated across chunks.
type Image struct {
	Data      []byte
	MimeType  string
	SizeBytes int
}

func NewImage(data []byte, mimeType string) Image {
	return Image{
		Data:      data,
		MimeType:  mimeType,
		SizeBytes: len(data),
	}
}

// Chunk is one self-contained, limit-compliant slice of the input. Images
// are attached to index 0 only; every later chunk carries none.
type Chunk struct {
	Text   string
	Images []Image
	Index  int
}

// ChunkOptions tunes the partitioner. CustomLimits overlays its non-zero
// fields onto the resolved provider limits.
type ChunkOptions struct {
	ChunkOverlap          int
	RespectWordBoundaries bool
	CustomLimits          *Limits
}

// Metadata sums the estimated footprint of all produced chunks. Overlap
// regions are counted once per chunk they appear in, so the totals reflect
// what will actually be transmitted.
type Metadata struct {
	Provider        string
	Model           string
	TotalChunks     int
	EstimatedTokens int
	EstimatedBytes  int
}

// Request describes one chunking call. Images holds raw representations
// (byte buffer, base64 string, data URL, or an explicit buffer/MIME pair)
// that are normalized before any measurement.
type Request struct {
	Provider string
	Model    string
	Input    string
	Images   []any
	Options  *ChunkOptions
}

type Result struct {
	Chunks   []Chunk
	Metadata Metadata
}
