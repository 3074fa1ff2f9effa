package block

// Block is a node of a parsed document. A freeform block has no name,
// no attributes and no children; its Raw text is document content found
// outside any delimiter.
type Block struct {
	// Name is the namespaced block name, empty for freeform text.
	Name string

	// Attrs is nil when the opener carried no attribute payload or the
	// payload was not a JSON object. A literal {} payload gives an
	// empty, non-nil map.
	Attrs map[string]any

	Children []*Block

	// Raw is the document text spanned by the block, delimiters
	// included.
	Raw string

	// Segments is Raw split at the children: Raw is Segments[0],
	// Children[0].Raw, Segments[1], ... Segments[len(Children)].
	Segments []string

	// Opener and Closer are the delimiter texts. Closer is empty for
	// void and unterminated blocks.
	Opener, Closer string

	// Start and End are the half open byte offsets of Raw in the
	// document.
	Start, End int

	Void bool

	// Unterminated is set when the document ended before the closer,
	// in which case the block was closed at the end of the document.
	Unterminated bool
}

// Freeform makes a text block for doc[start:end].
func Freeform(doc string, start, end int) *Block {
	start = max(0, min(start, len(doc)))
	end = max(start, min(end, len(doc)))
	raw := doc[start:end]
	return &Block{
		Raw:      raw,
		Segments: []string{raw},
		Start:    start,
		End:      end,
	}
}

func (b *Block) IsFreeform() bool {
	return b.Name == ""
}

// Namespace returns the part of Name before the last '/', if any.
func (b *Block) Namespace() string {
	for i := len(b.Name) - 1; i >= 0; i-- {
		if b.Name[i] == '/' {
			return b.Name[:i]
		}
	}
	return ""
}

func (b *Block) segments() []string {
	if len(b.Segments) == 0 && len(b.Children) == 0 {
		return []string{b.Raw}
	}
	return b.Segments
}
