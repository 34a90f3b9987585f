package docai

import (
	"strings"

	"cloud.google.com/go/documentai/apiv1/documentaipb"
)

// NoTextSentinel is returned when no tier of the response carries text.
const NoTextSentinel = "No text could be extracted from the document."

// ExtractText returns the best available text in the document, in
// descending structural fidelity: the flat text field, then chunk
// contents, then layout block text. Proto getters are nil-safe, so a
// partially populated response falls through to the next tier.
func ExtractText(doc *documentaipb.Document) string {
	if t := doc.GetText(); strings.TrimSpace(t) != "" {
		return t
	}

	if chunks := doc.GetChunkedDocument().GetChunks(); len(chunks) > 0 {
		var b strings.Builder
		for _, chunk := range chunks {
			b.WriteString(chunk.GetContent())
			b.WriteByte('\n')
		}
		if s := b.String(); strings.TrimSpace(s) != "" {
			return s
		}
	}

	if blocks := doc.GetDocumentLayout().GetBlocks(); len(blocks) > 0 {
		var b strings.Builder
		for _, block := range blocks {
			if tb := block.GetTextBlock(); tb != nil {
				b.WriteString(tb.GetText())
				b.WriteByte('\n')
			}
		}
		if s := b.String(); strings.TrimSpace(s) != "" {
			return s
		}
	}

	return NoTextSentinel
}
