package export

import (
	"encoding/json"
	"fmt"

	"github.com/maktaba/kitab/segment"
)

// ChapterJSON is the wire form of one chapter. The field set is fixed:
// title, bodyText, startPageIndex.
type ChapterJSON struct {
	Title          string `json:"title"`
	BodyText       string `json:"bodyText"`
	StartPageIndex int    `json:"startPageIndex"`
}

// ChapterList converts chapters into their JSON-serializable form,
// preserving order. The result is never nil, so zero chapters marshal as an
// empty array rather than null.
func ChapterList(chapters []segment.Chapter) []ChapterJSON {
	out := make([]ChapterJSON, 0, len(chapters))
	for _, ch := range chapters {
		out = append(out, ChapterJSON{
			Title:          ch.Title,
			BodyText:       ch.Body,
			StartPageIndex: ch.StartPage,
		})
	}
	return out
}

// MarshalChapters renders chapters as an ordered JSON array.
func MarshalChapters(chapters []segment.Chapter) ([]byte, error) {
	data, err := json.Marshal(ChapterList(chapters))
	if err != nil {
		return nil, fmt.Errorf("marshal chapters: %w", err)
	}
	return data, nil
}
