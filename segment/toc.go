package segment

import (
	"regexp"
	"sort"
	"strings"

	"github.com/maktaba/kitab/script"
)

// TOCEntry is one parsed table-of-contents line: a chapter title and the
// page number printed next to it. Printed page numbers rarely match physical
// PDF page positions; callers supply an offset when slicing.
type TOCEntry struct {
	Title       string
	PrintedPage int
}

// Keywords that identify a table-of-contents page in Arabic books.
var tocKeywords = []string{"المحتويات", "فهرس", "جدول المحتويات", "contents"}

// A TOC line: title, a run of dot leaders or dashes, then a 1-4 digit page
// number in Latin or Arabic-Indic digits at the end of the line.
var trailingPage = regexp.MustCompile(
	`^(?P<title>.+?)\s*[.·•\-–—،…\s]*\s(?P<page>[0-9\x{0660}-\x{0669}]{1,4})$`)

// Dot leaders and dash runs between title and page number.
var leaderRun = regexp.MustCompile(`[.·•،…\-–—]{2,}`)

var digitRun = regexp.MustCompile(`\d+`)

// ParsePageNumber extracts the first integer from s, converting Arabic-Indic
// digits first. Returns -1 when s contains no digits.
func ParsePageNumber(s string) int {
	s = strings.Map(func(r rune) rune {
		if script.IsArabicDigit(r) {
			return '0' + (r - '٠')
		}
		return r
	}, s)
	m := digitRun.FindString(s)
	if m == "" {
		return -1
	}
	n := 0
	for _, c := range m {
		n = n*10 + int(c-'0')
	}
	return n
}

// DetectTOCPage scans up to maxScan leading pages for a table-of-contents
// keyword and returns the 0-based index of the first match, or -1.
func DetectTOCPage(pages []Page, maxScan int) int {
	for i, page := range pages {
		if i >= maxScan {
			break
		}
		for _, kw := range tocKeywords {
			if strings.Contains(page.Text, kw) {
				return page.Index
			}
		}
	}
	return -1
}

// ParseTOC extracts TOC entries from the recognized text of a contents page.
// Lines that do not end in a page number are skipped.
func ParseTOC(text string) []TOCEntry {
	var entries []TOCEntry
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		line = leaderRun.ReplaceAllString(line, " … ")

		m := trailingPage.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		title := strings.TrimSpace(strings.Trim(m[1], ". \t…"))
		page := ParsePageNumber(m[2])
		if title == "" || page < 0 {
			continue
		}
		entries = append(entries, TOCEntry{Title: title, PrintedPage: page})
	}
	return entries
}

// SegmentByTOC slices pages into chapters at the page boundaries named by
// the TOC. offset maps printed page numbers to physical positions
// (physical = printed + offset, 1-based). Entries landing outside the
// document are dropped; if none remain, SegmentByTOC returns nil and the
// caller should fall back to heuristic segmentation.
func (d *Detector) SegmentByTOC(pages []Page, entries []TOCEntry, offset int) []Chapter {
	type start struct {
		title string
		page  int // 0-based physical index
	}
	var starts []start
	for _, e := range entries {
		phys := e.PrintedPage + offset - 1
		if phys < 0 || phys >= len(pages) {
			continue
		}
		starts = append(starts, start{title: e.Title, page: phys})
	}
	if len(starts) == 0 {
		return nil
	}
	sort.SliceStable(starts, func(i, j int) bool { return starts[i].page < starts[j].page })

	chapters := make([]Chapter, 0, len(starts))
	for i, s := range starts {
		end := len(pages)
		if i+1 < len(starts) {
			end = starts[i+1].page
		}
		var body []string
		for _, p := range pages[s.page:end] {
			body = append(body, p.Text)
		}
		chapters = append(chapters, Chapter{
			Title:     s.title,
			Body:      strings.TrimSpace(strings.Join(body, "\n")),
			StartPage: s.page,
			Order:     i,
		})
	}
	return chapters
}
