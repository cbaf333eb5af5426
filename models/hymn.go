package models

// HymnEntry is one hymn (TSP) or psalm from the bundled per-language
// datasets. Entries come from static JSON assets, not Firestore.
type HymnEntry struct {
	TSPNumber   int    `json:"tsp_number,omitempty"`
	PsalmNumber int    `json:"psalm_number,omitempty"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	AudioURL    string `json:"audioUrl,omitempty"`
}

// Number returns whichever source number the entry carries.
func (e HymnEntry) Number() int {
	if e.TSPNumber != 0 {
		return e.TSPNumber
	}
	return e.PsalmNumber
}
