package models

// Torrent is a download descriptor returned by the torrent-metadata
// lookup. Field names follow the YTS API payload.
type Torrent struct {
	URL          string `json:"url"`
	Hash         string `json:"hash"`
	Quality      string `json:"quality"`
	Type         string `json:"type"`
	Seeds        int    `json:"seeds"`
	Peers        int    `json:"peers"`
	Size         string `json:"size"`
	DateUploaded string `json:"date_uploaded"`
}

// StreamingSource is one external embed server for a title.
type StreamingSource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}
