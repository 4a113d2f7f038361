package entity

import (
	"encoding/json"
)

// albumEntryObject covers both object shapes an album entry arrives in: the
// normalized {image_url, link_url} form this service writes, and the verbose
// upstream {image_file_uri, url} form copied from source posts.
type albumEntryObject struct {
	ImageURL     string `json:"image_url"`
	LinkURL      string `json:"link_url"`
	ImageFileURI string `json:"image_file_uri"`
	URL          string `json:"url"`
}

// UnmarshalJSON accepts every shape an album entry has been stored in: a bare
// URL string, the upstream {image_file_uri, url} object, or the normalized
// {image_url, link_url} object. All decode into the single normalized form.
func (a *AlbumImage) UnmarshalJSON(data []byte) error {
	var bare string
	if err := json.Unmarshal(data, &bare); err == nil {
		a.ImageURL = bare
		a.LinkURL = ""

		return nil
	}

	var obj albumEntryObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}

	if obj.ImageURL != "" {
		a.ImageURL = obj.ImageURL
		a.LinkURL = obj.LinkURL

		return nil
	}

	a.ImageURL = obj.ImageFileURI
	a.LinkURL = obj.URL

	return nil
}
