package media

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bogem/id3v2/v2"
	"github.com/dhowden/tag"
)

type audioMeta struct {
	title  string
	artist string
	album  string
}

// readAudioMeta reads tag metadata. Missing or unreadable tags yield empty
// fields; an attachment never fails because of its tags.
func readAudioMeta(path string) audioMeta {
	f, err := os.Open(path)
	if err != nil {
		return audioMeta{}
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		if strings.ToLower(filepath.Ext(path)) == ExtMP3 {
			// dhowden/tag has issues with some UTF-16 encoded ID3 tags
			return readID3Meta(path)
		}
		return audioMeta{}
	}

	artist := m.Artist()
	if artist == "" {
		artist = m.AlbumArtist()
	}
	return audioMeta{
		title:  strings.TrimSpace(m.Title()),
		artist: strings.TrimSpace(artist),
		album:  strings.TrimSpace(m.Album()),
	}
}

func readID3Meta(path string) audioMeta {
	id3tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return audioMeta{}
	}
	defer id3tag.Close()

	return audioMeta{
		title:  strings.TrimSpace(id3tag.Title()),
		artist: strings.TrimSpace(id3tag.Artist()),
		album:  strings.TrimSpace(id3tag.Album()),
	}
}
