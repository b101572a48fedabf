// Package media classifies and describes files attached to issue pages.
package media

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Kind is the category of an attached file.
type Kind string

const (
	KindPDF   Kind = "pdf"
	KindAudio Kind = "audio"
)

// File extensions recognized without sniffing.
const (
	ExtPDF  = ".pdf"
	ExtMP3  = ".mp3"
	ExtFLAC = ".flac"
	ExtOGG  = ".ogg"
	ExtOPUS = ".opus"
	ExtM4A  = ".m4a"
	ExtWAV  = ".wav"
)

// sniffLen is how many leading bytes Classify inspects.
const sniffLen = 12

// ErrUnsupported is returned for files that are neither PDF nor audio.
var ErrUnsupported = errors.New("unsupported media type")

// Embed is a file attached to an issue page.
type Embed struct {
	ID      int64
	Path    string
	Kind    Kind
	Size    int64
	URL     string
	Title   string
	Artist  string
	Album   string
	AddedAt time.Time
}

// HumanSize returns the file size in IEC units.
func (e Embed) HumanSize() string {
	if e.Size < 0 {
		return "?"
	}
	return humanize.IBytes(uint64(e.Size))
}

// Age describes when the embed was attached relative to now.
func (e Embed) Age(now time.Time) string {
	if e.AddedAt.IsZero() {
		return ""
	}
	return humanize.RelTime(e.AddedAt, now, "ago", "from now")
}

// Label is the display name of the embed.
func (e Embed) Label() string {
	switch {
	case e.Title != "" && e.Artist != "":
		return e.Artist + " - " + e.Title
	case e.Title != "":
		return e.Title
	default:
		return filepath.Base(e.Path)
	}
}

// Open stats and classifies the file at path and reads its metadata.
func Open(path string) (Embed, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return Embed{}, fmt.Errorf("resolve %s: %w", path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return Embed{}, err
	}
	if info.IsDir() {
		return Embed{}, fmt.Errorf("%s is a directory: %w", path, ErrUnsupported)
	}

	kind, err := Classify(abs)
	if err != nil {
		return Embed{}, err
	}

	e := Embed{
		Path:    abs,
		Kind:    kind,
		Size:    info.Size(),
		URL:     FileURL(abs),
		AddedAt: time.Now(),
	}
	if kind == KindAudio {
		meta := readAudioMeta(abs)
		e.Title = meta.title
		e.Artist = meta.artist
		e.Album = meta.album
	}
	return e, nil
}

// FileURL returns the file:// URL for an absolute path.
func FileURL(abs string) string {
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	return u.String()
}

// Classify reports the kind of the file at path, by extension first and then
// by its leading bytes.
func Classify(path string) (Kind, error) {
	if kind, ok := kindByExt(path); ok {
		return kind, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", err
	}
	if kind, ok := Sniff(head[:n]); ok {
		return kind, nil
	}
	return "", fmt.Errorf("%s: %w", filepath.Base(path), ErrUnsupported)
}

// Sniff classifies content by its magic bytes.
func Sniff(head []byte) (Kind, bool) {
	switch {
	case bytes.HasPrefix(head, []byte("%PDF-")):
		return KindPDF, true
	case bytes.HasPrefix(head, []byte("ID3")),
		bytes.HasPrefix(head, []byte("fLaC")),
		bytes.HasPrefix(head, []byte("OggS")):
		return KindAudio, true
	case len(head) >= 12 && bytes.Equal(head[:4], []byte("RIFF")) && bytes.Equal(head[8:12], []byte("WAVE")):
		return KindAudio, true
	case len(head) >= 2 && head[0] == 0xff && head[1]&0xe0 == 0xe0:
		// MPEG audio frame sync
		return KindAudio, true
	}
	return "", false
}

func kindByExt(path string) (Kind, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ExtPDF:
		return KindPDF, true
	case ExtMP3, ExtFLAC, ExtOGG, ExtOPUS, ExtM4A, ExtWAV:
		return KindAudio, true
	}
	return "", false
}
