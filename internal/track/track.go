// Package track interprets the raw metadata records produced by the
// player backends: a comma-delimited line of title, one or more artist
// fields, and the track URL.
package track

import (
	"errors"
	"strings"
)

// ErrMalformed is returned when a record carries fewer than the three
// mandatory fields (title, artist, url).
var ErrMalformed = errors.New("track: malformed metadata record")

// Info is a parsed metadata record
type Info struct {
	Title   string
	Artists []string
	URL     string
}

// Options controls how a record is turned into display text
type Options struct {
	// ASCIIOnly replaces any title or artist containing non-ASCII runes
	// with Placeholder, independently per field.
	ASCIIOnly bool
	// Placeholder is the configured error text substituted for rejected
	// fields.
	Placeholder string
}

// Parse splits a raw record into its fields. The record must have at
// least three: a title, one or more artists, and the URL last. Records
// with fewer fields usually mean the backend command failed mid-write.
func Parse(record string) (Info, error) {
	fields := strings.Split(record, ",")
	if len(fields) < 3 {
		return Info{}, ErrMalformed
	}
	return Info{
		Title:   fields[0],
		Artists: fields[1 : len(fields)-1],
		URL:     fields[len(fields)-1],
	}, nil
}

// Display renders the record as "title - artist[,artist...]".
//
// An empty title falls back to a readable name derived from the URL:
// only the last path segment is kept and %20 sequences become spaces,
// which turns file-source URLs like file:///x/Some%20Song.mp3 into
// "Some Song.mp3". Only the literal %20 form is decoded; the layout
// contract pins that exact transform.
func (i Info) Display(opts Options) string {
	title := i.Title
	if title == "" {
		title = TitleFromURL(i.URL)
	}

	artists := i.Artists
	if opts.ASCIIOnly {
		if !isASCII(title) {
			title = opts.Placeholder
		}
		artists = make([]string, len(i.Artists))
		for n, artist := range i.Artists {
			if isASCII(artist) {
				artists[n] = artist
			} else {
				artists[n] = opts.Placeholder
			}
		}
	}

	return title + " - " + strings.Join(artists, ",")
}

// TitleFromURL derives a display title from a track URL: the last
// path segment with %20 decoded to spaces.
func TitleFromURL(url string) string {
	segments := strings.Split(url, "/")
	return strings.ReplaceAll(segments[len(segments)-1], "%20", " ")
}

func isASCII(s string) bool {
	for _, r := range s {
		if r > 127 {
			return false
		}
	}
	return true
}
