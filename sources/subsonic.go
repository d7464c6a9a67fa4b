package sources

import (
	"log/slog"
	"net/http"
	"path"
	"strconv"
	"time"

	"github.com/csmith/tunelist/model"
	"github.com/csmith/tunelist/tags"
	"github.com/supersonic-app/go-subsonic/subsonic"
	"go.senan.xyz/taglib"
)

const subsonicBatchSize = 500

// Subsonic is a library backed by the songs indexed on a Subsonic server
type Subsonic struct {
	BaseURL    string
	Username   string
	Password   string
	ClientName string

	client *subsonic.Client
}

// Tracks retrieves every song on the server and normalises it the same way
// as a file read from disk
func (s *Subsonic) Tracks() ([]model.TrackRecord, error) {
	client, err := s.getClient()
	if err != nil {
		return nil, err
	}

	albumArtists, err := s.getAlbumArtists(client)
	if err != nil {
		return nil, err
	}

	songs, err := s.getAllSongs(client)
	if err != nil {
		return nil, err
	}

	records := make([]model.TrackRecord, 0, len(songs))
	for _, song := range songs {
		records = append(records, songToRecord(song, albumArtists))
		if len(records)%progressInterval == 0 {
			slog.Info("Processed songs", "count", len(records), "source", "subsonic")
		}
	}

	slog.Info("Finished reading library", "count", len(records), "source", "subsonic")
	return records, nil
}

// getClient lazily connects to the Subsonic server
func (s *Subsonic) getClient() (*subsonic.Client, error) {
	if s.client != nil {
		return s.client, nil
	}

	client := &subsonic.Client{
		Client:     http.DefaultClient,
		BaseUrl:    s.BaseURL,
		User:       s.Username,
		ClientName: s.ClientName,
	}

	if s.Password != "" {
		if err := client.Authenticate(s.Password); err != nil {
			return nil, err
		}
	}

	s.client = client
	return s.client, nil
}

// getAlbumArtists maps album IDs to the artist credited for the whole album
func (s *Subsonic) getAlbumArtists(client *subsonic.Client) (map[string]string, error) {
	slog.Debug("Retrieving album artists", "source", "subsonic")

	artists := make(map[string]string)
	offset := 0

	for {
		albums, err := client.GetAlbumList("alphabeticalByName", map[string]string{
			"size":   strconv.Itoa(subsonicBatchSize),
			"offset": strconv.Itoa(offset),
		})
		if err != nil {
			return nil, err
		}

		for _, album := range albums {
			if album.Artist != "" {
				artists[album.ID] = album.Artist
			}
		}

		if len(albums) < subsonicBatchSize {
			break
		}
		offset += subsonicBatchSize
	}

	slog.Debug("Retrieved album artists", "count", len(artists), "source", "subsonic")
	return artists, nil
}

// getAllSongs retrieves all songs from the Subsonic server
func (s *Subsonic) getAllSongs(client *subsonic.Client) ([]*subsonic.Child, error) {
	slog.Debug("Retrieving all songs", "source", "subsonic")

	var allSongs []*subsonic.Child
	offset := 0

	for {
		results, err := client.Search3("", map[string]string{
			"songCount":   strconv.Itoa(subsonicBatchSize),
			"songOffset":  strconv.Itoa(offset),
			"artistCount": "0",
			"albumCount":  "0",
		})
		if err != nil {
			return nil, err
		}

		allSongs = append(allSongs, results.Song...)

		if len(results.Song) < subsonicBatchSize {
			break
		}
		offset += subsonicBatchSize
	}

	slog.Debug("Retrieved all songs", "count", len(allSongs), "source", "subsonic")
	return allSongs, nil
}

// songToRecord feeds a song's fields through the same normalisation used for
// local files
func songToRecord(song *subsonic.Child, albumArtists map[string]string) model.TrackRecord {
	generic := make(map[string][]string)
	set := func(key, value string) {
		if value != "" {
			generic[key] = []string{value}
		}
	}

	set(taglib.Artist, song.Artist)
	set(taglib.Title, song.Title)
	set(taglib.Album, song.Album)
	set(taglib.AlbumArtist, albumArtists[song.AlbumID])
	if song.DiscNumber > 0 {
		set(taglib.DiscNumber, strconv.Itoa(song.DiscNumber))
	}
	if song.Track > 0 {
		set(taglib.TrackNumber, strconv.Itoa(song.Track))
	}

	name := song.Path
	if name == "" {
		name = song.ID
	}

	record := tags.Normalize(tags.Tags{Generic: generic}, path.Base(name))
	if song.Duration > 0 {
		record.Length = tags.FormatLength(time.Duration(song.Duration) * time.Second)
	}
	return record
}

var _ model.Library = &Subsonic{}
