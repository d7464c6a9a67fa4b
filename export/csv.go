// Package export reads and writes the flat CSV form of a track library.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/csmith/tunelist/model"
)

// ErrBadHeader is returned when reading a file that isn't a library export
var ErrBadHeader = errors.New("unexpected header row")

// Header is the fixed first row of every export
var Header = []string{"Artist", "Title", "Length", "Album", "AlbumArtist", "Disc", "Track"}

// Write creates (or truncates) the file at path and writes records to it
func Write(path string, records []model.TrackRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export: %w", err)
	}

	if err := WriteTo(f, records); err != nil {
		_ = f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close export: %w", err)
	}

	slog.Info("CSV written", "path", path, "count", len(records))
	return nil
}

// WriteTo writes the header followed by one row per record
func WriteTo(w io.Writer, records []model.TrackRecord) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(Header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, record := range records {
		if err := writer.Write(toRow(record)); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// Read parses a previous export
func Read(path string) ([]model.TrackRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadFrom(f)
}

// ReadFrom parses an export from r, header included
func ReadFrom(r io.Reader) ([]model.TrackRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(Header)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	if !slices.Equal(header, Header) {
		return nil, fmt.Errorf("%w: %v", ErrBadHeader, header)
	}

	var records []model.TrackRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		records = append(records, fromRow(row))
	}

	return records, nil
}

func toRow(r model.TrackRecord) []string {
	return []string{r.Artist, r.Title, r.Length, r.Album, r.AlbumArtist, r.Disc, r.Track}
}

func fromRow(row []string) model.TrackRecord {
	return model.TrackRecord{
		Artist:      row[0],
		Title:       row[1],
		Length:      row[2],
		Album:       row[3],
		AlbumArtist: row[4],
		Disc:        row[5],
		Track:       row[6],
	}
}
