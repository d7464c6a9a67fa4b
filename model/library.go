package model

// Library represents somewhere track records can be collected from
type Library interface {
	Tracks() ([]TrackRecord, error)
}
