package main

import (
	"flag"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/csmith/tunelist/model"
	"github.com/csmith/tunelist/publish"
	"github.com/csmith/tunelist/sources"
	"github.com/csmith/tunelist/tags"
)

var (
	source     = flag.String("source", "filesystem", "Where to read tracks from: filesystem or subsonic")
	rootPath   = flag.String("root", ".", "Directory to scan for audio files")
	outputPath = flag.String("output", "music_library.csv", "Path to write the CSV export to")
	extensions = flag.String("extensions", strings.Join(sources.DefaultExtensions, ","), "Comma-separated list of audio file extensions to scan")

	subsonicServer   = flag.String("subsonic-server", "", "Subsonic server base address")
	subsonicUsername = flag.String("subsonic-username", "", "Subsonic username")
	subsonicPassword = flag.String("subsonic-password", "", "Subsonic password")

	publishExport = flag.Bool("publish", false, "Commit the export with git and push it")
	gitDir        = flag.String("git-dir", "", "Git working tree to publish from. Defaults to the directory containing the output file")
	gitRemote     = flag.String("git-remote", "", "Remote to push to. Uses git's default if empty")
	gitBranch     = flag.String("git-branch", "", "Branch to push. Only used if a remote is given")
	commitMessage = flag.String("commit-message", "Update music library", "Commit message used when publishing")
)

// Config is everything needed for a single export run
type Config struct {
	Source     string
	RootPath   string
	OutputPath string
	Extensions []string

	SubsonicServer   string
	SubsonicUsername string
	SubsonicPassword string

	Publish       bool
	GitDir        string
	GitRemote     string
	GitBranch     string
	CommitMessage string
}

func configFromFlags() Config {
	return Config{
		Source:           *source,
		RootPath:         *rootPath,
		OutputPath:       *outputPath,
		Extensions:       splitList(*extensions),
		SubsonicServer:   *subsonicServer,
		SubsonicUsername: *subsonicUsername,
		SubsonicPassword: *subsonicPassword,
		Publish:          *publishExport,
		GitDir:           *gitDir,
		GitRemote:        *gitRemote,
		GitBranch:        *gitBranch,
		CommitMessage:    *commitMessage,
	}
}

// Library returns the configured source of tracks
func (c Config) Library() (model.Library, error) {
	switch c.Source {
	case "", "filesystem":
		return &sources.Filesystem{
			Root:       c.RootPath,
			Extensions: c.Extensions,
			Extractor:  tags.NewExtractor(),
		}, nil
	case "subsonic":
		if c.SubsonicServer == "" {
			return nil, fmt.Errorf("subsonic-server must be specified")
		}
		return &sources.Subsonic{
			BaseURL:    c.SubsonicServer,
			Username:   c.SubsonicUsername,
			Password:   c.SubsonicPassword,
			ClientName: "tunelist",
		}, nil
	default:
		return nil, fmt.Errorf("source not configured or invalid: %s", c.Source)
	}
}

// Publisher returns the configured publisher, or nil if publishing is off
func (c Config) Publisher() publish.Publisher {
	if !c.Publish {
		return nil
	}

	dir := c.GitDir
	if dir == "" {
		dir = filepath.Dir(c.OutputPath)
	}

	return &publish.Git{
		Dir:    dir,
		Remote: c.GitRemote,
		Branch: c.GitBranch,
	}
}

func splitList(s string) []string {
	var res []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			res = append(res, part)
		}
	}
	return res
}
